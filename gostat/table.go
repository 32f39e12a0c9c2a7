package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
	"golang.org/x/sync/errgroup"

	"bitbucket.org/Davydov/gostat/chisq"
	"bitbucket.org/Davydov/gostat/store"
)

// tableKind identifies chi-square critical value tables in the store.
const tableKind = "chisq-critical"

// criticalTable computes chi-square critical values, rows are degrees
// of freedom and columns are significance levels.
func criticalTable(ctx context.Context, dfs, alphas []float64) (*store.Table, error) {
	t := &store.Table{
		Kind:   tableKind,
		Params: dfs,
		Probs:  alphas,
		Rows:   make([][]float64, len(dfs)),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, df := range dfs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			row := make([]float64, len(alphas))
			for j, alpha := range alphas {
				x, err := chisq.InvCDF(1-alpha, df)
				if err != nil {
					return fmt.Errorf("df=%g, alpha=%g: %w", df, alpha, err)
				}
				row[j] = x
			}
			t.Rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}

// table prints chi-square critical values for degrees of freedom from
// minDF to maxDF. If dbFile is set, tables are loaded from and saved
// to the database.
func table(dbFile string, minDF, maxDF int, alphas []float64) (*store.Table, error) {
	if minDF < 1 || maxDF < minDF {
		return nil, fmt.Errorf("incorrect degrees of freedom range: %d..%d", minDF, maxDF)
	}
	dfs := make([]float64, 0, maxDF-minDF+1)
	for df := minDF; df <= maxDF; df++ {
		dfs = append(dfs, float64(df))
	}

	var db *bolt.DB
	if dbFile != "" {
		var err error
		db, err = bolt.Open(dbFile, 0600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, err
		}
		defer db.Close()
	}
	tio := store.NewTableIO(db)

	t, err := tio.Load(tableKind, dfs, alphas)
	if err != nil {
		log.Error("Error loading table:", err)
	}
	if t == nil {
		t, err = criticalTable(context.Background(), dfs, alphas)
		if err != nil {
			return nil, err
		}
		if err := tio.Save(t); err != nil {
			log.Error("Error saving table:", err)
		}
	}

	fmt.Print(formatTable(t))
	return t, nil
}

// formatTable returns a tab separated table with a header.
func formatTable(t *store.Table) string {
	var sb strings.Builder
	sb.WriteString("df")
	for _, alpha := range t.Probs {
		fmt.Fprintf(&sb, "\t%g", alpha)
	}
	sb.WriteByte('\n')
	for i, row := range t.Rows {
		fmt.Fprintf(&sb, "%g", t.Params[i])
		for _, v := range row {
			fmt.Fprintf(&sb, "\t%.4f", v)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
