// Package store persists computed distribution tables in a bolt
// database so they do not have to be recomputed.
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// MAIN is the bucket name for all tables.
var MAIN = []byte("main")

// Table is a table of quantiles. Rows[i][j] is the quantile for
// Params[i] and Probs[j].
type Table struct {
	Kind   string      `json:"kind"`
	Params []float64   `json:"params"`
	Probs  []float64   `json:"probs"`
	Rows   [][]float64 `json:"rows"`
}

// Key returns the database key identifying the table contents.
func (t *Table) Key() []byte {
	return TableKey(t.Kind, t.Params, t.Probs)
}

// TableKey returns the key of a table of a given kind with the
// given parameters and probabilities.
func TableKey(kind string, params, probs []float64) []byte {
	var sb strings.Builder
	sb.WriteString(kind)
	for _, l := range [][]float64{params, probs} {
		sb.WriteByte('|')
		for i, v := range l {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	return []byte(sb.String())
}

// Check verifies that the table is rectangular.
func (t *Table) Check() error {
	if len(t.Rows) != len(t.Params) {
		return fmt.Errorf("store: table has %d rows for %d parameters", len(t.Rows), len(t.Params))
	}
	for i, r := range t.Rows {
		if len(r) != len(t.Probs) {
			return fmt.Errorf("store: row %d has %d values for %d probabilities", i, len(r), len(t.Probs))
		}
	}
	return nil
}

// TableIO saves and loads tables.
type TableIO struct {
	db *bolt.DB
}

// NewTableIO creates a new TableIO. A nil db disables storage.
func NewTableIO(db *bolt.DB) *TableIO {
	return &TableIO{db: db}
}

// Save saves table to the database.
func (s *TableIO) Save(t *Table) error {
	if err := t.Check(); err != nil {
		return err
	}
	dataB, err := json.Marshal(t)
	if err != nil {
		log.Error("Error serializing table", err)
		return err
	}
	err = SaveData(s.db, t.Key(), dataB)
	if err != nil {
		log.Error("Error saving table", err)
	}
	return err
}

// Load returns a stored table or nil if there is none.
func (s *TableIO) Load(kind string, params, probs []float64) (*Table, error) {
	var t *Table

	b, err := LoadData(s.db, TableKey(kind, params, probs))

	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &t)
	if err != nil {
		return nil, err
	}

	if t == nil || len(t.Rows) == 0 {
		return nil, nil
	}
	if err := t.Check(); err != nil {
		return nil, err
	}

	log.Infof("Found stored %s table (%d rows)", t.Kind, len(t.Rows))

	return t, nil
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			// v is only valid within the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
