package chisq

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/gostat/numerr"
)

// MinLRT is the smallest likelihood ratio statistic treated as
// positive; smaller values are numerical noise of the optimizers.
const MinLRT = 1e-6

// LRTResult is the outcome of a likelihood ratio test.
type LRTResult struct {
	// Statistic is D = 2*(lnL1 - lnL0), clamped at 0.
	Statistic float64 `json:"statistic"`
	// DF is the number of extra parameters of the alternative model.
	DF float64 `json:"df"`
	// PValue is Pr[X > D] for X ~ ChiSq(DF).
	PValue float64 `json:"pValue"`
}

// LRT performs a likelihood ratio test of the null model with log
// likelihood lnL0 against the alternative with log likelihood lnL1 and
// df additional parameters. A statistic below MinLRT gives p-value 1.
func LRT(lnL0, lnL1, df float64) (LRTResult, error) {
	if err := checkNu(df); err != nil {
		return LRTResult{}, err
	}
	if math.IsNaN(lnL0) || math.IsNaN(lnL1) {
		return LRTResult{}, fmt.Errorf("chisq: %w: log likelihood is NaN", numerr.ErrDomain)
	}
	d := 2 * (lnL1 - lnL0)
	if d < MinLRT {
		return LRTResult{Statistic: math.Max(d, 0), DF: df, PValue: 1}, nil
	}
	if math.IsInf(d, 1) {
		return LRTResult{Statistic: d, DF: df, PValue: 0}, nil
	}
	p, err := survival(d, df)
	if err != nil {
		return LRTResult{}, err
	}
	return LRTResult{Statistic: d, DF: df, PValue: p}, nil
}
