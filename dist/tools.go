// Package dist implements discretized continuous distributions used to
// model rate variation among categories.
package dist

/*
The discretization follows PAML (Yang 1994): K categories of equal
probability, each represented either by its median or by its mean.
DiscreteBeta checks category boundaries and falls back to medians.
*/

import (
	"fmt"
	"math"

	"github.com/gonum/mathext"

	"bitbucket.org/Davydov/gostat/chisq"
	"bitbucket.org/Davydov/gostat/gamma"
	"bitbucket.org/Davydov/gostat/normal"
	"bitbucket.org/Davydov/gostat/numerr"
)

// QuantileChi2 returns z so that Prob{x<z}=prob where x is Chi2
// distributed with df=v.
func QuantileChi2(prob, v float64) (float64, error) {
	return chisq.InvCDF(prob, v)
}

// QuantileGamma returns quantile for gamma distribution with shape
// alpha and rate beta.
func QuantileGamma(prob, alpha, beta float64) (float64, error) {
	if !(beta > 0) {
		return math.NaN(), fmt.Errorf("dist: %w: rate must be positive, got %g", numerr.ErrDomain, beta)
	}
	ch, err := QuantileChi2(prob, 2*alpha)
	if err != nil {
		return math.NaN(), err
	}
	return ch / (2 * beta), nil
}

// QuantileNormal returns quantile for standard normal distribution.
func QuantileNormal(prob float64) (float64, error) {
	return normal.New().InvCDF(prob)
}

// IncompleteGamma returns the incomplete gamma ratio I(x,alpha) where
// x is the upper limit of the integration and alpha is the shape
// parameter.
func IncompleteGamma(x, alpha float64) (float64, error) {
	return gamma.P(alpha, x)
}

func checkCategories(K int) error {
	if K < 1 {
		return fmt.Errorf("dist: %w: number of categories must be positive, got %d", numerr.ErrDomain, K)
	}
	return nil
}

// DiscreteGamma returns discrete gamma distribution G(alpha, beta)
// with K categories. tmp and res are reused if not nil and must have
// length K.
func DiscreteGamma(alpha, beta float64, K int, UseMedian bool, tmp, res []float64) ([]float64, error) {
	if err := checkCategories(K); err != nil {
		return nil, err
	}
	t := 0.0
	mean := alpha / beta

	if res == nil {
		res = make([]float64, K)
	}
	if tmp == nil {
		tmp = make([]float64, K)
	}

	if UseMedian {
		for i := 0; i < K; i++ {
			q, err := QuantileGamma((float64(i)*2.+1)/(2.*float64(K)), alpha, beta)
			if err != nil {
				return nil, err
			}
			res[i] = q
			t += q
		}
		// rescale so that the mean is alpha/beta
		for i := 0; i < K; i++ {
			res[i] *= mean * float64(K) / t
		}
		return res, nil
	}

	if K == 1 {
		res[0] = mean
		return res, nil
	}
	for i := 0; i < K-1; i++ {
		// cutting points
		q, err := QuantileGamma((float64(i)+1.0)/float64(K), alpha, beta)
		if err != nil {
			return nil, err
		}
		// mass of x*f(x) below the cutting point
		tmp[i], err = IncompleteGamma(q*beta, alpha+1)
		if err != nil {
			return nil, err
		}
	}
	res[0] = tmp[0] * mean * float64(K)
	for i := 1; i < K-1; i++ {
		res[i] = (tmp[i] - tmp[i-1]) * mean * float64(K)
	}
	res[K-1] = (1 - tmp[K-2]) * mean * float64(K)

	return res, nil
}

// LnBeta returns log of Beta function.
func LnBeta(p, q float64) (float64, error) {
	b, err := gamma.Beta(p, q)
	if err != nil {
		return math.NaN(), err
	}
	return math.Log(b), nil
}

// CDFBeta returns the incomplete beta ratio I_x(p,q).
func CDFBeta(x, pin, qin float64) float64 {
	return mathext.RegIncBeta(pin, qin, x)
}

// QuantileBeta calculates the quantile of the beta distribution.
func QuantileBeta(prob, p, q float64) float64 {
	return mathext.InvRegIncBeta(p, q, prob)
}

// DiscreteBeta returns discrete beta(p, q) distribution with K
// categories.
func DiscreteBeta(p, q float64, K int, UseMedian bool, tmp, res []float64) ([]float64, error) {
	if err := checkCategories(K); err != nil {
		return nil, err
	}
	if !(p > 0 && q > 0) {
		return nil, fmt.Errorf("dist: %w: beta parameters must be positive, got p=%g q=%g", numerr.ErrDomain, p, q)
	}
	mean := p / (p + q)
	t := 0.0

	if res == nil {
		res = make([]float64, K)
	}
	if tmp == nil {
		tmp = make([]float64, K)
	}

	if UseMedian {
		for i := 0; i < K; i++ {
			res[i] = QuantileBeta((float64(i)+0.5)/float64(K), p, q)
			t += res[i]
		}
		// normalization to keep the mean
		for i := 0; i < K; i++ {
			res[i] *= mean * float64(K) / t
		}
		return res, nil
	}

	for i := 0; i < K-1; i++ {
		tmp[i] = QuantileBeta((float64(i)+1.0)/float64(K), p, q)
	}
	tmp[K-1] = 1

	prevCdf := CDFBeta(tmp[0], p+1, q)

	res[0] = prevCdf * mean * float64(K)
	for i := 1; i < K; i++ {
		currCdf := CDFBeta(tmp[i], p+1, q)
		res[i] = (currCdf - prevCdf) * mean * float64(K)
		prevCdf = currCdf
	}

	// correct out of region
	for i := 0; i < K; i++ {
		lower := 0.0
		upper := tmp[i]
		if i > 0 {
			lower = tmp[i-1]
		}
		if res[i] < lower || res[i] > upper {
			// switch to median
			res[i] = QuantileBeta((float64(i)+0.5)/float64(K), p, q)
			if res[i] < lower || res[i] > upper {
				// out of bounds again, switch to average
				res[i] = (upper + lower) / 2
			}
		}
	}

	return res, nil
}
