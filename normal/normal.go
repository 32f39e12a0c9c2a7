// Package normal implements the normal (Gaussian) distribution and
// first order propagation of normally distributed uncertainty through
// differentiable functions.
package normal

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/gostat/erf"
	"bitbucket.org/Davydov/gostat/numerr"
)

const (
	// 1/sqrt(2*pi)
	invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583
	halfSqrt2  = math.Sqrt2 / 2
)

// Dist is a normal distribution with mean mu and standard deviation
// sigma > 0.
type Dist struct {
	mu, sigma float64
}

// New returns the standard normal distribution (mu=0, sigma=1).
func New() *Dist {
	return &Dist{mu: 0, sigma: 1}
}

// NewWith returns a normal distribution with the given mean and
// standard deviation.
func NewWith(mu, sigma float64) (*Dist, error) {
	d := New()
	if err := d.SetStdDev(sigma); err != nil {
		return nil, err
	}
	d.SetMean(mu)
	return d, nil
}

// Mean returns the mean.
func (d *Dist) Mean() float64 {
	return d.mu
}

// SetMean sets the mean.
func (d *Dist) SetMean(mu float64) {
	d.mu = mu
}

// StdDev returns the standard deviation.
func (d *Dist) StdDev() float64 {
	return d.sigma
}

// SetStdDev sets the standard deviation, which must be positive.
func (d *Dist) SetStdDev(sigma float64) error {
	if err := checkSigma(sigma); err != nil {
		return err
	}
	d.sigma = sigma
	return nil
}

// Variance returns sigma^2.
func (d *Dist) Variance() float64 {
	return d.sigma * d.sigma
}

// SetVariance sets the standard deviation to sqrt(v), v must be
// positive.
func (d *Dist) SetVariance(v float64) error {
	if !(v > 0) {
		return fmt.Errorf("normal: %w: variance must be positive, got %g", numerr.ErrDomain, v)
	}
	d.sigma = math.Sqrt(v)
	return nil
}

// Prob returns the probability density at x.
func (d *Dist) Prob(x float64) float64 {
	return prob(x, d.mu, d.sigma)
}

// CDF returns Pr[X <= x].
func (d *Dist) CDF(x float64) float64 {
	return cdf(x, d.mu, d.sigma)
}

// InvCDF returns x such that CDF(x) = p for 0 < p < 1.
func (d *Dist) InvCDF(p float64) (float64, error) {
	return invCDF(p, d.mu, d.sigma)
}

// Mahalanobis returns |x - mu| / sigma.
func (d *Dist) Mahalanobis(x float64) float64 {
	return mahalanobis(x, d.mu, d.sigma)
}

// String implements fmt.Stringer.
func (d *Dist) String() string {
	return fmt.Sprintf("Normal(mu=%g, sigma=%g)", d.mu, d.sigma)
}

// Prob returns the density of N(mu, sigma^2) at x.
func Prob(x, mu, sigma float64) (float64, error) {
	if err := checkSigma(sigma); err != nil {
		return math.NaN(), err
	}
	return prob(x, mu, sigma), nil
}

// CDF returns the cumulative distribution function of N(mu, sigma^2)
// at x.
func CDF(x, mu, sigma float64) (float64, error) {
	if err := checkSigma(sigma); err != nil {
		return math.NaN(), err
	}
	return cdf(x, mu, sigma), nil
}

// InvCDF returns the quantile of N(mu, sigma^2) for 0 < p < 1.
func InvCDF(p, mu, sigma float64) (float64, error) {
	if err := checkSigma(sigma); err != nil {
		return math.NaN(), err
	}
	return invCDF(p, mu, sigma)
}

// Mahalanobis returns |x - mu| / sigma.
func Mahalanobis(x, mu, sigma float64) (float64, error) {
	if err := checkSigma(sigma); err != nil {
		return math.NaN(), err
	}
	return mahalanobis(x, mu, sigma), nil
}

func checkSigma(sigma float64) error {
	if !(sigma > 0) {
		return fmt.Errorf("normal: %w: standard deviation must be positive, got %g", numerr.ErrDomain, sigma)
	}
	return nil
}

func prob(x, mu, sigma float64) float64 {
	z := (x - mu) / sigma
	return invSqrt2Pi / sigma * math.Exp(-0.5*z*z)
}

func cdf(x, mu, sigma float64) float64 {
	return 0.5 * erf.Erfc(-halfSqrt2*(x-mu)/sigma)
}

func invCDF(p, mu, sigma float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return math.NaN(), fmt.Errorf("normal: %w: probability must be in (0, 1), got %g", numerr.ErrDomain, p)
	}
	return -math.Sqrt2*sigma*erf.Erfcinv(2*p) + mu, nil
}

func mahalanobis(x, mu, sigma float64) float64 {
	return math.Abs(x-mu) / sigma
}
