// Package chisq implements the chi-squared distribution with nu
// degrees of freedom.
//
// Each operation exists as a method of Dist and as a package level
// function taking nu explicitly; both give identical results.
package chisq

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/gostat/gamma"
	"bitbucket.org/Davydov/gostat/numerr"
)

// ln(2)
const ln2 = 0.693147180559945309

// Dist is a chi-squared distribution. The zero value is not usable,
// create it with New.
type Dist struct {
	nu float64
	// ln(2)*nu/2 + lnΓ(nu/2), the log of the density normalization
	fac float64
}

// New returns a chi-squared distribution with nu > 0 degrees of
// freedom.
func New(nu float64) (*Dist, error) {
	d := &Dist{}
	if err := d.SetNu(nu); err != nil {
		return nil, err
	}
	return d, nil
}

// SetNu changes the degrees of freedom. On error d is unchanged.
func (d *Dist) SetNu(nu float64) error {
	if err := checkNu(nu); err != nil {
		return err
	}
	d.nu = nu
	d.fac = fac(nu)
	return nil
}

// Nu returns the degrees of freedom.
func (d *Dist) Nu() float64 {
	return d.nu
}

// Mean returns the mean, nu.
func (d *Dist) Mean() float64 {
	return d.nu
}

// Variance returns the variance, 2*nu.
func (d *Dist) Variance() float64 {
	return 2 * d.nu
}

// Prob returns the probability density at x2 > 0.
func (d *Dist) Prob(x2 float64) (float64, error) {
	return prob(x2, d.nu, d.fac)
}

// CDF returns Pr[X <= x2] for x2 >= 0.
func (d *Dist) CDF(x2 float64) (float64, error) {
	return cdf(x2, d.nu)
}

// Survival returns Pr[X > x2] for x2 >= 0. For large x2 it is more
// accurate than 1 - CDF(x2).
func (d *Dist) Survival(x2 float64) (float64, error) {
	return survival(x2, d.nu)
}

// InvCDF returns x2 such that CDF(x2) = p for 0 <= p < 1.
func (d *Dist) InvCDF(p float64) (float64, error) {
	return invCDF(p, d.nu)
}

// String implements fmt.Stringer.
func (d *Dist) String() string {
	return fmt.Sprintf("ChiSq(nu=%g)", d.nu)
}

// Prob returns the density of the chi-squared distribution with nu
// degrees of freedom at x2.
func Prob(x2, nu float64) (float64, error) {
	if err := checkNu(nu); err != nil {
		return math.NaN(), err
	}
	return prob(x2, nu, fac(nu))
}

// CDF returns the cumulative distribution function of the chi-squared
// distribution with nu degrees of freedom at x2.
func CDF(x2, nu float64) (float64, error) {
	if err := checkNu(nu); err != nil {
		return math.NaN(), err
	}
	return cdf(x2, nu)
}

// Survival returns 1 - CDF(x2, nu) computed directly.
func Survival(x2, nu float64) (float64, error) {
	if err := checkNu(nu); err != nil {
		return math.NaN(), err
	}
	return survival(x2, nu)
}

// InvCDF returns the quantile of the chi-squared distribution with nu
// degrees of freedom.
func InvCDF(p, nu float64) (float64, error) {
	if err := checkNu(nu); err != nil {
		return math.NaN(), err
	}
	return invCDF(p, nu)
}

func checkNu(nu float64) error {
	if !(nu > 0) {
		return fmt.Errorf("chisq: %w: degrees of freedom must be positive, got %g", numerr.ErrDomain, nu)
	}
	return nil
}

func fac(nu float64) float64 {
	lg, _ := gamma.LogGamma(0.5 * nu)
	return ln2*(0.5*nu) + lg
}

func prob(x2, nu, fac float64) (float64, error) {
	if !(x2 > 0) {
		return math.NaN(), fmt.Errorf("chisq: %w: density requires x2 > 0, got %g", numerr.ErrDomain, x2)
	}
	return math.Exp(-0.5*(x2-(nu-2)*math.Log(x2)) - fac), nil
}

func checkX2(x2 float64) error {
	if !(x2 >= 0) {
		return fmt.Errorf("chisq: %w: x2 must be non-negative, got %g", numerr.ErrDomain, x2)
	}
	return nil
}

func cdf(x2, nu float64) (float64, error) {
	if err := checkX2(x2); err != nil {
		return math.NaN(), err
	}
	return gamma.P(0.5*nu, 0.5*x2)
}

func survival(x2, nu float64) (float64, error) {
	if err := checkX2(x2); err != nil {
		return math.NaN(), err
	}
	return gamma.Q(0.5*nu, 0.5*x2)
}

func invCDF(p, nu float64) (float64, error) {
	if !(p >= 0 && p < 1) {
		return math.NaN(), fmt.Errorf("chisq: %w: probability must be in [0, 1), got %g", numerr.ErrDomain, p)
	}
	x, err := gamma.InverseP(p, 0.5*nu)
	return 2 * x, err
}
