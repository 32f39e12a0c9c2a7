// Package erf implements the error function, the complementary error
// function and their inverses using a Chebyshev expansion.
package erf

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/gostat/numerr"
)

// Chebyshev coefficients for erfc on z >= 0 in the variable
// t = 2/(2+z).
var cof = [...]float64{-1.3026537197817094,
	6.4196979235649026e-1, 1.9476473204185836e-2, -9.561514786808631e-3,
	-9.46595344482036e-4, 3.66839497852761e-4, 4.2523324806907e-5,
	-2.0278578112534e-5, -1.624290004647e-6, 1.303655835580e-6,
	1.5626441722e-8, -8.5238095915e-8, 6.529054439e-9, 5.059343495e-9,
	-9.91364156e-10, -2.27365122e-10, 9.6467911e-11, 2.394038e-12,
	-6.886027e-12, 8.94487e-13, 3.13092e-13, -1.12708e-13, 3.81e-16,
	7.106e-15, -1.523e-15, -9.4e-17, 1.21e-16, -2.8e-17}

const (
	// 2/sqrt(pi)
	twoOverSqrtPi = 1.12837916709551257

	// Saturation values of Erfcinv outside (0, 2).
	saturation = 100
)

// Erf returns the error function of x.
func Erf(x float64) float64 {
	if x >= 0 {
		return 1 - erfccheb(x)
	}
	return erfccheb(-x) - 1
}

// Erfc returns the complementary error function 1 - Erf(x).
func Erfc(x float64) float64 {
	if x >= 0 {
		return erfccheb(x)
	}
	return 2 - erfccheb(-x)
}

// erfccheb evaluates erfc(z) for z >= 0 by Clenshaw's recurrence.
// Callers fold the sign, a negative z panics with a domain error.
func erfccheb(z float64) float64 {
	if z < 0 {
		panic(fmt.Errorf("erf: %w: erfccheb requires z >= 0, got %g", numerr.ErrDomain, z))
	}
	var d, dd float64
	t := 2 / (2 + z)
	ty := 4*t - 2
	for j := len(cof) - 1; j > 0; j-- {
		d, dd = ty*d-dd+cof[j], d
	}
	return t * math.Exp(-z*z+0.5*(cof[0]+ty*d)-dd)
}

// Erfcinv returns x such that Erfc(x) = p.
//
// Arguments p >= 2 return -100 and p <= 0 return 100. Two Newton steps
// from a rational first guess are always taken, there is no
// convergence test.
func Erfcinv(p float64) float64 {
	if p >= 2 {
		return -saturation
	}
	if p <= 0 {
		return saturation
	}
	pp := p
	if p >= 1 {
		pp = 2 - p
	}
	t := math.Sqrt(-2 * math.Log(pp/2))
	x := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	for j := 0; j < 2; j++ {
		err := Erfc(x) - pp
		x += err / (twoOverSqrtPi*math.Exp(-x*x) - x*err)
	}
	if p < 1 {
		return x
	}
	return -x
}

// Erfinv returns x such that Erf(x) = p.
func Erfinv(p float64) float64 {
	return Erfcinv(1 - p)
}
