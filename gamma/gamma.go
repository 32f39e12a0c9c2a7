// Package gamma implements the logarithm of the gamma function,
// factorials, binomial coefficients, the beta function and the
// regularized incomplete gamma function with its inverse.
//
// Every function is safe for concurrent use. The factorial tables are
// built once on first use; WarmCaches builds them eagerly.
package gamma

import (
	"fmt"
	"math"
	"sync"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/gostat/numerr"
)

// log is the package logger.
var log = logging.MustGetLogger("gamma")

const (
	// MaxFactorial is the largest n for which n! fits into a float64.
	MaxFactorial = 170

	// LogFactorialCacheSize is the number of cached ln(n!) values.
	LogFactorialCacheSize = 2000
)

// Lanczos coefficients, g = 671/128.
var lanczos = [14]float64{
	57.1562356658629235, -59.5979603554754912,
	14.1360979747417471, -0.491913816097620199, .339946499848118887e-4,
	.465236289270485756e-4, -.983744753048795646e-4, .158088703224912494e-3,
	-.210264441724104883e-3, .217439618115212643e-3, -.164318106536763890e-3,
	.844182239838527433e-4, -.261908384015814087e-4, .368991826595316234e-5,
}

var (
	factOnce  sync.Once
	factTable [MaxFactorial + 1]float64

	lnFactOnce  sync.Once
	lnFactTable [LogFactorialCacheSize]float64
)

// LogGamma returns ln(Γ(x)) for x > 0.
func LogGamma(x float64) (float64, error) {
	if !(x > 0) {
		return math.NaN(), fmt.Errorf("gamma: %w: LogGamma requires x > 0, got %g", numerr.ErrDomain, x)
	}
	return lgamma(x), nil
}

// lgamma is LogGamma without argument checking.
func lgamma(x float64) float64 {
	y := x
	tmp := x + 5.24218750000000000
	tmp = (x+0.5)*math.Log(tmp) - tmp
	ser := 0.999999999999997092
	for _, c := range lanczos {
		y++
		ser += c / y
	}
	return tmp + math.Log(2.5066282746310005*ser/x)
}

func initFactorials() {
	factTable[0] = 1
	for i := 1; i <= MaxFactorial; i++ {
		factTable[i] = float64(i) * factTable[i-1]
	}
}

func initLogFactorials() {
	for i := range lnFactTable {
		lnFactTable[i] = lgamma(float64(i) + 1)
	}
}

// WarmCaches builds the factorial and log-factorial tables. Calling it
// is optional; the tables are otherwise built on first use.
func WarmCaches() {
	factOnce.Do(initFactorials)
	lnFactOnce.Do(initLogFactorials)
}

// Factorial returns n! for 0 <= n <= MaxFactorial.
func Factorial(n int) (float64, error) {
	if n < 0 || n > MaxFactorial {
		return math.NaN(), fmt.Errorf("gamma: %w: factorial of %d is out of range [0, %d]", numerr.ErrDomain, n, MaxFactorial)
	}
	factOnce.Do(initFactorials)
	return factTable[n], nil
}

// LogFactorial returns ln(n!) for n >= 0.
func LogFactorial(n int) (float64, error) {
	if n < 0 {
		return math.NaN(), fmt.Errorf("gamma: %w: log factorial of negative %d", numerr.ErrDomain, n)
	}
	return lnFactorial(n), nil
}

func lnFactorial(n int) float64 {
	if n < LogFactorialCacheSize {
		lnFactOnce.Do(initLogFactorials)
		return lnFactTable[n]
	}
	return lgamma(float64(n) + 1)
}

// Binomial returns the binomial coefficient n over k as a float64.
//
// The result is rounded to the nearest integer to remove roundoff. For
// n > MaxFactorial it is computed from log factorials and is only as
// accurate as a float64 can represent it.
func Binomial(n, k int) (float64, error) {
	if k < 0 || k > n {
		return math.NaN(), fmt.Errorf("gamma: %w: binomial coefficient (%d %d)", numerr.ErrDomain, n, k)
	}
	if n <= MaxFactorial {
		factOnce.Do(initFactorials)
		return math.Floor(0.5 + factTable[n]/(factTable[k]*factTable[n-k])), nil
	}
	return math.Floor(0.5 + math.Exp(lnFactorial(n)-lnFactorial(k)-lnFactorial(n-k))), nil
}

// Beta returns the beta function B(z, w) = Γ(z)Γ(w)/Γ(z+w) for z, w > 0.
func Beta(z, w float64) (float64, error) {
	lz, err := LogGamma(z)
	if err != nil {
		return math.NaN(), err
	}
	lw, err := LogGamma(w)
	if err != nil {
		return math.NaN(), err
	}
	return math.Exp(lz + lw - lgamma(z+w)), nil
}
