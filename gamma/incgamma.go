package gamma

import (
	"fmt"
	"math"

	"bitbucket.org/Davydov/gostat/numerr"
)

// MaxIterations bounds the series and continued fraction loops.
var MaxIterations = 100

const (
	// shapes at or above aSwitch use the quadrature approximation
	aSwitch = 100

	// newtonSteps bounds the refinement in InverseP.
	newtonSteps = 12
)

var (
	// machine epsilon
	eps = math.Nextafter(1, 2) - 1

	// guards the continued fraction against zero denominators
	fpmin = 0x1p-1022 / eps
)

// Incomplete is the result of a regularized incomplete gamma
// evaluation. P and Q always sum to 1. LnGammaA is ln(Γ(a)), which
// every evaluation strategy needs and callers often reuse.
type Incomplete struct {
	P, Q     float64
	LnGammaA float64
}

// Evaluate computes both regularized incomplete gamma functions
// P(a, x) and Q(a, x) = 1 - P(a, x) for a > 0, x >= 0.
//
// The strategy depends on the arguments: for int(a) >= 100 an 18-point
// Gauss-Legendre quadrature around the saddle point a-1 is used, for
// x < a+1 the power series, otherwise the continued fraction. The
// latter two return an error wrapping numerr.ErrMaxIterations if they
// do not converge within MaxIterations.
func Evaluate(a, x float64) (Incomplete, error) {
	if !(x >= 0) || !(a > 0) {
		return Incomplete{P: math.NaN(), Q: math.NaN(), LnGammaA: math.NaN()},
			fmt.Errorf("gamma: %w: incomplete gamma requires a > 0 and x >= 0, got a=%g, x=%g", numerr.ErrDomain, a, x)
	}
	gln := lgamma(a)
	switch {
	case x == 0:
		return Incomplete{P: 0, Q: 1, LnGammaA: gln}, nil
	case math.IsInf(x, 1):
		return Incomplete{P: 1, Q: 0, LnGammaA: gln}, nil
	case a >= aSwitch:
		return quadrature(a, x, gln), nil
	case x < a+1:
		p, err := series(a, x, gln)
		if err != nil {
			return Incomplete{P: math.NaN(), Q: math.NaN(), LnGammaA: gln}, err
		}
		return Incomplete{P: p, Q: 1 - p, LnGammaA: gln}, nil
	default:
		q, err := continuedFraction(a, x, gln)
		if err != nil {
			return Incomplete{P: math.NaN(), Q: math.NaN(), LnGammaA: gln}, err
		}
		return Incomplete{P: 1 - q, Q: q, LnGammaA: gln}, nil
	}
}

// P returns the regularized lower incomplete gamma function P(a, x).
func P(a, x float64) (float64, error) {
	r, err := Evaluate(a, x)
	return r.P, err
}

// Q returns the regularized upper incomplete gamma function
// Q(a, x) = 1 - P(a, x).
func Q(a, x float64) (float64, error) {
	r, err := Evaluate(a, x)
	return r.Q, err
}

// series returns P(a, x) by its power series. Converges quickly for
// x < a+1.
func series(a, x, gln float64) (float64, error) {
	ap := a
	del := 1 / a
	sum := del
	for n := 1; n < MaxIterations; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*eps {
			return sum * math.Exp(-x+a*math.Log(x)-gln), nil
		}
	}
	log.Debugf("series for P(%g, %g) did not converge", a, x)
	return math.NaN(), fmt.Errorf("gamma: %w: series for P(%g, %g)", numerr.ErrMaxIterations, a, x)
}

// continuedFraction returns Q(a, x) by the modified Lentz method.
// Converges quickly for x >= a+1.
func continuedFraction(a, x, gln float64) (float64, error) {
	b := x + 1 - a
	c := 1 / fpmin
	d := 1 / b
	h := d
	for i := 1; ; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = b + an/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) <= eps {
			break
		}
		if i >= MaxIterations {
			log.Debugf("continued fraction for Q(%g, %g) did not converge", a, x)
			return math.NaN(), fmt.Errorf("gamma: %w: continued fraction for Q(%g, %g)", numerr.ErrMaxIterations, a, x)
		}
	}
	return math.Exp(-x+a*math.Log(x)-gln) * h, nil
}

// quadrature integrates the gamma density from x towards a bound far
// in the tail on the same side of the saddle point a-1. Above the
// saddle point the integral is Q, below it is -P.
func quadrature(a, x, gln float64) Incomplete {
	a1 := a - 1
	lna1 := math.Log(a1)
	sqrta1 := math.Sqrt(a1)

	var xu float64
	upper := x > a1
	if upper {
		xu = math.Max(a1+11.5*sqrta1, x+6*sqrta1)
	} else {
		xu = math.Max(0, math.Min(a1-7.5*sqrta1, x-5*sqrta1))
	}

	sum := 0.0
	for j := 0; j < nGauss; j++ {
		t := x + (xu-x)*gaussLegendreY[j]
		sum += gaussLegendreW[j] * math.Exp(-(t-a1)+a1*(math.Log(t)-lna1))
	}
	ans := sum * (xu - x) * math.Exp(a1*(lna1-1)-gln)

	if upper {
		return Incomplete{P: 1 - ans, Q: ans, LnGammaA: gln}
	}
	return Incomplete{P: -ans, Q: 1 + ans, LnGammaA: gln}
}

// InverseP returns x such that P(a, x) = p.
//
// p >= 1 maps to max(100, a+100*sqrt(a)) and p <= 0 to 0. Otherwise an
// analytic first guess is refined by at most 12 Halley-corrected Newton
// steps. If the steps do not converge the last estimate is returned
// without an error: the result is then an approximation whose accuracy
// is not guaranteed. Errors from evaluating P itself are returned.
func InverseP(p, a float64) (float64, error) {
	if !(a > 0) {
		return math.NaN(), fmt.Errorf("gamma: %w: InverseP requires a > 0, got %g", numerr.ErrDomain, a)
	}
	if math.IsNaN(p) {
		return math.NaN(), fmt.Errorf("gamma: %w: InverseP of NaN probability", numerr.ErrDomain)
	}
	if p >= 1 {
		return math.Max(100, a+100*math.Sqrt(a)), nil
	}
	if p <= 0 {
		return 0, nil
	}

	gln := lgamma(a)
	a1 := a - 1
	var x, t, lna1, afac, diff float64
	if a > 1 {
		lna1 = math.Log(a1)
		afac = math.Exp(a1*(lna1-1) - gln)
		pp := p
		if pp >= 0.5 {
			pp = 1 - p
		}
		t = math.Sqrt(-2 * math.Log(pp))
		x = (2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t
		if p < 0.5 {
			x = -x
		}
		x = math.Max(1e-3, a*math.Pow(1-1/(9*a)-x/(3*math.Sqrt(a)), 3))
	} else {
		t = 1 - a*(0.253+a*0.12)
		if p < t {
			x = math.Pow(p/t, 1/a)
		} else {
			x = 1 - math.Log(1-(p-t)/(1-t))
		}
	}

	for j := 0; j < newtonSteps; j++ {
		if x <= 0 {
			return 0, nil
		}
		r, err := Evaluate(a, x)
		if err != nil {
			return math.NaN(), err
		}
		diff = r.P - p
		if a > 1 {
			t = afac * math.Exp(-(x-a1)+a1*(math.Log(x)-lna1))
		} else {
			t = math.Exp(-x + a1*math.Log(x) - gln)
		}
		if t == 0 {
			// density underflow, no usable derivative
			log.Debugf("InverseP(%g, %g): zero density at x=%g", p, a, x)
			return x, nil
		}
		u := diff / t
		t = u / (1 - 0.5*math.Min(1, u*((a-1)/x-1)))
		x -= t
		if x <= 0 {
			x = 0.5 * (x + t)
		}
		if math.Abs(t) < eps*x {
			return x, nil
		}
	}
	if math.Abs(diff) > 1e-10*p {
		log.Debugf("InverseP(%g, %g) stopped after %d steps at x=%g, P-p=%g", p, a, newtonSteps, x, diff)
	}
	return x, nil
}
