package main

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/gonum/mathext"

	"bitbucket.org/Davydov/gostat/chisq"
	"bitbucket.org/Davydov/gostat/erf"
	"bitbucket.org/Davydov/gostat/gamma"
	"bitbucket.org/Davydov/gostat/normal"
	"bitbucket.org/Davydov/gostat/random"
)

// distribution is a univariate continuous distribution.
type distribution interface {
	Prob(x float64) (float64, error)
	CDF(x float64) (float64, error)
	Survival(x float64) (float64, error)
	InvCDF(p float64) (float64, error)
	String() string
	// Range returns a default plotting range.
	Range() (min, max float64)
}

type chisqDist struct {
	*chisq.Dist
}

// Range starts above zero where the density is defined.
func (d chisqDist) Range() (float64, float64) {
	hi := d.Mean() + 4*math.Sqrt(d.Variance())
	return hi / 200, hi
}

type normalDist struct {
	*normal.Dist
}

func (d normalDist) Prob(x float64) (float64, error) { return d.Dist.Prob(x), nil }
func (d normalDist) CDF(x float64) (float64, error)  { return d.Dist.CDF(x), nil }

func (d normalDist) Survival(x float64) (float64, error) {
	return 1 - d.Dist.CDF(x), nil
}

func (d normalDist) Range() (float64, float64) {
	return d.Mean() - 4*d.StdDev(), d.Mean() + 4*d.StdDev()
}

// newDistribution creates a distribution by name.
func newDistribution(name string, nu, mu, sigma float64) (distribution, error) {
	switch name {
	case "chisq":
		d, err := chisq.New(nu)
		if err != nil {
			return nil, err
		}
		log.Infof("Using %v", d)
		return chisqDist{d}, nil
	case "normal":
		d, err := normal.NewWith(mu, sigma)
		if err != nil {
			return nil, err
		}
		log.Infof("Using %v", d)
		return normalDist{d}, nil
	}
	return nil, fmt.Errorf("Unknown distribution: %s", name)
}

// Value is an argument and a function value.
type Value struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// evaluate applies f to all xs.
func evaluate(xs []float64, f func(float64) (float64, error)) ([]Value, error) {
	res := make([]Value, 0, len(xs))
	for _, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		res = append(res, Value{x, y})
	}
	return res, nil
}

// printValues evaluates and prints f for every x.
func printValues(xs []float64, f func(float64) (float64, error)) ([]Value, error) {
	res, err := evaluate(xs, f)
	if err != nil {
		return nil, err
	}
	for _, v := range res {
		fmt.Printf("%g\t%.10g\n", v.X, v.Y)
	}
	return res, nil
}

// gammaFunction returns a function from the gamma family by name.
func gammaFunction(name string, a float64) func(float64) (float64, error) {
	switch name {
	case "p":
		return func(x float64) (float64, error) { return gamma.P(a, x) }
	case "q":
		return func(x float64) (float64, error) { return gamma.Q(a, x) }
	case "inv":
		return func(p float64) (float64, error) { return gamma.InverseP(p, a) }
	}
	return gamma.LogGamma
}

// erfFunction returns a function from the error function family by
// name.
func erfFunction(name string) func(float64) (float64, error) {
	var f func(float64) float64
	switch name {
	case "erfc":
		f = erf.Erfc
	case "inv":
		f = erf.Erfinv
	case "invc":
		f = erf.Erfcinv
	default:
		f = erf.Erf
	}
	return func(x float64) (float64, error) { return f(x), nil }
}

// lrt performs and prints a likelihood ratio test.
func lrt(lnL0, lnL1, df float64) (chisq.LRTResult, error) {
	r, err := chisq.LRT(lnL0, lnL1, df)
	if err != nil {
		return r, err
	}
	log.Infof("lnL0=%g, lnL1=%g", lnL0, lnL1)
	fmt.Printf("D=%g\tdf=%g\tpvalue=%g\n", r.Statistic, r.DF, r.PValue)
	return r, nil
}

// sample draws n values. For the uniform kind a and b are the range
// bounds, for the gaussian kind the mean and standard deviation.
func sample(kind string, n int, a, b float64, src rand.Source) ([]float64, error) {
	k, err := random.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative number of samples: %d", n)
	}
	xs := make([]float64, n)
	switch r := random.New(k, src).(type) {
	case *random.UniformRandomizer:
		if err := r.FillRange(xs, a, b); err != nil {
			return nil, err
		}
	case *random.GaussianRandomizer:
		r.SetMean(a)
		if err := r.SetStdDev(b); err != nil {
			return nil, err
		}
		r.Fill(xs)
	}
	for _, x := range xs {
		fmt.Println(x)
	}
	return xs, nil
}

// functions available for uncertainty propagation.
var functions = map[string]normal.Func{
	"square": {
		F:  func(x float64) float64 { return x * x },
		DF: func(x float64) float64 { return 2 * x },
	},
	"sqrt": {
		F:  math.Sqrt,
		DF: func(x float64) float64 { return 0.5 / math.Sqrt(x) },
	},
	"exp": {F: math.Exp, DF: math.Exp},
	"log": {
		F:  math.Log,
		DF: func(x float64) float64 { return 1 / x },
	},
	"sin": {F: math.Sin, DF: math.Cos},
	"cos": {
		F:  math.Cos,
		DF: func(x float64) float64 { return -math.Sin(x) },
	},
	"lngamma": {
		F:  func(x float64) float64 { v, _ := gamma.LogGamma(x); return v },
		DF: mathext.Digamma,
	},
}

func funcNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// propagate propagates N(mu, sigma^2) through a named function.
func propagate(name string, mu, sigma float64) (*PropagationSummary, error) {
	f, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("Unknown function: %s", name)
	}
	d, err := normal.Propagate(f, mu, sigma)
	if err != nil {
		return nil, err
	}
	fmt.Println(d)
	return &PropagationSummary{Mean: d.Mean(), StdDev: d.StdDev()}, nil
}
