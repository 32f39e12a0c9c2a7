package normal

import "math"

// DerivativeEvaluator is a differentiable scalar function.
type DerivativeEvaluator interface {
	Evaluate(x float64) float64
	EvaluateDerivative(x float64) float64
}

// Func adapts a function and its derivative to DerivativeEvaluator.
type Func struct {
	F, DF func(float64) float64
}

// Evaluate returns F(x).
func (f Func) Evaluate(x float64) float64 { return f.F(x) }

// EvaluateDerivative returns DF(x).
func (f Func) EvaluateDerivative(x float64) float64 { return f.DF(x) }

// Propagate returns the distribution of f(X) for X ~ N(mu, sigma^2)
// linearized at mu: mean f(mu) and standard deviation |f'(mu)|*sigma.
//
// This is only a good approximation when sigma is small compared to
// the curvature of f. An error is returned if sigma is not positive or
// if f'(mu) is zero, since the result would be degenerate.
func Propagate(f DerivativeEvaluator, mu, sigma float64) (*Dist, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	res := New()
	if err := res.SetStdDev(math.Abs(f.EvaluateDerivative(mu) * sigma)); err != nil {
		return nil, err
	}
	res.SetMean(f.Evaluate(mu))
	return res, nil
}

// PropagateDist is Propagate for the distribution d.
func PropagateDist(f DerivativeEvaluator, d *Dist) (*Dist, error) {
	return Propagate(f, d.mu, d.sigma)
}

// Propagate returns the distribution of f applied to d.
func (d *Dist) Propagate(f DerivativeEvaluator) (*Dist, error) {
	return PropagateDist(f, d)
}
