package gamma

import (
	"math"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mathext"

	"bitbucket.org/Davydov/gostat/numerr"
)

// pInt is P(a, x) for integer a from the Poisson sum.
func pInt(a int, x float64) float64 {
	q := 0.0
	for k := 0; k < a; k++ {
		lk, _ := math.Lgamma(float64(k) + 1)
		q += math.Exp(-x + float64(k)*math.Log(x) - lk)
	}
	return 1 - q
}

func TestIncompleteSmallShape(t *testing.T) {
	shapes := []float64{0.5, 1, 2, 3, 5, 10, 20}
	xs := []float64{0.01, 0.5, 1, 2, 5, 10, 30}
	for _, a := range shapes {
		for _, x := range xs {
			r, err := Evaluate(a, x)
			require.NoError(t, err, "a=%g x=%g", a, x)
			assert.InDelta(t, 1, r.P+r.Q, 1e-8)
			assert.InDelta(t, mathext.GammaIncReg(a, x), r.P, 1e-10, "a=%g x=%g", a, x)
			assert.InDelta(t, mathext.GammaIncRegComp(a, x), r.Q, 1e-10, "a=%g x=%g", a, x)
			lg, _ := math.Lgamma(a)
			assert.InDelta(t, lg, r.LnGammaA, 1e-12*math.Max(1, lg))
		}
	}
}

// Shapes >= 100 take the quadrature path.
func TestIncompleteLargeShape(t *testing.T) {
	for _, a := range []int{100, 150, 500} {
		for _, dx := range []float64{-30, -5, -1, 0, 1, 20} {
			x := float64(a) + dx
			r, err := Evaluate(float64(a), x)
			require.NoError(t, err)
			assert.InDelta(t, 1, r.P+r.Q, 1e-8)
			assert.InDelta(t, pInt(a, x), r.P, 1e-10, "a=%d x=%g", a, x)
		}
		p, err := P(float64(a), 3*float64(a))
		require.NoError(t, err)
		assert.InDelta(t, 1, p, 1e-12)
	}
}

func TestIncompleteZero(t *testing.T) {
	r, err := Evaluate(3.5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.P)
	assert.Equal(t, 1.0, r.Q)
}

func TestIncompleteInfinity(t *testing.T) {
	for _, a := range []float64{0.5, 1.5, 30, 250} {
		r, err := Evaluate(a, math.Inf(1))
		require.NoError(t, err)
		assert.Equal(t, 1.0, r.P)
		assert.Equal(t, 0.0, r.Q)
	}
}

func TestIncompleteKnownValues(t *testing.T) {
	p, err := P(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1-math.Exp(-2), p, 1e-14)

	q, err := Q(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-2), q, 1e-14)

	// P(1/2, x) = erf(sqrt(x))
	p, err = P(0.5, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Erf(math.Sqrt(2)), p, 1e-12)
}

func TestIncompleteDomain(t *testing.T) {
	bad := [][2]float64{{0, 1}, {-1, 1}, {1, -0.1}, {math.NaN(), 1}, {1, math.NaN()}}
	for _, c := range bad {
		_, err := Evaluate(c[0], c[1])
		assert.ErrorIs(t, err, numerr.ErrDomain, "a=%g x=%g", c[0], c[1])
		_, err = P(c[0], c[1])
		assert.ErrorIs(t, err, numerr.ErrDomain)
		_, err = Q(c[0], c[1])
		assert.ErrorIs(t, err, numerr.ErrDomain)
	}
}

func TestSeriesIterations(t *testing.T) {
	_, err := series(50, 50, lgamma(50))
	assert.NoError(t, err)

	// 1e6 needs far more than MaxIterations terms.
	_, err = series(1, 1e6, lgamma(1))
	assert.ErrorIs(t, err, numerr.ErrMaxIterations)
}

func TestContinuedFractionIterations(t *testing.T) {
	_, err := continuedFraction(20, 30, lgamma(20))
	assert.NoError(t, err)

	// Far below a+1 the fraction converges too slowly.
	_, err = continuedFraction(0.5, 0.001, lgamma(0.5))
	assert.ErrorIs(t, err, numerr.ErrMaxIterations)
}

func TestInverseP(t *testing.T) {
	cases := []struct{ a, x float64 }{
		{1, 2}, {2, 3}, {0.5, 0.25}, {3, 1}, {5, 10}, {10, 5},
		{20, 30}, {50, 50}, {100, 95}, {150, 151}, {500, 520},
	}
	for _, c := range cases {
		p, err := P(c.a, c.x)
		require.NoError(t, err)
		x, err := InverseP(p, c.a)
		require.NoError(t, err)
		assert.InDelta(t, c.x, x, 1e-8*math.Max(1, c.x), "a=%g x=%g", c.a, c.x)
	}
}

func TestInversePBounds(t *testing.T) {
	x, err := InverseP(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 4+100*2.0, x)

	x, err = InverseP(1.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 100.0, x)

	x, err = InverseP(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	x, err = InverseP(-1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, x)

	_, err = InverseP(0.5, 0)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = InverseP(math.NaN(), 1)
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

func TestInversePMatchesReference(t *testing.T) {
	for _, a := range []float64{0.3, 0.5, 1, 2.5, 7, 40} {
		for _, p := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
			x, err := InverseP(p, a)
			require.NoError(t, err)
			e := mathext.GammaIncRegInv(a, p)
			assert.InDelta(t, e, x, 1e-8*math.Max(1, e), "a=%g p=%g", a, p)
		}
	}
}

func TestInversePConvergedIsQuiet(t *testing.T) {
	backend := logging.InitForTesting(logging.DEBUG)
	defer logging.Reset()

	x, err := InverseP(1e-6, 1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log1p(-1e-6), x, 1e-18)

	for n := backend.Head(); n != nil; n = n.Next() {
		assert.NotContains(t, n.Record.Message(), "stopped after")
	}
}
