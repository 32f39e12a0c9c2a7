package gamma

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitbucket.org/Davydov/gostat/numerr"
)

func TestQuadratureWeights(t *testing.T) {
	sum := 0.0
	for j := 0; j < nGauss; j++ {
		sum += gaussLegendreW[j]
		require.True(t, gaussLegendreY[j] > 0 && gaussLegendreY[j] < 1)
		if j > 0 {
			assert.Greater(t, gaussLegendreY[j], gaussLegendreY[j-1])
		}
	}
	assert.InDelta(t, 1, sum, 1e-12)
}

func TestLogGamma(t *testing.T) {
	v, err := LogGamma(1)
	require.NoError(t, err)
	assert.InDelta(t, 0, v, 1e-14)

	fact := 1.0
	for n := 2; n <= 5; n++ {
		fact *= float64(n - 1)
		v, err := LogGamma(float64(n))
		require.NoError(t, err)
		assert.InDelta(t, math.Log(fact), v, 1e-8, "n=%d", n)
	}

	for _, x := range []float64{0.1, 0.5, 1.5, 3, 10, 100, 1e5} {
		v, err := LogGamma(x)
		require.NoError(t, err)
		e, _ := math.Lgamma(x)
		assert.InDelta(t, e, v, 1e-12*math.Max(1, math.Abs(e)), "x=%g", x)
	}
}

func TestLogGammaDomain(t *testing.T) {
	for _, x := range []float64{0, -1, -0.5, math.NaN()} {
		_, err := LogGamma(x)
		assert.ErrorIs(t, err, numerr.ErrDomain, "x=%g", x)
	}
}

func TestFactorial(t *testing.T) {
	v, err := Factorial(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = Factorial(5)
	require.NoError(t, err)
	assert.Equal(t, 120.0, v)

	v, err = Factorial(MaxFactorial)
	require.NoError(t, err)
	assert.False(t, math.IsInf(v, 0))
	assert.InEpsilon(t, math.Gamma(MaxFactorial+1), v, 1e-12)

	for _, n := range []int{-1, MaxFactorial + 1} {
		_, err = Factorial(n)
		assert.ErrorIs(t, err, numerr.ErrDomain, "n=%d", n)
	}
}

func TestLogFactorial(t *testing.T) {
	v, err := LogFactorial(3)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(6), v, 1e-12)

	for _, n := range []int{0, 1, 10, LogFactorialCacheSize - 1, LogFactorialCacheSize, 2500} {
		v, err := LogFactorial(n)
		require.NoError(t, err)
		e, _ := math.Lgamma(float64(n) + 1)
		assert.InDelta(t, e, v, 1e-12*math.Max(1, e), "n=%d", n)
	}

	_, err = LogFactorial(-1)
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

func TestBinomial(t *testing.T) {
	cases := []struct {
		n, k int
		want float64
	}{
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{52, 5, 2598960},
		{170, 1, 170},
		{200, 2, 19900},
		{1000, 3, 166167000},
	}
	for _, c := range cases {
		v, err := Binomial(c.n, c.k)
		require.NoError(t, err)
		assert.Equal(t, c.want, v, "(%d %d)", c.n, c.k)
	}

	for _, c := range [][2]int{{5, 6}, {5, -1}} {
		_, err := Binomial(c[0], c[1])
		assert.ErrorIs(t, err, numerr.ErrDomain)
	}
}

func TestBeta(t *testing.T) {
	v, err := Beta(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/12, v, 1e-12)

	v, err = Beta(0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v, 1e-12)

	_, err = Beta(0, 1)
	assert.ErrorIs(t, err, numerr.ErrDomain)
	_, err = Beta(1, -2)
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

// Concurrent first use must give the same tables as sequential use.
func TestCachesConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	res := make([][2]float64, 16)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, _ := Factorial(20)
			lf, _ := LogFactorial(1500)
			res[i] = [2]float64{f, lf}
		}(i)
	}
	wg.Wait()
	WarmCaches()
	e, _ := math.Lgamma(1501)
	for _, r := range res {
		assert.Equal(t, 2432902008176640000.0, r[0])
		assert.InDelta(t, e, r[1], 1e-12*e)
	}
}
