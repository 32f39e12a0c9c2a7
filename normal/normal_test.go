package normal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"bitbucket.org/Davydov/gostat/numerr"
)

func TestDefaults(t *testing.T) {
	d := New()
	assert.Equal(t, 0.0, d.Mean())
	assert.Equal(t, 1.0, d.StdDev())
	assert.Equal(t, 1.0, d.Variance())
	assert.Equal(t, "Normal(mu=0, sigma=1)", d.String())
}

func TestSetters(t *testing.T) {
	d, err := NewWith(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.Mean())
	assert.Equal(t, 4.0, d.Variance())

	d.SetMean(-1)
	assert.Equal(t, -1.0, d.Mean())

	require.NoError(t, d.SetVariance(9))
	assert.Equal(t, 3.0, d.StdDev())

	for _, v := range []float64{0, -1, math.NaN()} {
		assert.ErrorIs(t, d.SetStdDev(v), numerr.ErrDomain)
		assert.ErrorIs(t, d.SetVariance(v), numerr.ErrDomain)
	}
	assert.Equal(t, 3.0, d.StdDev())

	_, err = NewWith(0, 0)
	assert.ErrorIs(t, err, numerr.ErrDomain)
}

func TestStdNormalCDF(t *testing.T) {
	d := New()
	want := map[float64]float64{
		-3: 0.00135, -2: 0.02275, -1: 0.15866, 0: 0.5,
		1: 0.84134, 2: 0.97725, 3: 0.99865,
	}
	for x, e := range want {
		assert.InDelta(t, e, d.CDF(x), 1e-3, "x=%g", x)
		c, err := CDF(x, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, d.CDF(x), c)
	}
	assert.InDelta(t, 0.5, d.CDF(0), 1e-14)
	assert.InDelta(t, 0, d.CDF(-1e4), 1e-15)
	assert.InDelta(t, 1, d.CDF(1e4), 1e-15)
}

func TestProb(t *testing.T) {
	d := New()
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), d.Prob(0), 1e-15)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi)*math.Exp(-0.5), d.Prob(-1), 1e-15)
	assert.InDelta(t, 0, d.Prob(1e4), 1e-15)

	for _, c := range []struct{ mu, sigma float64 }{{0, 1}, {2, 0.5}, {-3, 4}} {
		ref := distuv.Normal{Mu: c.mu, Sigma: c.sigma}
		for x := -10.0; x <= 10; x += 0.5 {
			p, err := Prob(x, c.mu, c.sigma)
			require.NoError(t, err)
			assert.InDelta(t, ref.Prob(x), p, 1e-14)
			cd, err := CDF(x, c.mu, c.sigma)
			require.NoError(t, err)
			assert.InDelta(t, ref.CDF(x), cd, 1e-13)
		}
	}
}

func TestInvCDF(t *testing.T) {
	for _, c := range []struct{ mu, sigma float64 }{{0, 1}, {2, 0.5}, {-3, 4}} {
		d, err := NewWith(c.mu, c.sigma)
		require.NoError(t, err)
		ref := distuv.Normal{Mu: c.mu, Sigma: c.sigma}
		for _, p := range []float64{1e-6, 0.001, 0.025, 0.3, 0.5, 0.7, 0.975, 0.999} {
			x, err := d.InvCDF(p)
			require.NoError(t, err)
			assert.InDelta(t, ref.Quantile(p), x, 1e-8*c.sigma, "p=%g", p)
			assert.InDelta(t, p, d.CDF(x), 1e-6)
		}
	}
	x, err := InvCDF(0.975, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.959964, x, 1e-6)
}

func TestMahalanobis(t *testing.T) {
	d, err := NewWith(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, d.Mahalanobis(4))
	assert.Equal(t, 1.5, d.Mahalanobis(-2))
	m, err := Mahalanobis(4, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, m)
}

func TestDomainErrors(t *testing.T) {
	for _, sigma := range []float64{0, -1} {
		_, err := Prob(0, 0, sigma)
		assert.ErrorIs(t, err, numerr.ErrDomain)
		_, err = CDF(0, 0, sigma)
		assert.ErrorIs(t, err, numerr.ErrDomain)
		_, err = InvCDF(0.5, 0, sigma)
		assert.ErrorIs(t, err, numerr.ErrDomain)
		_, err = Mahalanobis(0, 0, sigma)
		assert.ErrorIs(t, err, numerr.ErrDomain)
	}
	d := New()
	for _, p := range []float64{0, 1, -0.5, 2, math.NaN()} {
		_, err := d.InvCDF(p)
		assert.ErrorIs(t, err, numerr.ErrDomain, "p=%g", p)
	}
}
