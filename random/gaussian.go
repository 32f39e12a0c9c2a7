package random

import (
	"fmt"
	"math/rand"

	"bitbucket.org/Davydov/gostat/numerr"
)

// GaussianRandomizer draws values from N(mu, sigma^2). Integer
// values are truncated toward zero.
type GaussianRandomizer struct {
	rnd       *rand.Rand
	mu, sigma float64
}

// NewGaussian creates a Gaussian randomizer with mean mu and
// standard deviation sigma > 0.
func NewGaussian(src rand.Source, mu, sigma float64) (*GaussianRandomizer, error) {
	g := &GaussianRandomizer{rnd: rand.New(src), mu: mu}
	if err := g.SetStdDev(sigma); err != nil {
		return nil, err
	}
	return g, nil
}

// Mean returns the mean.
func (g *GaussianRandomizer) Mean() float64 { return g.mu }

// SetMean sets the mean.
func (g *GaussianRandomizer) SetMean(mu float64) { g.mu = mu }

// StdDev returns the standard deviation.
func (g *GaussianRandomizer) StdDev() float64 { return g.sigma }

// SetStdDev sets the standard deviation, which must be positive.
func (g *GaussianRandomizer) SetStdDev(sigma float64) error {
	if !(sigma > 0) {
		return fmt.Errorf("random: %w: standard deviation must be positive, got %g", numerr.ErrDomain, sigma)
	}
	g.sigma = sigma
	return nil
}

// Float64 returns a normally distributed value.
func (g *GaussianRandomizer) Float64() float64 {
	return g.sigma*g.rnd.NormFloat64() + g.mu
}

// Bool returns true if a drawn value is below the mean.
func (g *GaussianRandomizer) Bool() bool { return g.BoolBelow(g.mu) }

// BoolBelow returns true if a drawn value is below threshold.
func (g *GaussianRandomizer) BoolBelow(threshold float64) bool {
	return g.Float64() < threshold
}

// Int returns a drawn value truncated to int.
func (g *GaussianRandomizer) Int() int { return int(g.Float64()) }

// Int64 returns a drawn value truncated to int64.
func (g *GaussianRandomizer) Int64() int64 { return int64(g.Float64()) }

// Float32 returns a drawn value as float32.
func (g *GaussianRandomizer) Float32() float32 { return float32(g.Float64()) }

// Fill fills xs with drawn values.
func (g *GaussianRandomizer) Fill(xs []float64) { fill(g, xs) }

// Kind returns Gaussian.
func (g *GaussianRandomizer) Kind() Kind { return Gaussian }

// Seed reseeds the underlying source.
func (g *GaussianRandomizer) Seed(seed int64) { g.rnd.Seed(seed) }
