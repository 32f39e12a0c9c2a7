package random

import (
	"fmt"
	"math"
	"math/rand"

	"bitbucket.org/Davydov/gostat/numerr"
)

// UniformRandomizer draws uniformly distributed values.
type UniformRandomizer struct {
	rnd *rand.Rand
}

// NewUniform creates a uniform randomizer using src.
func NewUniform(src rand.Source) *UniformRandomizer {
	return &UniformRandomizer{rnd: rand.New(src)}
}

// Bool returns true or false with equal probability.
func (u *UniformRandomizer) Bool() bool { return u.rnd.Int63()&1 == 1 }

// Int returns a non-negative int.
func (u *UniformRandomizer) Int() int { return u.rnd.Int() }

// Int64 returns a non-negative int64.
func (u *UniformRandomizer) Int64() int64 { return u.rnd.Int63() }

// Float32 returns a value in [0, 1).
func (u *UniformRandomizer) Float32() float32 { return u.rnd.Float32() }

// Float64 returns a value in [0, 1).
func (u *UniformRandomizer) Float64() float64 { return u.rnd.Float64() }

// Fill fills xs with values in [0, 1).
func (u *UniformRandomizer) Fill(xs []float64) { fill(u, xs) }

// Kind returns Uniform.
func (u *UniformRandomizer) Kind() Kind { return Uniform }

// Seed reseeds the underlying source.
func (u *UniformRandomizer) Seed(seed int64) { u.rnd.Seed(seed) }

// Range returns a value in [min, max).
func (u *UniformRandomizer) Range(min, max float64) (float64, error) {
	if !(max > min) {
		return 0, fmt.Errorf("random: %w: empty range [%g, %g)", numerr.ErrDomain, min, max)
	}
	v := u.rnd.Float64()*(max-min) + min
	if v >= max {
		v = math.Nextafter(max, min)
	}
	return v, nil
}

// IntRange returns an integer in [min, max).
func (u *UniformRandomizer) IntRange(min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("random: %w: empty range [%d, %d)", numerr.ErrDomain, min, max)
	}
	// the width may not fit in an int
	n := uint64(max) - uint64(min)
	if n <= math.MaxInt64 {
		return min + int(u.rnd.Int63n(int64(n))), nil
	}
	for {
		if v := u.rnd.Uint64(); v < n {
			return min + int(v), nil
		}
	}
}

// FillRange fills xs with values in [min, max).
func (u *UniformRandomizer) FillRange(xs []float64, min, max float64) error {
	if !(max > min) {
		return fmt.Errorf("random: %w: empty range [%g, %g)", numerr.ErrDomain, min, max)
	}
	for i := range xs {
		v, err := u.Range(min, max)
		if err != nil {
			return err
		}
		xs[i] = v
	}
	return nil
}
