// Package random provides uniform and Gaussian random number
// generators sharing a common Randomizer interface.
package random

import (
	"fmt"
	"math/rand"
	"time"

	"bitbucket.org/Davydov/gostat/numerr"
)

// Kind selects a Randomizer implementation.
type Kind int

const (
	// Uniform draws values uniformly.
	Uniform Kind = iota
	// Gaussian draws normally distributed values.
	Gaussian
)

// DefaultKind is used when no kind is requested.
const DefaultKind = Uniform

func (k Kind) String() string {
	switch k {
	case Uniform:
		return "uniform"
	case Gaussian:
		return "gaussian"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name (as returned by Kind.String) to Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "uniform":
		return Uniform, nil
	case "gaussian":
		return Gaussian, nil
	}
	return 0, fmt.Errorf("random: %w: unknown randomizer kind %q", numerr.ErrDomain, s)
}

// Randomizer generates random values of several types.
type Randomizer interface {
	Bool() bool
	Int() int
	Int64() int64
	Float32() float32
	Float64() float64
	// Fill sets every element of xs to Float64().
	Fill(xs []float64)
	Kind() Kind
	Seed(seed int64)
}

// New creates a randomizer of a given kind drawing from src. If src is
// nil, a time seeded source is used. Gaussian randomizers have zero
// mean and unit standard deviation. Unknown kinds produce a uniform
// randomizer.
func New(kind Kind, src rand.Source) Randomizer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	switch kind {
	case Gaussian:
		return &GaussianRandomizer{rnd: rand.New(src), mu: 0, sigma: 1}
	default:
		return NewUniform(src)
	}
}

func fill(r Randomizer, xs []float64) {
	for i := range xs {
		xs[i] = r.Float64()
	}
}
