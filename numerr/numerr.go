// Package numerr defines the error kinds shared by the numerical
// packages.
//
// Errors returned by gamma, chisq, normal and random wrap one of the
// sentinels below, so callers test them with errors.Is.
package numerr

import "errors"

var (
	// ErrDomain is returned when an argument violates a documented
	// precondition (non-positive shape, probability out of range,
	// factorial index out of table). It is always detected before
	// any iterative work starts.
	ErrDomain = errors.New("argument out of domain")

	// ErrMaxIterations is returned when a series or continued
	// fraction does not reach machine precision within its
	// iteration budget.
	ErrMaxIterations = errors.New("maximum number of iterations exceeded")
)
