package lawfold

import "errors"

var (
	// ErrInsufficientSamples is returned when a statistic needs more samples
	// than the accumulator holds.
	ErrInsufficientSamples = errors.New("lawfold: insufficient samples")

	// ErrInvalidExponent is returned by Power for n == 0, which has no
	// meaning without an identity element.
	ErrInvalidExponent = errors.New("lawfold: exponent must be positive")

	// ErrUnverified is returned by a Registry for types that never passed
	// law verification.
	ErrUnverified = errors.New("lawfold: type not verified")

	// ErrMissingLaw is returned by a Registry when a verified type lacks a
	// required law.
	ErrMissingLaw = errors.New("lawfold: required law not verified")
)
