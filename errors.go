package mortgage

import "errors"

var (
	// ErrInvalidInput is wrapped by every validation failure.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoConvergence is returned when an iterative solver gives up.
	ErrNoConvergence = errors.New("no convergence")
	// ErrUnknownCalc is returned when decoding a scenario of an unknown type.
	ErrUnknownCalc = errors.New("unknown calculation")
)
