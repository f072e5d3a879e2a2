package swarm

import "errors"

// Domain errors for particle operations.
var (
	// ErrConfiguration indicates an invalid enum value, a missing schedule
	// parameter, or inverted bounds.
	ErrConfiguration = errors.New("swarm: invalid configuration")

	// ErrDimensionMismatch indicates position/velocity/bound vectors of
	// unequal length.
	ErrDimensionMismatch = errors.New("swarm: dimension mismatch")
)
