package bt

import "errors"

// Contract violations detected while building a tree. Constructors panic with
// these values since a malformed tree cannot be run safely.
var (
	ErrNilTask          = errors.New("bt: task is nil")
	ErrNilAction        = errors.New("bt: leaf action is nil")
	ErrNilStrategy      = errors.New("bt: order strategy is nil")
	ErrNilRandom        = errors.New("bt: random source is nil")
	ErrRandomOutOfRange = errors.New("bt: random source returned an index out of range")
	ErrInvalidCount     = errors.New("bt: invalid count")
)
