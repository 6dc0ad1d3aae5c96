package stack

import "errors"

// ---------------------------------------------------------------------------
// Error types
// ---------------------------------------------------------------------------

var (
	ErrInvalidInitialSize = errors.New("initial size must be positive")
	ErrInvalidGrowthStep  = errors.New("growth step must be positive")
	ErrUnderflow          = errors.New("stack underflow")
	ErrNegativeCount      = errors.New("negative byte count")
	ErrOutOfBounds        = errors.New("range outside allocated buffer")
	ErrReleased           = errors.New("stack already released")
)
