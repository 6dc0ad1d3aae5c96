package packed

import "errors"

// ---------------------------------------------------------------------------
// Error types
// ---------------------------------------------------------------------------

var (
	ErrBadTag        = errors.New("unknown value tag")
	ErrBadLiteral    = errors.New("malformed literal")
	ErrStringTooLong = errors.New("string payload exceeds the length field")
)
