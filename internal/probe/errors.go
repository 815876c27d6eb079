package probe

import "errors"

// Error constants.
var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMismatch         = errors.New("response mismatch")
)
