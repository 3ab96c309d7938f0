package schema

import "errors"

var (
	// ErrSchema reports a malformed descriptor.
	ErrSchema = errors.New("schema error")
	// ErrInvalid is returned by Result.Err for a failed validation.
	ErrInvalid = errors.New("validation failed")
)
