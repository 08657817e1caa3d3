package asset

import (
	"errors"
	"fmt"
)

// DecodeError reports a bundled resource that is missing or does not match
// its expected schema.
type DecodeError struct {
	Resource string
	// Index is the position of the offending record, or -1 when the error is
	// not tied to a single record.
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	msg := "decoding " + e.Resource
	if e.Index >= 0 {
		msg += fmt.Sprintf(": item %d", e.Index)
	}
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ErrMissingField is wrapped by a DecodeError when a required field is absent or null.
var ErrMissingField = errors.New("missing required field")
