package view

import (
	"errors"
	"fmt"
)

// Reading malformed or truncated font data must never panic. Every fallible
// operation in this package reports one of the error kinds below; callers
// decide whether to skip a table, abort, or substitute a default.

// ErrOutOfBounds is returned whenever a read, an advance or a final length
// check would exceed the available byte segment.
var ErrOutOfBounds = errors.New("read exceeds segment bounds")

// ErrNullOffset is returned when a null (zero) offset is resolved. For
// fields the schema marks nullable this is not a defect; ResolveNullable
// translates it into an absent Option. For non-nullable fields it is a
// validation error.
var ErrNullOffset = errors.New("offset is null")

// ErrDepthExceeded is returned by a DepthGuard whose budget is used up.
var ErrDepthExceeded = errors.New("offset resolution depth exceeded")

// FormatError reports a format-tagged union whose format code matched no
// registered variant.
type FormatError struct {
	Code uint16
}

func (e FormatError) Error() string {
	return fmt.Sprintf("invalid format code %d", e.Code)
}

// DiscriminantError reports an enumerated value outside its defined set,
// read from a field where strict validation is required.
type DiscriminantError struct {
	Field string
	Value int64
}

func (e DiscriminantError) Error() string {
	return fmt.Sprintf("invalid value %d for %s", e.Value, e.Field)
}

// IsInvalidFormat reports whether err is a FormatError.
func IsInvalidFormat(err error) bool {
	var fe FormatError
	return errors.As(err, &fe)
}
