package wire

import (
	"errors"
	"fmt"
)

// Errors returned by the primitive reader and the structural validator.
var (
	ErrTruncatedVarint    = errors.New("truncated varint")
	ErrVarintOverflow     = errors.New("varint overflows 64 bits")
	ErrTruncatedFixed     = errors.New("truncated fixed-width value")
	ErrTruncatedLength    = errors.New("length-delimited field exceeds remaining bytes")
	ErrUnknownWireType    = errors.New("unknown wire type")
	ErrInvalidFieldNumber = errors.New("invalid field number")
	ErrUnterminatedGroup  = errors.New("group is missing its end marker")
	ErrMismatchedEndGroup = errors.New("end group marker does not match an open group")
)

// UnitError reports where in the buffer a unit failed to read.
type UnitError struct {
	Offset int         // absolute offset of the failing key or value
	Field  FieldNumber // 0 when the key itself could not be read
	Err    error       // one of the sentinels above
}

// Error implements the error interface.
func (e *UnitError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d, field %d: %v", e.Offset, e.Field, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *UnitError) Unwrap() error {
	return e.Err
}

func unitError(offset int, field FieldNumber, err error) error {
	return &UnitError{Offset: offset, Field: field, Err: err}
}
