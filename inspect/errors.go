package inspect

import (
	"errors"
	"fmt"

	"github.com/anirudhraja/protolens/wire"
)

// ErrDepthExceeded is returned when groups nest deeper than the configured
// maximum. Length-delimited payloads past the limit fall back to Bytes
// instead.
var ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

// DecodeError is a fatal decode failure. Err is a wire sentinel or
// ErrDepthExceeded, so errors.Is works against either.
type DecodeError struct {
	Offset int              // absolute byte offset
	Field  wire.FieldNumber // 0 when the key could not be read
	Path   Path             // enclosing messages and groups
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode failed at offset %d", e.Offset)
	if len(e.Path) > 0 {
		msg += fmt.Sprintf(" in [%s]", e.Path)
	}
	if e.Field != 0 {
		msg += fmt.Sprintf(" (field %d)", e.Field)
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// wrapWithPath turns a wire error into a DecodeError carrying path.
func wrapWithPath(err error, path Path) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}

	var ue *wire.UnitError
	if errors.As(err, &ue) {
		return &DecodeError{Offset: ue.Offset, Field: ue.Field, Path: path, Err: ue.Err}
	}
	return &DecodeError{Path: path, Err: err}
}
