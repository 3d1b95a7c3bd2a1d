package inspect

import (
	"context"

	"github.com/anirudhraja/protolens/wire"
)

// DefaultMaxDepth bounds message and group nesting.
const DefaultMaxDepth = 100

type options struct {
	maxDepth int
}

// Option configures Decode.
type Option func(*options)

// WithMaxDepth sets the nesting limit. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// Decode reconstructs a message from buf without a schema. Every numeric
// field is kept in all of its readings; each length-delimited field becomes
// a nested message when its payload is a well-formed unit sequence, and
// Bytes otherwise.
//
// Decode either consumes all of buf or returns a *DecodeError and no
// message. It keeps no state between calls and is safe for concurrent use.
func Decode(buf []byte, opts ...Option) (*Message, error) {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{maxDepth: o.maxDepth}
	return b.message(wire.NewDecoder(buf), nil, 0)
}

// DecodeContext runs Decode on its own goroutine and gives up when ctx is
// done. The abandoned decode still runs to completion in the background.
func DecodeContext(ctx context.Context, buf []byte, opts ...Option) (*Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		msg *Message
		err error
	}
	done := make(chan result, 1)
	go func() {
		msg, err := Decode(buf, opts...)
		done <- result{msg, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.msg, r.err
	}
}

type builder struct {
	maxDepth int
}

// message reads units from d until it is exhausted or, when group is
// non-zero, until the end marker of that group.
func (b *builder) message(d *wire.Decoder, path Path, group wire.FieldNumber) (*Message, error) {
	msg := &Message{}
	for !d.Done() {
		unit, err := d.ReadUnit()
		if err != nil {
			return nil, wrapWithPath(err, path)
		}

		var value Value
		switch unit.Type {
		case wire.WireVarint:
			value = NewVarInt(unit.Varint)
		case wire.WireFixed32:
			value = NewFixed32(unit.Fixed32)
		case wire.WireFixed64:
			value = NewFixed64(unit.Fixed64)
		case wire.WireBytes:
			value = b.lengthDelimited(unit.Bytes, d.Offset()-len(unit.Bytes), path.Append(unit.Field))
		case wire.WireStartGroup:
			childPath := path.Append(unit.Field)
			if len(childPath) > b.maxDepth {
				return nil, &DecodeError{Offset: unit.Offset, Field: unit.Field, Path: path, Err: ErrDepthExceeded}
			}
			body, err := b.message(d, childPath, unit.Field)
			if err != nil {
				return nil, err
			}
			value = Group{Message: body}
		case wire.WireEndGroup:
			if group == 0 || unit.Field != group {
				return nil, &DecodeError{Offset: unit.Offset, Field: unit.Field, Path: path, Err: wire.ErrMismatchedEndGroup}
			}
			msg.sort()
			return msg, nil
		}
		msg.Entries = append(msg.Entries, Entry{Tag: unit.Field, Value: value})
	}

	if group != 0 {
		return nil, &DecodeError{Offset: d.Offset(), Field: group, Path: path, Err: wire.ErrUnterminatedGroup}
	}
	msg.sort()
	return msg, nil
}

// lengthDelimited picks between a nested message and Bytes. It never fails.
func (b *builder) lengthDelimited(payload []byte, offset int, path Path) Value {
	if len(path) <= b.maxDepth && wire.Validate(payload) == nil {
		nested, err := b.message(wire.NewDecoderAt(payload, offset), path, 0)
		if err == nil {
			return nested
		}
	}
	return NewBytes(payload)
}
