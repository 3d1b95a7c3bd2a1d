package wire

import (
	"encoding/binary"
)

// FixedDecoder reads the little-endian fixed-width wire types.
type FixedDecoder struct {
	decoder *Decoder
}

// NewFixedDecoder wraps d.
func NewFixedDecoder(d *Decoder) *FixedDecoder {
	return &FixedDecoder{decoder: d}
}

// DecodeFixed32 reads four bytes as a uint32.
func (fd *FixedDecoder) DecodeFixed32() (uint32, error) {
	b, ok := fd.decoder.next(4)
	if !ok {
		return 0, ErrTruncatedFixed
	}
	return binary.LittleEndian.Uint32(b), nil
}

// DecodeFixed64 reads eight bytes as a uint64.
func (fd *FixedDecoder) DecodeFixed64() (uint64, error) {
	b, ok := fd.decoder.next(8)
	if !ok {
		return 0, ErrTruncatedFixed
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (d *Decoder) DecodeFixed32() (uint32, error) { return NewFixedDecoder(d).DecodeFixed32() }
func (d *Decoder) DecodeFixed64() (uint64, error) { return NewFixedDecoder(d).DecodeFixed64() }

// next consumes n bytes, or nothing when fewer remain. The result is capped
// at n so appends cannot reach the following bytes.
func (d *Decoder) next(n int) ([]byte, bool) {
	if n < 0 || n > len(d.buf)-d.pos {
		return nil, false
	}
	b := d.buf[d.pos : d.pos+n : d.pos+n]
	d.pos += n
	return b, true
}
