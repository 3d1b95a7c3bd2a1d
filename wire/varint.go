package wire

const maxVarintLen = 10

// VarintDecoder handles varint decoding operations
type VarintDecoder struct {
	decoder *Decoder
}

// NewVarintDecoder creates a new varint decoder
func NewVarintDecoder(d *Decoder) *VarintDecoder {
	return &VarintDecoder{decoder: d}
}

// DecodeVarint decodes a little-endian base-128 varint from the current
// position. On failure the cursor is left where the varint started.
func (vd *VarintDecoder) DecodeVarint() (uint64, error) {
	d := vd.decoder
	var result uint64
	for i := 0; i < maxVarintLen; i++ {
		if d.pos+i >= len(d.buf) {
			return 0, ErrTruncatedVarint
		}
		b := d.buf[d.pos+i]
		if b&0x80 == 0 {
			// The tenth byte only has room for bit 63.
			if i == maxVarintLen-1 && b > 1 {
				return 0, ErrVarintOverflow
			}
			d.pos += i + 1
			return result | uint64(b)<<(7*i), nil
		}
		result |= uint64(b&0x7F) << (7 * i)
	}
	return 0, ErrTruncatedVarint
}

// DecodeZigZag64 decodes a zigzag-encoded 64-bit integer
func DecodeZigZag64(encoded uint64) int64 {
	return int64((encoded >> 1) ^ uint64(-int64(encoded&1)))
}

// DecodeVarint - convenience method for main decoder
func (d *Decoder) DecodeVarint() (uint64, error) {
	return NewVarintDecoder(d).DecodeVarint()
}
