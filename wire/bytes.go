package wire

// BytesDecoder reads length-delimited payloads.
type BytesDecoder struct {
	decoder *Decoder
}

// NewBytesDecoder wraps d.
func NewBytesDecoder(d *Decoder) *BytesDecoder {
	return &BytesDecoder{decoder: d}
}

// DecodeRawBytes reads a length prefix and returns that many bytes without
// copying. On failure the cursor stays before the prefix.
func (bd *BytesDecoder) DecodeRawBytes() ([]byte, error) {
	d := bd.decoder
	start := d.pos
	length, err := d.DecodeVarint()
	if err != nil {
		return nil, err
	}
	if length > uint64(d.Remaining()) {
		d.pos = start
		return nil, ErrTruncatedLength
	}
	data, _ := d.next(int(length))
	return data, nil
}

func (d *Decoder) DecodeRawBytes() ([]byte, error) { return NewBytesDecoder(d).DecodeRawBytes() }
