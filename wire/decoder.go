package wire

// Decoder is a cursor over a protobuf wire buffer. It reads units one at a
// time and never interprets length-delimited payloads.
type Decoder struct {
	buf  []byte
	pos  int
	base int // absolute offset of buf[0], for error reporting
}

// NewDecoder creates a new wire format decoder
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		buf: data,
		pos: 0,
	}
}

// NewDecoderAt creates a decoder over a sub-slice that starts at the given
// absolute offset of some enclosing buffer.
func NewDecoderAt(data []byte, base int) *Decoder {
	return &Decoder{
		buf:  data,
		pos:  0,
		base: base,
	}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Done reports whether the whole buffer has been consumed.
func (d *Decoder) Done() bool {
	return d.pos >= len(d.buf)
}

// Offset returns the absolute offset of the cursor.
func (d *Decoder) Offset() int {
	return d.base + d.pos
}

// ReadKey reads a field key and splits it into field number and wire type.
func (d *Decoder) ReadKey() (FieldNumber, WireType, error) {
	offset := d.Offset()
	key, err := d.DecodeVarint()
	if err != nil {
		return 0, 0, unitError(offset, 0, err)
	}

	fieldNumber, wireType := ParseTag(Tag(key))
	if key>>3 > uint64(MaxFieldNumber) || fieldNumber < MinFieldNumber {
		return 0, 0, unitError(offset, 0, ErrInvalidFieldNumber)
	}
	if !wireType.Valid() {
		return 0, 0, unitError(offset, fieldNumber, ErrUnknownWireType)
	}
	return fieldNumber, wireType, nil
}

// ReadUnit reads one key and its value. Group markers are returned as-is
// with no payload; consuming the group body is up to the caller.
func (d *Decoder) ReadUnit() (Unit, error) {
	unit := Unit{Offset: d.Offset()}
	fieldNumber, wireType, err := d.ReadKey()
	if err != nil {
		return Unit{}, err
	}
	unit.Field = fieldNumber
	unit.Type = wireType

	valueOffset := d.Offset()
	switch wireType {
	case WireVarint:
		unit.Varint, err = d.DecodeVarint()
	case WireFixed32:
		unit.Fixed32, err = d.DecodeFixed32()
	case WireFixed64:
		unit.Fixed64, err = d.DecodeFixed64()
	case WireBytes:
		unit.Bytes, err = d.DecodeRawBytes()
	case WireStartGroup, WireEndGroup:
		// markers only
	}
	if err != nil {
		return Unit{}, unitError(valueOffset, fieldNumber, err)
	}
	return unit, nil
}
