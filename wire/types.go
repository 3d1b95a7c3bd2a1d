package wire

// ===== PROTOBUF WIRE FORMAT TYPES =====

// WireType represents protobuf wire format types
type WireType int32

const (
	WireVarint     WireType = 0 // int32, int64, uint32, uint64, sint32, sint64, bool, enum
	WireFixed64    WireType = 1 // fixed64, sfixed64, double
	WireBytes      WireType = 2 // string, bytes, embedded messages, packed repeated fields
	WireStartGroup WireType = 3 // deprecated group start marker
	WireEndGroup   WireType = 4 // deprecated group end marker
	WireFixed32    WireType = 5 // fixed32, sfixed32, float
)

// String returns the lower-case name used in dumps.
func (t WireType) String() string {
	switch t {
	case WireVarint:
		return "varint"
	case WireFixed64:
		return "fixed64"
	case WireBytes:
		return "bytes"
	case WireStartGroup:
		return "start_group"
	case WireEndGroup:
		return "end_group"
	case WireFixed32:
		return "fixed32"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the six wire types defined by the format.
func (t WireType) Valid() bool {
	return t >= WireVarint && t <= WireFixed32
}

// FieldNumber represents a protobuf field number
type FieldNumber int32

const (
	MinFieldNumber FieldNumber = 1
	MaxFieldNumber FieldNumber = 1<<29 - 1
)

// Tag represents a protobuf field key (field number + wire type)
type Tag uint64

// MakeTag creates a tag from field number and wire type
func MakeTag(fieldNumber FieldNumber, wireType WireType) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag parses a tag into field number and wire type
func ParseTag(tag Tag) (FieldNumber, WireType) {
	return FieldNumber(tag >> 3), WireType(tag & 0x7)
}

// Unit is a single key/value unit read off the wire. Only the payload field
// matching Type is populated; group markers carry no payload.
type Unit struct {
	Offset  int // absolute offset of the key
	Field   FieldNumber
	Type    WireType
	Varint  uint64
	Fixed32 uint32
	Fixed64 uint64
	Bytes   []byte // aliases the decoder's buffer
}
