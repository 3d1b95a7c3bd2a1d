package inspect

import (
	"math"
	"unicode/utf8"

	"github.com/anirudhraja/protolens/wire"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindVarInt Kind = iota
	KindFixed32
	KindFixed64
	KindMessage
	KindBytes
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindVarInt:
		return "varint"
	case KindFixed32:
		return "fixed32"
	case KindFixed64:
		return "fixed64"
	case KindMessage:
		return "message"
	case KindBytes:
		return "bytes"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Value is one decoded field value. The concrete type is one of VarInt,
// Fixed32, Fixed64, *Message, Bytes or Group.
type Value interface {
	Kind() Kind
	isValue()
}

// VarInt holds a varint in both of its integer readings. Signed is the
// zigzag decoding of Unsigned.
type VarInt struct {
	Unsigned uint64
	Signed   int64
}

// NewVarInt builds a VarInt from the raw varint.
func NewVarInt(v uint64) VarInt {
	return VarInt{Unsigned: v, Signed: wire.DecodeZigZag64(v)}
}

// Fixed32 holds four little-endian bytes read three ways.
type Fixed32 struct {
	U32 uint32
	I32 int32
	F32 float32
}

// NewFixed32 builds a Fixed32 from the raw bits.
func NewFixed32(v uint32) Fixed32 {
	return Fixed32{U32: v, I32: int32(v), F32: math.Float32frombits(v)}
}

// Fixed64 holds eight little-endian bytes read three ways.
type Fixed64 struct {
	U64 uint64
	I64 int64
	F64 float64
}

// NewFixed64 builds a Fixed64 from the raw bits.
func NewFixed64(v uint64) Fixed64 {
	return Fixed64{U64: v, I64: int64(v), F64: math.Float64frombits(v)}
}

// Bytes is a length-delimited payload that did not read as a message. Text
// is set, and UTF8 is true, only when Raw is valid UTF-8.
type Bytes struct {
	Raw  []byte
	Text string
	UTF8 bool
}

// NewBytes copies raw and fills in the text reading when there is one.
func NewBytes(raw []byte) Bytes {
	b := Bytes{Raw: append([]byte{}, raw...)}
	if utf8.Valid(raw) {
		b.Text = string(raw)
		b.UTF8 = true
	}
	return b
}

// Group is the body of a deprecated start/end group pair.
type Group struct {
	Message *Message
}

func (VarInt) Kind() Kind   { return KindVarInt }
func (Fixed32) Kind() Kind  { return KindFixed32 }
func (Fixed64) Kind() Kind  { return KindFixed64 }
func (*Message) Kind() Kind { return KindMessage }
func (Bytes) Kind() Kind    { return KindBytes }
func (Group) Kind() Kind    { return KindGroup }

func (VarInt) isValue()   {}
func (Fixed32) isValue()  {}
func (Fixed64) isValue()  {}
func (*Message) isValue() {}
func (Bytes) isValue()    {}
func (Group) isValue()    {}
