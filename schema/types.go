package schema

// File is an inferred .proto file
type File struct {
	Name     string     `json:"name"`     // inferred.proto
	Package  string     `json:"package"`  // package name
	Syntax   string     `json:"syntax"`   // always proto2, so repeated scalars stay unpacked
	Messages []*Message `json:"messages"` // message definitions
}

// Message represents an inferred message definition
type Message struct {
	Name        string     `json:"name"`         // "Root", "Field3"
	Fields      []*Field   `json:"fields"`       // message fields, by number
	NestedTypes []*Message `json:"nested_types"` // nested messages
	Comments    []string   `json:"comments"`     // tags that could not be typed
}

// Field represents a message field
type Field struct {
	Name   string     `json:"name"`   // "field_3"
	Number int32      `json:"number"` // 3
	Label  FieldLabel `json:"label"`  // optional or repeated
	Type   FieldType  `json:"type"`   // field type information
}

// FieldLabel represents field labels
type FieldLabel string

const (
	LabelOptional FieldLabel = "optional"
	LabelRepeated FieldLabel = "repeated"
)

// FieldType represents field type information
type FieldType struct {
	Kind          TypeKind      `json:"kind"`                     // primitive or message
	PrimitiveType PrimitiveType `json:"primitive_type,omitempty"` // for primitive types
	MessageType   string        `json:"message_type,omitempty"`   // nested type name: "Field3"
}

// TypeKind represents the kind of field type
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindMessage   TypeKind = "message"
)

// PrimitiveType represents the protobuf scalar types a schemaless decode can
// tell apart
type PrimitiveType string

const (
	TypeUint64  PrimitiveType = "uint64"
	TypeFixed64 PrimitiveType = "fixed64"
	TypeFixed32 PrimitiveType = "fixed32"
	TypeString  PrimitiveType = "string"
	TypeBytes   PrimitiveType = "bytes"
)
