package schema

import (
	"fmt"
	"slices"

	"github.com/anirudhraja/protolens/inspect"
	"github.com/anirudhraja/protolens/wire"
)

const (
	DefaultPackage = "protolens.inferred"
	DefaultRoot    = "Root"
)

// Field numbers the protobuf implementation keeps for itself; .proto files
// may not declare them even though they are legal on the wire.
const (
	reservedFirst wire.FieldNumber = 19000
	reservedLast  wire.FieldNumber = 19999
)

// Infer drafts a proto2 file whose root message, named name, can hold every
// occurrence seen in msg. Occurrences of a tag are merged: varints become
// uint64, fixed-width values fixed32/fixed64, payloads that always decoded
// as messages become a nested type Field<N>, text-only payloads string and
// anything else bytes. Tags whose occurrences disagree on wire type, and
// groups, are left out and noted as comments.
func Infer(msg *inspect.Message, name string) *File {
	if name == "" {
		name = DefaultRoot
	}
	root := &Message{Name: name}
	inferMessage(root, []*inspect.Message{msg})
	return &File{
		Name:     "inferred.proto",
		Package:  DefaultPackage,
		Syntax:   "proto2",
		Messages: []*Message{root},
	}
}

// occurrences collects, per tag, every value seen across instances and the
// largest per-instance count.
type occurrences struct {
	values   []inspect.Value
	maxCount int
}

func inferMessage(out *Message, instances []*inspect.Message) {
	byTag := make(map[wire.FieldNumber]*occurrences)
	for _, m := range instances {
		for _, f := range m.Fields() {
			occ := byTag[f.Tag]
			if occ == nil {
				occ = &occurrences{}
				byTag[f.Tag] = occ
			}
			occ.values = append(occ.values, f.Values...)
			occ.maxCount = max(occ.maxCount, len(f.Values))
		}
	}

	tags := make([]wire.FieldNumber, 0, len(byTag))
	for tag := range byTag {
		tags = append(tags, tag)
	}
	slices.Sort(tags)

	for _, tag := range tags {
		if tag >= reservedFirst && tag <= reservedLast {
			out.Comments = append(out.Comments,
				fmt.Sprintf("field %d: number in reserved range %d-%d", tag, reservedFirst, reservedLast))
			continue
		}
		occ := byTag[tag]
		field := &Field{
			Name:   fmt.Sprintf("field_%d", tag),
			Number: int32(tag),
			Label:  LabelOptional,
		}
		if occ.maxCount > 1 {
			field.Label = LabelRepeated
		}

		typ, nested, comment := inferType(tag, occ.values)
		if comment != "" {
			out.Comments = append(out.Comments, comment)
			continue
		}
		field.Type = typ
		if nested != nil {
			out.NestedTypes = append(out.NestedTypes, nested)
		}
		out.Fields = append(out.Fields, field)
	}
}

// wireClass buckets value kinds by the wire type that produced them.
func wireClass(k inspect.Kind) wire.WireType {
	switch k {
	case inspect.KindVarInt:
		return wire.WireVarint
	case inspect.KindFixed32:
		return wire.WireFixed32
	case inspect.KindFixed64:
		return wire.WireFixed64
	case inspect.KindGroup:
		return wire.WireStartGroup
	default:
		return wire.WireBytes
	}
}

func inferType(tag wire.FieldNumber, values []inspect.Value) (FieldType, *Message, string) {
	class := wireClass(values[0].Kind())
	for _, v := range values[1:] {
		if c := wireClass(v.Kind()); c != class {
			return FieldType{}, nil, fmt.Sprintf("field %d: conflicting wire types (%s, %s)", tag, class, c)
		}
	}

	switch class {
	case wire.WireVarint:
		return primitive(TypeUint64), nil, ""
	case wire.WireFixed32:
		return primitive(TypeFixed32), nil, ""
	case wire.WireFixed64:
		return primitive(TypeFixed64), nil, ""
	case wire.WireStartGroup:
		return FieldType{}, nil, fmt.Sprintf("field %d: group", tag)
	}

	var messages []*inspect.Message
	allMessages, allText := true, true
	for _, v := range values {
		switch v := v.(type) {
		case *inspect.Message:
			messages = append(messages, v)
			// An empty payload reads as an empty message; it fits a string too.
			if v.Len() > 0 {
				allText = false
			}
		case inspect.Bytes:
			allMessages = false
			if !v.UTF8 {
				allText = false
			}
		}
	}

	switch {
	case allMessages:
		nested := &Message{Name: fmt.Sprintf("Field%d", tag)}
		inferMessage(nested, messages)
		return FieldType{Kind: KindMessage, MessageType: nested.Name}, nested, ""
	case allText:
		return primitive(TypeString), nil, ""
	default:
		return primitive(TypeBytes), nil, ""
	}
}

func primitive(t PrimitiveType) FieldType {
	return FieldType{Kind: KindPrimitive, PrimitiveType: t}
}
