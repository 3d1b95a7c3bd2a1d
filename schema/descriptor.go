package schema

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

var scalarTypes = map[PrimitiveType]descriptorpb.FieldDescriptorProto_Type{
	TypeUint64:  descriptorpb.FieldDescriptorProto_TYPE_UINT64,
	TypeFixed64: descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
	TypeFixed32: descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
	TypeString:  descriptorpb.FieldDescriptorProto_TYPE_STRING,
	TypeBytes:   descriptorpb.FieldDescriptorProto_TYPE_BYTES,
}

// Descriptor converts f into a FileDescriptorProto.
func Descriptor(f *File) *descriptorpb.FileDescriptorProto {
	fdp := &descriptorpb.FileDescriptorProto{
		Name:   proto.String(f.Name),
		Syntax: proto.String(f.Syntax),
	}
	scope := ""
	if f.Package != "" {
		fdp.Package = proto.String(f.Package)
		scope = "." + f.Package
	}
	for _, m := range f.Messages {
		fdp.MessageType = append(fdp.MessageType, descriptorProto(m, scope))
	}
	return fdp
}

func descriptorProto(m *Message, scope string) *descriptorpb.DescriptorProto {
	fullName := scope + "." + m.Name
	dp := &descriptorpb.DescriptorProto{Name: proto.String(m.Name)}
	for _, f := range m.Fields {
		fd := &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(f.Name),
			Number: proto.Int32(f.Number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		}
		if f.Label == LabelRepeated {
			fd.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		}
		if f.Type.Kind == KindMessage {
			fd.Type = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum()
			fd.TypeName = proto.String(fullName + "." + f.Type.MessageType)
		} else {
			fd.Type = scalarTypes[f.Type.PrimitiveType].Enum()
		}
		dp.Field = append(dp.Field, fd)
	}
	for _, nested := range m.NestedTypes {
		dp.NestedType = append(dp.NestedType, descriptorProto(nested, fullName))
	}
	return dp
}

// Resolve builds and validates a file descriptor for f.
func (f *File) Resolve() (protoreflect.FileDescriptor, error) {
	fd, err := protodesc.NewFile(Descriptor(f), nil)
	if err != nil {
		return nil, fmt.Errorf("invalid inferred schema: %w", err)
	}
	return fd, nil
}
