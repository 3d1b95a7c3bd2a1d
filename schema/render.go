package schema

import (
	"fmt"
	"io"
	"strings"
)

// Render writes f as .proto source.
func Render(w io.Writer, f *File) error {
	var b strings.Builder
	fmt.Fprintf(&b, "syntax = %q;\n", f.Syntax)
	if f.Package != "" {
		fmt.Fprintf(&b, "\npackage %s;\n", f.Package)
	}
	for _, m := range f.Messages {
		b.WriteString("\n")
		renderMessage(&b, m, 0)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	return nil
}

func renderMessage(b *strings.Builder, m *Message, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%smessage %s {\n", indent, m.Name)
	for _, c := range m.Comments {
		fmt.Fprintf(b, "%s  // %s\n", indent, c)
	}
	for _, f := range m.Fields {
		fmt.Fprintf(b, "%s  %s %s %s = %d;\n", indent, f.Label, typeName(f.Type), f.Name, f.Number)
	}
	for _, nested := range m.NestedTypes {
		b.WriteString("\n")
		renderMessage(b, nested, depth+1)
	}
	fmt.Fprintf(b, "%s}\n", indent)
}

func typeName(t FieldType) string {
	if t.Kind == KindMessage {
		return t.MessageType
	}
	return string(t.PrimitiveType)
}
