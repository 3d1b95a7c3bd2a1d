package inspect

import (
	"bytes"
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/anirudhraja/protolens/wire"
)

// Entry is one occurrence of a field.
type Entry struct {
	Tag   wire.FieldNumber
	Value Value
}

// Message is a decoded message: its entries in canonical order, sorted by
// tag with repeated occurrences kept in the order they were encountered.
type Message struct {
	Entries []Entry
}

// Field groups the occurrences of a single tag.
type Field struct {
	Tag    wire.FieldNumber
	Values []Value
}

// Canonicalize stable-sorts the entries of m and of every nested message by
// tag. It is idempotent.
func (m *Message) Canonicalize() {
	if m == nil {
		return
	}
	for _, e := range m.Entries {
		switch v := e.Value.(type) {
		case *Message:
			v.Canonicalize()
		case Group:
			v.Message.Canonicalize()
		}
	}
	m.sort()
}

func (m *Message) sort() {
	slices.SortStableFunc(m.Entries, func(a, b Entry) int {
		return cmp.Compare(a.Tag, b.Tag)
	})
}

// Fields returns the entries grouped by tag. Entries must be canonical.
func (m *Message) Fields() []Field {
	var fields []Field
	for _, e := range m.Entries {
		if n := len(fields); n > 0 && fields[n-1].Tag == e.Tag {
			fields[n-1].Values = append(fields[n-1].Values, e.Value)
			continue
		}
		fields = append(fields, Field{Tag: e.Tag, Values: []Value{e.Value}})
	}
	return fields
}

// Len returns the number of entries.
func (m *Message) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// Equal reports whether two canonical messages are structurally identical.
func Equal(a, b *Message) bool {
	return Compare(a, b) == 0
}

// Compare orders canonical messages entry by entry: tag first, then value.
// Floats compare by bit pattern.
func Compare(a, b *Message) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		ea, eb := a.Entries[i], b.Entries[i]
		if c := cmp.Compare(ea.Tag, eb.Tag); c != 0 {
			return c
		}
		if c := CompareValues(ea.Value, eb.Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// CompareValues orders values by kind, then by content.
func CompareValues(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	switch va := a.(type) {
	case VarInt:
		return cmp.Compare(va.Unsigned, b.(VarInt).Unsigned)
	case Fixed32:
		return cmp.Compare(va.U32, b.(Fixed32).U32)
	case Fixed64:
		return cmp.Compare(va.U64, b.(Fixed64).U64)
	case *Message:
		return Compare(va, b.(*Message))
	case Bytes:
		return bytes.Compare(va.Raw, b.(Bytes).Raw)
	case Group:
		return Compare(va.Message, b.(Group).Message)
	}
	return 0
}

// Path is a chain of tags from the root to a nested message.
type Path []wire.FieldNumber

// Append returns a new path with tag added; p is left untouched.
func (p Path) Append(tag wire.FieldNumber) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, tag)
}

// String renders the path dotted, e.g. "3.7".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, tag := range p {
		parts[i] = strconv.Itoa(int(tag))
	}
	return strings.Join(parts, ".")
}
