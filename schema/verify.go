package schema

import (
	"context"
	"fmt"
	"strings"

	protoparser "github.com/yoheimuta/go-protoparser/v4"
	protoparserparser "github.com/yoheimuta/go-protoparser/v4/parser"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/anirudhraja/protolens/inspect"
)

// Verify parses rendered .proto source and checks that it declares the
// root message.
func Verify(src, root string) error {
	parsed, err := protoparser.Parse(strings.NewReader(src))
	if err != nil {
		return fmt.Errorf("inferred schema does not parse: %w", err)
	}

	for _, body := range parsed.ProtoBody {
		if m, ok := body.(*protoparserparser.Message); ok && m.MessageName == root {
			return nil
		}
	}
	return fmt.Errorf("inferred schema has no message %s", root)
}

// Generate infers, renders and checks a schema for msg in one go. The
// rendered source must parse, compile and describe the same messages as
// the descriptor built straight from the inferred model.
func Generate(ctx context.Context, msg *inspect.Message, root string) (string, error) {
	f := Infer(msg, root)
	want, err := f.Resolve()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := Render(&b, f); err != nil {
		return "", err
	}
	src := b.String()
	if err := Verify(src, f.Messages[0].Name); err != nil {
		return "", err
	}
	got, err := Compile(ctx, f.Name, src)
	if err != nil {
		return "", err
	}
	if err := sameMessages(want.Messages(), got.Messages()); err != nil {
		return "", fmt.Errorf("rendered schema diverges from inferred model: %w", err)
	}
	return src, nil
}

// sameMessages compares message names and field shapes recursively.
func sameMessages(want, got protoreflect.MessageDescriptors) error {
	if want.Len() != got.Len() {
		return fmt.Errorf("%d messages, want %d", got.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		wm, gm := want.Get(i), got.Get(i)
		if wm.FullName() != gm.FullName() {
			return fmt.Errorf("message %s, want %s", gm.FullName(), wm.FullName())
		}
		wf, gf := wm.Fields(), gm.Fields()
		if wf.Len() != gf.Len() {
			return fmt.Errorf("%s: %d fields, want %d", wm.FullName(), gf.Len(), wf.Len())
		}
		for j := 0; j < wf.Len(); j++ {
			a, b := wf.Get(j), gf.Get(j)
			if a.Number() != b.Number() || a.Kind() != b.Kind() || a.Cardinality() != b.Cardinality() {
				return fmt.Errorf("%s: field %d differs", wm.FullName(), a.Number())
			}
		}
		if err := sameMessages(wm.Messages(), gm.Messages()); err != nil {
			return err
		}
	}
	return nil
}
