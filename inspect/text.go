package inspect

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/anirudhraja/protolens/wire"
)

// TextOptions controls WriteText.
type TextOptions struct {
	Color bool
}

// WriteText writes the inspector dump of m: every field as a commented
// `tag = value` line, nested messages framed by start/end comments and
// headed by their dotted tag path, e.g. [3.7] for tag 7 inside tag 3.
func WriteText(w io.Writer, m *Message, opts TextOptions) error {
	tw := &textWriter{
		w:       w,
		comment: color.New(color.FgHiBlack),
		header:  color.New(color.FgCyan, color.Bold),
	}
	if opts.Color {
		tw.comment.EnableColor()
		tw.header.EnableColor()
	} else {
		tw.comment.DisableColor()
		tw.header.DisableColor()
	}
	tw.message(m, nil)
	return tw.err
}

type textWriter struct {
	w       io.Writer
	err     error
	comment *color.Color
	header  *color.Color
}

func (tw *textWriter) printf(c *color.Color, format string, args ...any) {
	if tw.err != nil {
		return
	}
	if c != nil {
		_, tw.err = c.Fprintf(tw.w, format, args...)
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *textWriter) writeHeader(path Path) {
	if len(path) > 0 {
		tw.printf(tw.header, "[%s]\n", path)
	}
}

func (tw *textWriter) message(m *Message, path Path) {
	if m == nil {
		return
	}
	for _, e := range m.Entries {
		tag := e.Tag
		switch v := e.Value.(type) {
		case VarInt:
			tw.printf(tw.comment, "# %d: varint\n", tag)
			tw.printf(nil, "%d = { u64 = %d, i64 = %d }\n", tag, v.Unsigned, v.Signed)
		case Fixed32:
			tw.printf(tw.comment, "# %d: fixed32\n", tag)
			tw.printf(nil, "%d = { u32 = %d, i32 = %d, f32 = %s }\n", tag, v.U32, v.I32, formatFloat(float64(v.F32), 32))
		case Fixed64:
			tw.printf(tw.comment, "# %d: fixed64\n", tag)
			tw.printf(nil, "%d = { u64 = %d, i64 = %d, f64 = %s }\n", tag, v.U64, v.I64, formatFloat(v.F64, 64))
		case Bytes:
			tw.bytesValue(tag, v)
		case *Message:
			tw.printf(nil, "\n")
			tw.printf(tw.comment, "# start message #%d\n", tag)
			tw.nested(v, path, tag)
			tw.printf(tw.comment, "# end message #%d\n", tag)
			tw.printf(nil, "\n")
			tw.writeHeader(path)
		case Group:
			tw.printf(tw.comment, "# start group #%d\n", tag)
			tw.nested(v.Message, path, tag)
			tw.printf(tw.comment, "# end group #%d\n", tag)
			tw.writeHeader(path)
		}
	}
}

func (tw *textWriter) nested(m *Message, path Path, tag wire.FieldNumber) {
	child := path.Append(tag)
	tw.writeHeader(child)
	tw.message(m, child)
}

func (tw *textWriter) bytesValue(tag wire.FieldNumber, v Bytes) {
	if v.UTF8 {
		tw.printf(tw.comment, "# %d: string\n", tag)
		line, err := tomlString(strconv.Itoa(int(tag)), v.Text)
		if err != nil {
			if tw.err == nil {
				tw.err = err
			}
			return
		}
		tw.printf(nil, "%s", line)
		return
	}

	tw.printf(tw.comment, "# %d: bytes\n", tag)
	var buf bytes.Buffer
	for _, b := range v.Raw {
		fmt.Fprintf(&buf, "\\x%02x", b)
	}
	tw.printf(nil, "%d = \"%s\" # bytes(%d)\n", tag, buf.String(), len(v.Raw))
}

// tomlString renders `key = "value"` with TOML basic-string escaping.
func tomlString(key, value string) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]string{key: value}); err != nil {
		return "", fmt.Errorf("failed to encode string field %s: %w", key, err)
	}
	return buf.String(), nil
}

func formatFloat(f float64, bits int) string {
	return strconv.FormatFloat(f, 'g', -1, bits)
}
