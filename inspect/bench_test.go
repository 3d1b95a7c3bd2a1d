package inspect

import (
	"io"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/protolens/wire"
)

var (
	// A handful of scalars and one string.
	simplePayload = buildSimple()

	// Nested messages, repeated fields and a blob.
	complexPayload = buildComplex(1000)
)

func buildSimple() []byte {
	buf := protowire.AppendTag(nil, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 123)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, "John Doe")
	buf = protowire.AppendTag(buf, 3, protowire.BytesType)
	buf = protowire.AppendString(buf, "john@example.com")
	buf = protowire.AppendTag(buf, 4, protowire.Fixed64Type)
	return protowire.AppendFixed64(buf, math.Float64bits(98.6))
}

func buildComplex(posts int) []byte {
	buf := buildSimple()
	for i := 0; i < posts; i++ {
		post := protowire.AppendTag(nil, 1, protowire.VarintType)
		post = protowire.AppendVarint(post, uint64(i))
		post = protowire.AppendTag(post, 2, protowire.BytesType)
		post = protowire.AppendString(post, "a post title that is long enough to matter")
		tags := protowire.AppendTag(nil, 1, protowire.BytesType)
		tags = protowire.AppendString(tags, "protobuf")
		tags = protowire.AppendTag(tags, 2, protowire.Fixed32Type)
		tags = protowire.AppendFixed32(tags, uint32(i))
		post = protowire.AppendTag(post, 3, protowire.BytesType)
		post = protowire.AppendBytes(post, tags)
		post = protowire.AppendTag(post, 4, protowire.BytesType)
		post = protowire.AppendBytes(post, []byte{0xff, 0xfe, byte(i)})

		buf = protowire.AppendTag(buf, 10, protowire.BytesType)
		buf = protowire.AppendBytes(buf, post)
	}
	return buf
}

func benchmarkDecode(b *testing.B, payload []byte) {
	b.SetBytes(int64(len(payload)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(payload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode_Simple(b *testing.B)  { benchmarkDecode(b, simplePayload) }
func BenchmarkDecode_Complex(b *testing.B) { benchmarkDecode(b, complexPayload) }

func BenchmarkValidate_Complex(b *testing.B) {
	b.SetBytes(int64(len(complexPayload)))
	for i := 0; i < b.N; i++ {
		if err := wire.Validate(complexPayload); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRender_Complex(b *testing.B) {
	m, err := Decode(complexPayload)
	if err != nil {
		b.Fatal(err)
	}
	b.Run("json", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := JSON(m, false); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("text", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := WriteText(io.Discard, m, TextOptions{}); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func TestBenchmarkPayloads(t *testing.T) {
	m, err := Decode(complexPayload)
	if err != nil {
		t.Fatal(err)
	}
	posts := 0
	for _, f := range m.Fields() {
		if f.Tag == 10 {
			posts = len(f.Values)
		}
	}
	if posts != 1000 {
		t.Fatalf("got %d posts, want 1000", posts)
	}
	post := m.Entries[len(m.Entries)-1].Value.(*Message)
	if _, ok := post.Entries[3].Value.(Bytes); !ok {
		t.Fatalf("blob decoded as %T", post.Entries[3].Value)
	}
}
