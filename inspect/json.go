package inspect

import (
	"encoding/hex"
	"math"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/anirudhraja/protolens/wire"
)

type jsonEntry struct {
	Tag   wire.FieldNumber `json:"tag"`
	Value any              `json:"value"`
}

type jsonVarInt struct {
	Type     string `json:"type"`
	Unsigned uint64 `json:"unsigned"`
	Signed   int64  `json:"signed"`
}

type jsonFixed32 struct {
	Type string    `json:"type"`
	U32  uint32    `json:"u32"`
	I32  int32     `json:"i32"`
	F32  jsonFloat `json:"f32"`
}

type jsonFixed64 struct {
	Type string    `json:"type"`
	U64  uint64    `json:"u64"`
	I64  int64     `json:"i64"`
	F64  jsonFloat `json:"f64"`
}

type jsonNested struct {
	Type    string   `json:"type"`
	Entries *Message `json:"entries"`
}

type jsonBytes struct {
	Type string  `json:"type"`
	Raw  string  `json:"raw"`
	Str  *string `json:"str,omitempty"`
}

// jsonFloat renders non-finite values as strings, which JSON numbers
// cannot express.
type jsonFloat struct {
	v    float64
	bits int
}

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsNaN(f.v):
		return []byte(`"NaN"`), nil
	case math.IsInf(f.v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f.v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f.v, 'g', -1, f.bits), nil
}

// MarshalJSON renders m as an array of {"tag": n, "value": {...}} objects.
func (m *Message) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry, 0, m.Len())
	if m != nil {
		for _, e := range m.Entries {
			entries = append(entries, jsonEntry{Tag: e.Tag, Value: jsonValue(e.Value)})
		}
	}
	return gojson.Marshal(entries)
}

func jsonValue(v Value) any {
	switch v := v.(type) {
	case VarInt:
		return jsonVarInt{Type: "varint", Unsigned: v.Unsigned, Signed: v.Signed}
	case Fixed32:
		return jsonFixed32{Type: "fixed32", U32: v.U32, I32: v.I32, F32: jsonFloat{float64(v.F32), 32}}
	case Fixed64:
		return jsonFixed64{Type: "fixed64", U64: v.U64, I64: v.I64, F64: jsonFloat{v.F64, 64}}
	case *Message:
		return jsonNested{Type: "message", Entries: v}
	case Group:
		return jsonNested{Type: "group", Entries: v.Message}
	case Bytes:
		out := jsonBytes{Type: "bytes", Raw: hex.EncodeToString(v.Raw)}
		if v.UTF8 {
			text := v.Text
			out.Str = &text
		}
		return out
	}
	return nil
}

// JSON renders m, indented when indent is true.
func JSON(m *Message, indent bool) ([]byte, error) {
	if indent {
		return gojson.MarshalIndent(m, "", "  ")
	}
	return gojson.Marshal(m)
}
