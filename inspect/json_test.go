package inspect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	m, err := Decode([]byte{0x0A, 0x04, 0x08, 0x01, 0x10, 0x02})
	require.NoError(t, err)

	out, err := JSON(m, false)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"tag": 1, "value": {"type": "message", "entries": [
			{"tag": 1, "value": {"type": "varint", "unsigned": 1, "signed": -1}},
			{"tag": 2, "value": {"type": "varint", "unsigned": 2, "signed": 1}}
		]}}
	]`, string(out))
}

func TestJSON_Variants(t *testing.T) {
	m := msgOf(
		Entry{Tag: 1, Value: NewFixed32(math.Float32bits(1.5))},
		Entry{Tag: 2, Value: NewFixed64(math.Float64bits(-0.25))},
		Entry{Tag: 3, Value: NewBytes([]byte("hi"))},
		Entry{Tag: 4, Value: NewBytes([]byte{0xff, 0x00})},
		Entry{Tag: 5, Value: Group{Message: msgOf(Entry{Tag: 1, Value: NewVarInt(0)})}},
		Entry{Tag: 6, Value: &Message{}},
	)

	out, err := JSON(m, true)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"tag": 1, "value": {"type": "fixed32", "u32": 1069547520, "i32": 1069547520, "f32": 1.5}},
		{"tag": 2, "value": {"type": "fixed64", "u64": 13821547256400052224, "i64": -4625196817309499392, "f64": -0.25}},
		{"tag": 3, "value": {"type": "bytes", "raw": "6869", "str": "hi"}},
		{"tag": 4, "value": {"type": "bytes", "raw": "ff00"}},
		{"tag": 5, "value": {"type": "group", "entries": [
			{"tag": 1, "value": {"type": "varint", "unsigned": 0, "signed": 0}}
		]}},
		{"tag": 6, "value": {"type": "message", "entries": []}}
	]`, string(out))
}

func TestJSON_NonFinite(t *testing.T) {
	m := msgOf(
		Entry{Tag: 1, Value: NewFixed64(math.Float64bits(math.Inf(1)))},
		Entry{Tag: 2, Value: NewFixed64(math.Float64bits(math.Inf(-1)))},
		Entry{Tag: 3, Value: NewFixed32(math.Float32bits(float32(math.NaN())))},
	)
	out, err := JSON(m, false)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"f64":"+Inf"`)
	assert.Contains(t, string(out), `"f64":"-Inf"`)
	assert.Contains(t, string(out), `"f32":"NaN"`)
}

func TestJSON_Empty(t *testing.T) {
	out, err := JSON(&Message{}, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}
