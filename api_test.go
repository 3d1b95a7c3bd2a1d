package protolens

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/anirudhraja/protolens/config"
	"github.com/anirudhraja/protolens/inspect"
)

func samplePayload() []byte {
	inner := protowire.AppendTag(nil, 1, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 7)
	buf := protowire.AppendTag(nil, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 150)
	buf = protowire.AppendTag(buf, 2, protowire.BytesType)
	buf = protowire.AppendString(buf, "hello world")
	buf = protowire.AppendTag(buf, 3, protowire.BytesType)
	buf = protowire.AppendBytes(buf, inner)
	return buf
}

func newInspector(t *testing.T, mutate func(*config.Config)) *Inspector {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	p, err := New(cfg)
	require.NoError(t, err)
	return p
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxDepth = 0
	_, err := New(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_depth")
}

func TestInspector_Decode(t *testing.T) {
	var logs bytes.Buffer
	p, err := New(config.Default(), WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	msg, err := p.Decode(context.Background(), samplePayload())
	require.NoError(t, err)
	require.Equal(t, 3, msg.Len())
	assert.Equal(t, inspect.NewVarInt(150), msg.Entries[0].Value)
	assert.IsType(t, inspect.Bytes{}, msg.Entries[1].Value)
	assert.IsType(t, &inspect.Message{}, msg.Entries[2].Value)
	assert.Contains(t, logs.String(), `"entries":3`)
}

func TestInspector_Limits(t *testing.T) {
	p := newInspector(t, func(c *config.Config) { c.MaxInputBytes = 4 })
	_, err := p.Decode(context.Background(), samplePayload())
	require.ErrorIs(t, err, ErrInputTooLarge)

	shallow := newInspector(t, func(c *config.Config) { c.MaxDepth = 1 })
	inner := protowire.AppendTag(nil, 1, protowire.BytesType)
	inner = protowire.AppendBytes(inner, []byte{0x08, 0x01})
	buf := protowire.AppendTag(nil, 1, protowire.BytesType)
	buf = protowire.AppendBytes(buf, inner)

	msg, err := shallow.Decode(context.Background(), buf)
	require.NoError(t, err)
	level1 := msg.Entries[0].Value.(*inspect.Message)
	assert.IsType(t, inspect.Bytes{}, level1.Entries[0].Value)
}

func TestInspector_Cancelled(t *testing.T) {
	p := newInspector(t, func(c *config.Config) { c.Timeout = time.Minute })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Decode(ctx, samplePayload())
	require.ErrorIs(t, err, context.Canceled)
}

func TestInspector_WithTimeout(t *testing.T) {
	p := newInspector(t, func(c *config.Config) { c.Timeout = time.Minute })
	ctx, cancel := p.withTimeout(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	unbounded := newInspector(t, func(c *config.Config) { c.Timeout = 0 })
	ctx, cancel = unbounded.withTimeout(context.Background())
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}

func TestInspector_SkeletonCancelled(t *testing.T) {
	p := newInspector(t, func(c *config.Config) { c.Timeout = time.Minute })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Skeleton(ctx, samplePayload(), "Sample")
	require.ErrorIs(t, err, context.Canceled)
}

func TestInspector_Renderers(t *testing.T) {
	p := newInspector(t, nil)
	ctx := context.Background()

	js, err := p.JSON(ctx, samplePayload(), false)
	require.NoError(t, err)
	assert.Contains(t, string(js), `"str":"hello world"`)

	var text bytes.Buffer
	require.NoError(t, p.Text(ctx, &text, samplePayload(), false))
	assert.Contains(t, text.String(), "# start message #3\n[3]\n")

	proto, err := p.Skeleton(ctx, samplePayload(), "Sample")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(proto, `syntax = "proto2";`))
	assert.Contains(t, proto, "message Sample {")
	assert.Contains(t, proto, "optional string field_2 = 2;")

	_, err = p.JSON(ctx, []byte{0x0a, 0x05}, false)
	require.Error(t, err)
}

func TestReadInput(t *testing.T) {
	want := []byte{0x08, 0x96, 0x01}
	tests := []struct {
		format string
		src    string
	}{
		{config.InputRaw, "\x08\x96\x01"},
		{config.InputHex, "08 96\n01\n"},
		{config.InputBase64, "CJYB\n"},
		{config.InputBase64, "CJYB"},
	}
	for _, tt := range tests {
		got, err := ReadInput(strings.NewReader(tt.src), tt.format, 1024)
		require.NoError(t, err, tt.format)
		assert.Equal(t, want, got, tt.format)
	}
}

func TestReadInput_Errors(t *testing.T) {
	_, err := ReadInput(strings.NewReader("0g"), config.InputHex, 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode hex input")

	_, err = ReadInput(strings.NewReader("abcdef"), config.InputRaw, 4)
	require.ErrorIs(t, err, ErrInputTooLarge)

	_, err = ReadInput(strings.NewReader("0102030405"), config.InputHex, 4)
	require.ErrorIs(t, err, ErrInputTooLarge)

	_, err = ReadInput(strings.NewReader(""), "octal", 4)
	require.Error(t, err)
}
