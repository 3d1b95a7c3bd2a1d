package protolens

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/anirudhraja/protolens/config"
	"github.com/anirudhraja/protolens/inspect"
	"github.com/anirudhraja/protolens/schema"
)

// ErrInputTooLarge is returned for inputs above the configured size limit.
var ErrInputTooLarge = errors.New("input exceeds max_input_bytes")

// Inspector decodes protobuf payloads without a schema and renders the
// result. It is safe for concurrent use.
type Inspector struct {
	cfg    config.Config
	logger zerolog.Logger
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Inspector) { p.logger = l }
}

// New creates an Inspector with the given limits.
func New(cfg config.Config, opts ...Option) (*Inspector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	p := &Inspector{cfg: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Decode reconstructs the message tree of data, bounded by the configured
// size, depth and timeout.
func (p *Inspector) Decode(ctx context.Context, data []byte) (*inspect.Message, error) {
	if int64(len(data)) > p.cfg.MaxInputBytes {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, len(data), p.cfg.MaxInputBytes)
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	msg, err := inspect.DecodeContext(ctx, data, inspect.WithMaxDepth(p.cfg.MaxDepth))
	if err != nil {
		p.logger.Debug().Err(err).Int("bytes", len(data)).Msg("decode failed")
		return nil, err
	}
	p.logger.Debug().
		Int("bytes", len(data)).
		Int("entries", msg.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("decoded")
	return msg, nil
}

// JSON decodes data and returns the tree as JSON.
func (p *Inspector) JSON(ctx context.Context, data []byte, indent bool) ([]byte, error) {
	msg, err := p.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	return inspect.JSON(msg, indent)
}

// Text decodes data and writes the annotated text dump to w.
func (p *Inspector) Text(ctx context.Context, w io.Writer, data []byte, colored bool) error {
	msg, err := p.Decode(ctx, data)
	if err != nil {
		return err
	}
	return inspect.WriteText(w, msg, inspect.TextOptions{Color: colored})
}

// Skeleton decodes data and infers a proto2 schema draft whose top-level
// message is named root.
func (p *Inspector) Skeleton(ctx context.Context, data []byte, root string) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	msg, err := p.Decode(ctx, data)
	if err != nil {
		return "", err
	}
	return schema.Generate(ctx, msg, root)
}

// withTimeout bounds ctx by the configured timeout; 0 leaves it unbounded.
func (p *Inspector) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, p.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
