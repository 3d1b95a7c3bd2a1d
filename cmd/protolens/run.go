package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/anirudhraja/protolens"
)

const stdinName = "-"

// renderFunc turns one decoded input into its output.
type renderFunc func(ctx context.Context, w io.Writer, data []byte) error

type result struct {
	out bytes.Buffer
	err error
}

// run decodes every input concurrently, bounded by the configured worker
// count, and writes the outputs in argument order. A failed input is
// logged and skipped; run reports failure once all inputs are done.
func (a *app) run(cmd *cobra.Command, args []string, header func(name string) string, render renderFunc) error {
	if len(args) == 0 {
		args = []string{stdinName}
	}
	stdin := 0
	for _, name := range args {
		if name == stdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return fmt.Errorf("stdin (%q) may be given only once", stdinName)
	}

	results := make([]result, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, name := range args {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].err = a.renderOne(ctx, cmd, name, &results[i].out, render)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, name := range args {
		if err := results[i].err; err != nil {
			failed++
			log.Error().Err(err).Str("file", name).Msg("decode failed")
			continue
		}
		if len(args) > 1 && header != nil {
			if _, err := io.WriteString(out, header(name)); err != nil {
				return err
			}
		}
		if _, err := results[i].out.WriteTo(out); err != nil {
			return err
		}
	}
	if failed > 0 {
		return failedError(failed, len(args))
	}
	return nil
}

func (a *app) renderOne(ctx context.Context, cmd *cobra.Command, name string, w io.Writer, render renderFunc) error {
	var r io.Reader
	if name == stdinName {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	data, err := protolens.ReadInput(r, a.cfg.Input, a.cfg.MaxInputBytes)
	if err != nil {
		return err
	}
	return render(ctx, w, data)
}
