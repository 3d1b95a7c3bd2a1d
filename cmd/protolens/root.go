package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/anirudhraja/protolens"
	"github.com/anirudhraja/protolens/config"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	configPath string
	maxDepth   int
	timeout    time.Duration
	workers    int
	input      string
	color      string

	cfg       config.Config
	inspector *protolens.Inspector
}

func newRootCmd() *cobra.Command {
	a := &app{}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "protolens",
		Short: "Decode protobuf payloads without a schema",
		Long: `protolens reconstructs the structure of protobuf wire data without a
.proto file. Each input is a file path, or "-" for stdin; with no
arguments stdin is read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "TOML config file")
	flags.IntVar(&a.maxDepth, "max-depth", defaults.MaxDepth, "maximum message nesting depth")
	flags.DurationVar(&a.timeout, "timeout", defaults.Timeout, "per-input decode timeout (0 disables)")
	flags.IntVar(&a.workers, "workers", defaults.Workers, "inputs decoded concurrently")
	flags.StringVar(&a.input, "input", defaults.Input, "input encoding: raw, hex or base64")
	flags.StringVar(&a.color, "color", defaults.Color, "text colouring: auto, always or never")

	rootCmd.AddCommand(newJSONCmd(a), newTextCmd(a), newSkeletonCmd(a))
	return rootCmd
}

// setup loads the config file, applies explicitly set flags over it and
// builds the Inspector.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		cfg.MaxDepth = a.maxDepth
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("input") {
		cfg.Input = a.input
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}

	inspector, err := protolens.New(cfg, protolens.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.inspector = inspector
	log.Debug().
		Int("max_depth", cfg.MaxDepth).
		Dur("timeout", cfg.Timeout).
		Int("workers", cfg.Workers).
		Str("input", cfg.Input).
		Msg("configured")
	return nil
}

// colored resolves the colour mode; auto follows terminal detection.
func (a *app) colored() bool {
	switch a.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

func failedError(failed, total int) error {
	if total == 1 {
		return fmt.Errorf("input failed to decode")
	}
	return fmt.Errorf("%d of %d inputs failed to decode", failed, total)
}
