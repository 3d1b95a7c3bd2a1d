package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func newTextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "text [file...]",
		Short: "Print the decoded tree as annotated text",
		RunE: func(cmd *cobra.Command, args []string) error {
			colored := a.colored()
			return a.run(cmd, args, func(name string) string {
				return "# file: " + name + "\n"
			}, func(ctx context.Context, w io.Writer, data []byte) error {
				return a.inspector.Text(ctx, w, data, colored)
			})
		},
	}
}
