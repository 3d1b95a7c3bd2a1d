package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

func newJSONCmd(a *app) *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "json [file...]",
		Short: "Print the decoded tree as JSON, one document per input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, nil, func(ctx context.Context, w io.Writer, data []byte) error {
				out, err := a.inspector.JSON(ctx, data, indent)
				if err != nil {
					return err
				}
				_, err = w.Write(append(out, '\n'))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the output")
	return cmd
}
