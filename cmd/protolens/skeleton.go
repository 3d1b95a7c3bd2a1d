package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/anirudhraja/protolens/schema"
)

func newSkeletonCmd(a *app) *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "skeleton [file...]",
		Short: "Infer a draft .proto schema from each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, func(name string) string {
				return "// file: " + name + "\n"
			}, func(ctx context.Context, w io.Writer, data []byte) error {
				src, err := a.inspector.Skeleton(ctx, data, root)
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, src)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&root, "root", schema.DefaultRoot, "name of the top-level message")
	return cmd
}
