package main

import (
	"github.com/spf13/cobra"

	"github.com/benz9527/xtree/lib/tree"
)

func newTreeCommand() *cobra.Command {
	var colored bool
	cmd := &cobra.Command{
		Use:   "tree [flags] [file ...]",
		Short: "Print the red-black tree of the lines",
		Long: `Print the red-black tree of the lines, the left child first.
Each node is labelled by its color and its line, R{line} or B{line}.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, args, func(cmd *cobra.Command, s *session) error {
				opts := make([]tree.RenderOpt, 0, 1)
				if colored {
					opts = append(opts, tree.WithRenderColor())
				}
				return s.sorter.Render(cmd.OutOrStdout(), opts...)
			})
		},
	}
	cmd.Flags().BoolVar(&colored, "color", false, "paint the red nodes red and the black nodes bold")
	return cmd
}
