package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [flags] [file ...]",
		Short: "Print the summary of the lines and the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, args, runStats)
		},
	}
}

func runStats(cmd *cobra.Command, s *session) error {
	sum := s.sorter.Summary()

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Lines", humanize.Comma(sum.Lines)},
		{"Distinct", humanize.Comma(sum.Distinct)},
		{"Sources", humanize.Comma(sum.Sources)},
		{"Size", humanize.IBytes(uint64(sum.Bytes))},
		{"Height", sum.Height},
		{"Black height", sum.BlackHeight},
	})
	_, err := fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
	return err
}
