package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/benz9527/xtree/lib/textsort"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xsort [flags] [file ...]",
		Short: "Sort text lines with a red-black tree",
		Long: `xsort reads the lines of the files, or of the stdin if there is no file
or the file is "-", and writes them in order, duplicates included.

By default the lines are folded before comparison: the accents and the
case are ignored, and the punctuation "¿?¡!,." is removed.

Commands:
  tree      Print the red-black tree of the lines
  stats     Print the summary of the lines and the tree`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, args, runSort)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.xsort.yaml or $HOME/.xsort.yaml)")
	flags.BoolP("reverse", "r", false, "sort in descending order")
	flags.StringP("output", "o", "", `output file, "-" or empty for the stdout`)
	flags.Bool("fold", true, "fold accents, case and punctuation before comparison")
	flags.Int("workers", 0, "number of files read in parallel (default GOMAXPROCS)")
	flags.String("max-line", defaultMaxLine, "maximum line size, like 64KiB")
	flags.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	flags.String("log-format", defaultLogFormat, "log format: text, json")
	flags.Bool("metrics", false, "export the metrics to the stderr")
	flags.Duration("metrics-interval", defaultMetricsInterval, "metrics export interval")

	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func runSort(cmd *cobra.Command, s *session) error {
	var out io.Writer = cmd.OutOrStdout()
	if s.cfg.Output != "" && s.cfg.Output != textsort.StdinName {
		wc, err := textsort.OpenOutput(s.cfg.Output)
		if err != nil {
			return err
		}
		defer func() {
			_ = wc.Close()
		}()
		out = wc
	}
	_, err := s.sorter.WriteLines(out, s.cfg.Reverse)
	return err
}
