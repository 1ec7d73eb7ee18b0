// Package main provides the entry point for the xsort CLI tool.
package main

import (
	"os"

	"github.com/fatih/color"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// The container CPU quota bounds the loader workers by default.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))
	defer undo()

	if err := newRootCommand().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		undo()
		os.Exit(1)
	}
}
