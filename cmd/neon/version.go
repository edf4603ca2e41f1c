package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the neon release.
var Version = "0.1.0-dev"

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "neon version %s\n", Version)
			fmt.Fprintf(w, "go version %s\n", runtime.Version())
		},
	}
}
