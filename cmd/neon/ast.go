package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s-o-l-ar/Neon/internal/config"
	"github.com/s-o-l-ar/Neon/internal/syntax"
)

func newASTCommand(gs *globalState) *cobra.Command {
	var expr, output string
	cmd := &cobra.Command{
		Use:   "ast [FILE]",
		Short: "print the syntax tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := gs.cfg.Output
			if cmd.Flags().Changed("output") {
				format = output
			}
			text, err := gs.readSource(cmd, expr, args)
			if err != nil {
				return err
			}
			return gs.runAST(cmd, text, format)
		},
	}
	cmd.Flags().AddFlagSet(sourceFlagSet(&expr))
	cmd.Flags().AddFlagSet(outputFlagSet(&output))
	return cmd
}

// runAST parses text and prints the tree in format. Diagnostics go to
// stderr before the tree; the tree is printed even when they are present.
func (gs *globalState) runAST(cmd *cobra.Command, text, format string) error {
	switch format {
	case config.OutputText, config.OutputJSON, config.OutputYAML:
	default:
		return fmt.Errorf("invalid output %q: must be text, json or yaml", format)
	}

	tree := syntax.ParseSyntaxTree(text)
	diags := tree.Diagnostics()
	gs.logger.WithField("diagnostics", len(diags)).Debug("parsed input")

	gs.printDiagnostics(cmd.ErrOrStderr(), diags)
	if err := printTree(cmd.OutOrStdout(), tree, format); err != nil {
		return err
	}

	if len(diags) > 0 {
		gs.logger.WithField("diagnostics", len(diags)).Info("printed a best-effort tree")
		return errDiagnostics
	}
	return nil
}
