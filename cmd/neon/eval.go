package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/s-o-l-ar/Neon/internal/eval"
	"github.com/s-o-l-ar/Neon/internal/syntax"
)

func newEvalCommand(gs *globalState) *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "eval [FILE]",
		Short: "evaluate an expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := gs.readSource(cmd, expr, args)
			if err != nil {
				return err
			}
			return gs.runEval(cmd, text)
		},
	}
	cmd.Flags().AddFlagSet(sourceFlagSet(&expr))
	return cmd
}

// runEval parses and evaluates text. Syntax diagnostics and evaluation
// errors are reported like diagnostics, the latter with the offending source
// underlined; nothing is evaluated when the tree has diagnostics.
func (gs *globalState) runEval(cmd *cobra.Command, text string) error {
	tree := syntax.ParseSyntaxTree(text)
	if tree.HasDiagnostics() {
		gs.printDiagnostics(cmd.ErrOrStderr(), tree.Diagnostics())
		return errDiagnostics
	}

	v, err := eval.EvaluateTree(tree)
	if err != nil {
		var evalErr *eval.Error
		if errors.As(err, &evalErr) {
			gs.logger.WithField("span", evalErr.Span).Debug("evaluation failed")
			gs.printDiagnostics(cmd.ErrOrStderr(), []string{evalErr.Error()})
			gs.printHighlight(cmd.ErrOrStderr(), text, evalErr.Span)
			return errDiagnostics
		}
		return err
	}
	gs.logger.WithFields(logrus.Fields{
		"expr":  syntax.String(tree.Root()),
		"value": v.ExactString(),
	}).Debug("evaluated input")
	fmt.Fprintln(cmd.OutOrStdout(), v.ExactString())
	return nil
}
