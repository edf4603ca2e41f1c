package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s-o-l-ar/Neon/internal/syntax"
)

func newTokensCommand(gs *globalState) *cobra.Command {
	var expr string
	cmd := &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := gs.readSource(cmd, expr, args)
			if err != nil {
				return err
			}
			return gs.runTokens(cmd, text)
		},
	}
	cmd.Flags().AddFlagSet(sourceFlagSet(&expr))
	return cmd
}

// runTokens scans text and prints every token, WhiteSpace and BadToken
// included, followed by the lexer diagnostics.
func (gs *globalState) runTokens(cmd *cobra.Command, text string) error {
	tokens, diags := syntax.Lex(text)
	gs.logger.WithField("tokens", len(tokens)).Debug("lexed input")

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-8s %-18s %-12s %s\n", "POSITION", "TYPE", "TEXT", "VALUE")
	fmt.Fprintf(w, "%-8s %-18s %-12s %s\n", strings.Repeat("-", 8), strings.Repeat("-", 18), strings.Repeat("-", 12), strings.Repeat("-", 8))
	for _, tok := range tokens {
		value := "-"
		if v := tok.Value(); v != nil {
			value = fmt.Sprint(v)
		}
		fmt.Fprintf(w, "%-8d %-18s %-12s %s\n", tok.Position(), tok.Type(), strconv.Quote(tok.Text()), value)
	}

	if len(diags) > 0 {
		gs.printDiagnostics(cmd.ErrOrStderr(), diags)
		return errDiagnostics
	}
	return nil
}
