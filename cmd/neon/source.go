package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s-o-l-ar/Neon/internal/config"
	"github.com/s-o-l-ar/Neon/internal/syntax"
)

func sourceFlagSet(expr *string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(expr, "expr", "e", "", "expression to process instead of a file")
	return flags
}

func outputFlagSet(output *string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(output, "output", "o", config.OutputText, "tree format: text, json or yaml")
	return flags
}

// readSource returns the text named by the command line: the --expr value,
// the file argument, or standard input when neither is given or the file
// is "-".
func (gs *globalState) readSource(cmd *cobra.Command, expr string, args []string) (string, error) {
	fromExpr := cmd.Flags().Changed("expr")
	switch {
	case fromExpr && len(args) > 0:
		return "", errors.New("--expr and a file argument are mutually exclusive")
	case fromExpr:
		return expr, nil
	case len(args) == 0 || args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading standard input: %w", err)
		}
		return string(data), nil
	}

	data, err := afero.ReadFile(gs.fs, args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	gs.logger.WithField("file", args[0]).Debug("read source file")
	return string(data), nil
}

// printDiagnostics writes each diagnostic on its own line.
func (gs *globalState) printDiagnostics(w io.Writer, diags []string) {
	for _, d := range diags {
		gs.errColor.Fprintf(w, "error: %s\n", d)
	}
}

// printHighlight writes the source line containing span and underlines the
// spanned text with carets. Empty spans get a single caret.
func (gs *globalState) printHighlight(w io.Writer, text string, span syntax.Span) {
	if span.Start < 0 || span.Start > len(text) {
		return
	}
	lineStart := strings.LastIndexByte(text[:span.Start], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[span.Start:], '\n'); i >= 0 {
		lineEnd = span.Start + i
	}

	end := span.Start + span.Len()
	if end > lineEnd {
		end = lineEnd
	}
	width := utf8.RuneCountInString(text[span.Start:end])
	if width < 1 {
		width = 1
	}
	pad := utf8.RuneCountInString(text[lineStart:span.Start])

	fmt.Fprintln(w, strings.TrimRight(text[lineStart:lineEnd], "\r"))
	gs.errColor.Fprintln(w, strings.Repeat(" ", pad)+strings.Repeat("^", width))
}

// printTree writes tree in the given format. Diagnostics are part of the
// json and yaml documents only.
func printTree(w io.Writer, tree *syntax.SyntaxTree, format string) error {
	switch format {
	case config.OutputJSON:
		return syntax.FprintTreeJSON(w, tree)
	case config.OutputYAML:
		return syntax.FprintTreeYAML(w, tree)
	case config.OutputText:
		syntax.FprintTree(w, tree)
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
