package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s-o-l-ar/Neon/internal/eval"
	"github.com/s-o-l-ar/Neon/internal/syntax"
)

const prompt = "> "

// REPL commands.
const (
	cmdShowTree = "#showTree"
	cmdQuit     = "#quit"
)

func newREPLCommand(gs *globalState) *cobra.Command {
	var showTree bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "read and evaluate expressions interactively",
		Long: `repl evaluates one expression per line.

  #showTree  toggle printing the syntax tree of each line
  #quit      leave (end of input works too)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("show-tree") {
				showTree = gs.cfg.ShowTree
			}
			return gs.runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), showTree)
		},
	}
	cmd.Flags().BoolVar(&showTree, "show-tree", false, "start with syntax tree display enabled")
	return cmd
}

// runREPL reads lines from in until #quit or end of input. Lines have no
// length limit.
func (gs *globalState) runREPL(in io.Reader, out io.Writer, showTree bool) error {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		raw, err := r.ReadString('\n')
		if err != nil && raw == "" {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line := strings.TrimSpace(raw)
		switch line {
		case "":
			continue
		case cmdQuit:
			return nil
		case cmdShowTree:
			showTree = !showTree
			if showTree {
				fmt.Fprintln(out, "Showing parse trees.")
			} else {
				fmt.Fprintln(out, "Not showing parse trees.")
			}
			continue
		}

		gs.evalLine(out, line, showTree)
	}
}

func (gs *globalState) evalLine(out io.Writer, line string, showTree bool) {
	tree := syntax.ParseSyntaxTree(line)
	if showTree {
		var sb strings.Builder
		syntax.Fprint(&sb, tree.Root())
		gs.treeColor.Fprint(out, sb.String())
	}

	if tree.HasDiagnostics() {
		gs.logger.WithField("diagnostics", len(tree.Diagnostics())).Debug("line has diagnostics")
		gs.printDiagnostics(out, tree.Diagnostics())
		return
	}

	v, err := eval.EvaluateTree(tree)
	if err != nil {
		gs.printDiagnostics(out, []string{err.Error()})
		var evalErr *eval.Error
		if errors.As(err, &evalErr) {
			gs.printHighlight(out, line, evalErr.Span)
		}
		return
	}
	fmt.Fprintln(out, v.ExactString())
}
