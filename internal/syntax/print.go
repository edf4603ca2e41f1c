package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented tree of node to w, one node per line.
// Only Children is used, so tokens and expressions print uniformly.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node, "", true, true)
}

// FprintTree writes the root of t followed by its EndOfFile token.
// Diagnostics are left to the caller.
func FprintTree(w io.Writer, t *SyntaxTree) {
	Fprint(w, t.Root())
	Fprint(w, t.EndOfFile())
}

type printer struct {
	w io.Writer
}

func (p *printer) print(node Node, indent string, last, root bool) {
	marker := "├── "
	if last {
		marker = "└── "
	}
	if root {
		marker = ""
	}
	fmt.Fprintf(p.w, "%s%s%s\n", indent, marker, nodeLabel(node))

	if !root {
		if last {
			indent += "    "
		} else {
			indent += "│   "
		}
	}

	children := node.Children()
	for i, c := range children {
		p.print(c, indent, i == len(children)-1, false)
	}
}

// nodeLabel returns the single-line description of a node.
func nodeLabel(node Node) string {
	tok, ok := node.(*Token)
	if !ok {
		return node.Type().String()
	}
	switch {
	case tok.IsSynthesized():
		return tok.Type().String() + " <missing>"
	case tok.Text() == "":
		return tok.Type().String()
	case tok.Type() == WhiteSpace:
		return fmt.Sprintf("%s %q", tok.Type(), tok.Text())
	}
	return tok.Type().String() + " " + tok.Text()
}

// String reconstructs the source of node from its token texts, separated by
// single spaces. Synthesized tokens contribute nothing.
func String(node Node) string {
	var parts []string
	for _, tok := range Tokens(node) {
		if tok.Text() != "" {
			parts = append(parts, tok.Text())
		}
	}
	return strings.Join(parts, " ")
}
