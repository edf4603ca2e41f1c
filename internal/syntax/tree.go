package syntax

import "fmt"

// SyntaxTree is the result of one parse: the root expression, the
// terminating EndOfFile token, and the diagnostics reported on the way.
//
// A tree with diagnostics still has a structurally complete root; error
// recovery synthesizes whatever tokens were missing.
type SyntaxTree struct {
	diagnostics []string
	root        Expression
	eof         *Token
}

// NewSyntaxTree assembles a syntax tree from the products of a completed
// parse. The diagnostics are copied. A nil root or a terminator that is not
// an EndOfFile token is a programming error and panics.
func NewSyntaxTree(diagnostics []string, root Expression, eof *Token) *SyntaxTree {
	if root == nil {
		panic("syntax: NewSyntaxTree with nil root")
	}
	if eof == nil || eof.Type() != EndOfFile {
		panic(fmt.Sprintf("syntax: NewSyntaxTree with terminator %v, want EndOfFile", eof))
	}
	return &SyntaxTree{
		diagnostics: append([]string(nil), diagnostics...),
		root:        root,
		eof:         eof,
	}
}

// Diagnostics returns the reported messages in the order they were
// encountered. The returned slice is a copy.
func (t *SyntaxTree) Diagnostics() []string {
	return append([]string(nil), t.diagnostics...)
}

// HasDiagnostics reports whether any anomaly was reported.
func (t *SyntaxTree) HasDiagnostics() bool {
	return len(t.diagnostics) > 0
}

// Root returns the top-level expression. It is never nil.
func (t *SyntaxTree) Root() Expression { return t.root }

// EndOfFile returns the terminating token.
func (t *SyntaxTree) EndOfFile() *Token { return t.eof }
