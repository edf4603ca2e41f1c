package eval

import (
	"errors"
	"fmt"

	"github.com/s-o-l-ar/Neon/internal/syntax"
)

// ErrDiagnostics is returned by EvaluateTree for trees that carry
// diagnostics.
var ErrDiagnostics = errors.New("syntax tree has diagnostics")

// Error represents an evaluation error.
type Error struct {
	Pos  int         // byte offset of the offending token
	Span syntax.Span // source text the error is about
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// errorf returns an *Error covering tok.
func errorf(tok *syntax.Token, format string, args ...interface{}) *Error {
	return &Error{Pos: tok.Position(), Span: tok.Span(), Msg: fmt.Sprintf(format, args...)}
}
