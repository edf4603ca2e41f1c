package syntax

import (
	"fmt"
	"strconv"
)

// Lexer turns source text into tokens.
//
// Unrecognized characters become BadToken tokens and malformed numbers keep
// their Number type with a nil value; both are reported as diagnostics, and
// scanning always continues.
type Lexer struct {
	source

	diagnostics []string
	done        bool // EndOfFile has been returned
}

// NewLexer creates a Lexer for text.
func NewLexer(text string) *Lexer {
	return &Lexer{source: *newSource(text)}
}

// Next returns the next token. Once the input is exhausted it returns an
// EndOfFile token on every call.
func (l *Lexer) Next() *Token {
	start := l.pos()

	switch {
	case l.ch < 0:
		l.done = true
		return NewToken(EndOfFile, start, "", nil)

	case isDigit(l.ch):
		return l.number(start)

	case isWhitespace(l.ch):
		for isWhitespace(l.ch) {
			l.nextch()
		}
		return NewToken(WhiteSpace, start, l.segment(start), nil)
	}

	typ := BadToken
	switch l.ch {
	case '+':
		typ = MathAdd
	case '-':
		typ = MathSubtract
	case '*':
		typ = MathMultiply
	case '/':
		typ = MathDivide
	case '(':
		typ = OpenParenthesis
	case ')':
		typ = CloseParenthesis
	}

	ch := l.ch
	l.nextch()
	if typ == BadToken {
		l.errorf("bad character input %q at position %d", ch, start)
	}
	return NewToken(typ, start, l.segment(start), nil)
}

// number scans a run of decimal digits.
func (l *Lexer) number(start int) *Token {
	for isDigit(l.ch) {
		l.nextch()
	}
	text := l.segment(start)

	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.errorf("the number %q isn't a valid int64 at position %d", text, start)
		return NewToken(Number, start, text, nil)
	}
	return NewToken(Number, start, text, val)
}

// Done reports whether the EndOfFile token has been returned.
func (l *Lexer) Done() bool {
	return l.done
}

// Diagnostics returns the messages reported so far, in scan order.
func (l *Lexer) Diagnostics() []string {
	return append([]string(nil), l.diagnostics...)
}

func (l *Lexer) errorf(format string, args ...interface{}) {
	l.diagnostics = append(l.diagnostics, fmt.Sprintf(format, args...))
}

// Lex scans all of text. The result contains every token, including
// WhiteSpace and BadToken, and ends with exactly one EndOfFile token.
func Lex(text string) ([]*Token, []string) {
	l := NewLexer(text)
	var toks []*Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type() == EndOfFile {
			return toks, l.diagnostics
		}
	}
}
