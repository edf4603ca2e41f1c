// Package syntax implements lexical and syntactic analysis for Neon
// arithmetic expressions.
package syntax

import (
	"fmt"
	"reflect"
)

// TokenType classifies tokens and syntax nodes.
type TokenType uint

const (
	// Lexical categories
	Number           TokenType = iota // 123
	WhiteSpace                        // spaces, tabs, newlines
	MathAdd                           // +
	MathSubtract                      // -
	MathMultiply                      // *
	MathDivide                        // /
	OpenParenthesis                   // (
	CloseParenthesis                  // )
	BadToken                          // unrecognized input
	EndOfFile                         // end of input

	// Syntactic categories
	NumberExpression        // NumberExpr
	BinaryExpression        // BinaryExpr
	ParenthesizedExpression // ParenthesisExpr

	tokenTypeCount
)

// tokenTypeNames maps token types to their string representation.
var tokenTypeNames = [...]string{
	Number:           "Number",
	WhiteSpace:       "WhiteSpace",
	MathAdd:          "MathAdd",
	MathSubtract:     "MathSubtract",
	MathMultiply:     "MathMultiply",
	MathDivide:       "MathDivide",
	OpenParenthesis:  "OpenParenthesis",
	CloseParenthesis: "CloseParenthesis",
	BadToken:         "BadToken",
	EndOfFile:        "EndOfFile",

	NumberExpression:        "NumberExpr",
	BinaryExpression:        "BinaryExpr",
	ParenthesizedExpression: "ParenthesizedExpr",
}

// String returns the name of the token type.
func (t TokenType) String() string {
	if t < tokenTypeCount {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// IsLexical reports whether t is a category a Token may carry.
func (t TokenType) IsLexical() bool {
	return t <= EndOfFile
}

// IsSyntactic reports whether t tags a composite expression node.
func (t TokenType) IsSyntactic() bool {
	return t >= NumberExpression && t < tokenTypeCount
}

// IsOperator reports whether t is one of the four binary operators.
func (t TokenType) IsOperator() bool {
	return t >= MathAdd && t <= MathDivide
}

// BinaryPrecedence returns the binding strength of a binary operator.
// Returns 0 for non-operators.
//
//	1: + -
//	2: * /
func (t TokenType) BinaryPrecedence() int {
	switch t {
	case MathAdd, MathSubtract:
		return 1
	case MathMultiply, MathDivide:
		return 2
	}
	return 0
}

// Token is a terminal node produced by the lexer.
// Tokens are immutable after construction.
type Token struct {
	typ   TokenType
	pos   int         // byte offset in the source
	text  string      // raw lexeme, empty for synthesized tokens
	value interface{} // literal payload (int64 for Number), or nil
}

// NewToken creates a token. Construction never fails for lexical types:
// malformed input is represented as a BadToken. Passing a syntactic type
// or a negative position is a programming error and panics.
func NewToken(typ TokenType, pos int, text string, value interface{}) *Token {
	if !typ.IsLexical() {
		panic(fmt.Sprintf("syntax: NewToken with non-lexical type %s", typ))
	}
	if pos < 0 {
		panic(fmt.Sprintf("syntax: NewToken with negative position %d", pos))
	}
	return &Token{typ: typ, pos: pos, text: text, value: value}
}

// Type returns the token's lexical category.
func (t *Token) Type() TokenType { return t.typ }

// Position returns the byte offset of the token in the source.
func (t *Token) Position() int { return t.pos }

// Text returns the raw lexeme.
func (t *Token) Text() string { return t.text }

// Value returns the literal payload, or nil.
func (t *Token) Value() interface{} { return t.value }

// Children returns an empty slice; tokens are leaves.
func (t *Token) Children() []Node { return nil }

// IsSynthesized reports whether the token was fabricated by the parser
// during error recovery rather than read from the source.
func (t *Token) IsSynthesized() bool {
	return t.text == "" && t.typ != EndOfFile
}

// Equal reports whether t and u have the same type, position, text and value.
// Two textually identical tokens at different offsets are not equal.
func (t *Token) Equal(u *Token) bool {
	if t == nil || u == nil {
		return t == u
	}
	return t.typ == u.typ && t.pos == u.pos && t.text == u.text && reflect.DeepEqual(t.value, u.value)
}

// String returns a short description such as Number(42)@3.
func (t *Token) String() string {
	if t.value != nil {
		return fmt.Sprintf("%s(%v)@%d", t.typ, t.value, t.pos)
	}
	if t.text != "" {
		return fmt.Sprintf("%s(%q)@%d", t.typ, t.text, t.pos)
	}
	return fmt.Sprintf("%s@%d", t.typ, t.pos)
}

func (*Token) aNode() {}
