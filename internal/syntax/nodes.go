package syntax

import "fmt"

// ----------------------------------------------------------------------------
// Interfaces
//
// Tokens and expressions form one family: every node reports its type and
// its direct children in source order, so a printer or visitor can walk a
// whole tree without distinguishing leaves from composites.

// Node is the interface implemented by tokens and expression nodes.
type Node interface {
	Type() TokenType  // fixed at construction
	Children() []Node // direct children in source order; a fresh slice per call
	aNode()           // marker method to restrict implementations to this package
}

// Expression is the interface for nodes produced by a grammar production.
type Expression interface {
	Node
	aExpr()
}

// expr is embedded in all expression nodes.
type expr struct{}

func (expr) aNode() {}
func (expr) aExpr() {}

// ----------------------------------------------------------------------------
// Expressions

// NumberExpr is a numeric literal: 42
type NumberExpr struct {
	expr
	number *Token
}

// NewNumberExpr wraps a Number token.
func NewNumberExpr(number *Token) *NumberExpr {
	mustToken("NumberExpr", number)
	return &NumberExpr{number: number}
}

// Type returns NumberExpression.
func (*NumberExpr) Type() TokenType { return NumberExpression }

// Number returns the literal token.
func (n *NumberExpr) Number() *Token { return n.number }

// Children returns [number].
func (n *NumberExpr) Children() []Node {
	return []Node{n.number}
}

// BinaryExpr is a binary operation: Left Op Right
// Grouping is encoded by tree shape; a tighter-binding operator is always
// the deeper node.
type BinaryExpr struct {
	expr
	left  Expression
	op    *Token
	right Expression
}

// NewBinaryExpr combines two operands with an operator token.
func NewBinaryExpr(left Expression, op *Token, right Expression) *BinaryExpr {
	mustExpr("BinaryExpr", left)
	mustToken("BinaryExpr", op)
	mustExpr("BinaryExpr", right)
	return &BinaryExpr{left: left, op: op, right: right}
}

// Type returns BinaryExpression.
func (*BinaryExpr) Type() TokenType { return BinaryExpression }

// Left returns the left operand.
func (b *BinaryExpr) Left() Expression { return b.left }

// Operator returns the operator token.
func (b *BinaryExpr) Operator() *Token { return b.op }

// Right returns the right operand.
func (b *BinaryExpr) Right() Expression { return b.right }

// Children returns [left, operator, right].
func (b *BinaryExpr) Children() []Node {
	return []Node{b.left, b.op, b.right}
}

// ParenthesisExpr is a parenthesized expression: ( X )
type ParenthesisExpr struct {
	expr
	lparen *Token
	x      Expression
	rparen *Token
}

// NewParenthesisExpr wraps an expression between two parenthesis tokens.
func NewParenthesisExpr(lparen *Token, x Expression, rparen *Token) *ParenthesisExpr {
	mustToken("ParenthesisExpr", lparen)
	mustExpr("ParenthesisExpr", x)
	mustToken("ParenthesisExpr", rparen)
	return &ParenthesisExpr{lparen: lparen, x: x, rparen: rparen}
}

// Type returns ParenthesizedExpression.
func (*ParenthesisExpr) Type() TokenType { return ParenthesizedExpression }

// Open returns the opening parenthesis.
func (p *ParenthesisExpr) Open() *Token { return p.lparen }

// Expression returns the inner expression.
func (p *ParenthesisExpr) Expression() Expression { return p.x }

// Close returns the closing parenthesis. It is synthesized when missing
// from the source.
func (p *ParenthesisExpr) Close() *Token { return p.rparen }

// Children returns [open, expression, close].
func (p *ParenthesisExpr) Children() []Node {
	return []Node{p.lparen, p.x, p.rparen}
}

// ----------------------------------------------------------------------------
// Construction checks

// Missing slots are contract violations, not anomalies in the input.
func mustToken(node string, t *Token) {
	if t == nil {
		panic(fmt.Sprintf("syntax: %s with nil token", node))
	}
}

func mustExpr(node string, x Expression) {
	var isNil bool
	switch x := x.(type) {
	case nil:
		isNil = true
	case *NumberExpr:
		isNil = x == nil
	case *BinaryExpr:
		isNil = x == nil
	case *ParenthesisExpr:
		isNil = x == nil
	}
	if isNil {
		panic(fmt.Sprintf("syntax: %s with nil expression", node))
	}
}
