package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(pos int, text string, v int64) *NumberExpr {
	return NewNumberExpr(NewToken(Number, pos, text, v))
}

func TestNumberExprChildren(t *testing.T) {
	tok := NewToken(Number, 0, "7", int64(7))
	n := NewNumberExpr(tok)

	assert.Equal(t, NumberExpression, n.Type())
	require.Len(t, n.Children(), 1)
	assert.Same(t, tok, n.Children()[0])
}

func TestBinaryExprChildren(t *testing.T) {
	left := num(0, "1", 1)
	op := NewToken(MathAdd, 2, "+", nil)
	right := num(4, "2", 2)
	b := NewBinaryExpr(left, op, right)

	assert.Equal(t, BinaryExpression, b.Type())
	children := b.Children()
	require.Len(t, children, 3)
	assert.Same(t, left, children[0])
	assert.Same(t, op, children[1])
	assert.Same(t, right, children[2])
}

func TestParenthesisExprChildren(t *testing.T) {
	open := NewToken(OpenParenthesis, 0, "(", nil)
	inner := num(1, "5", 5)
	rp := NewToken(CloseParenthesis, 2, ")", nil)
	p := NewParenthesisExpr(open, inner, rp)

	assert.Equal(t, ParenthesizedExpression, p.Type())
	children := p.Children()
	require.Len(t, children, 3)
	assert.Same(t, open, children[0])
	assert.Same(t, inner, children[1])
	assert.Same(t, rp, children[2])
}

func TestChildrenRestartable(t *testing.T) {
	tree := ParseSyntaxTree("(1 + 2) * 3 - 4 / 5")

	Inspect(tree.Root(), func(n Node) bool {
		first := n.Children()
		second := n.Children()
		assert.Equal(t, first, second, "%s", n.Type())
		return true
	})
}

func TestChildrenIsolated(t *testing.T) {
	b := NewBinaryExpr(num(0, "1", 1), NewToken(MathAdd, 1, "+", nil), num(2, "2", 2))

	children := b.Children()
	children[0] = nil
	assert.NotNil(t, b.Children()[0], "mutating a returned slice must not affect the node")
}

func TestNodeTypeTags(t *testing.T) {
	tree := ParseSyntaxTree("(1 + @2) * 3")

	Inspect(tree.Root(), func(n Node) bool {
		if _, ok := n.(*Token); ok {
			assert.True(t, n.Type().IsLexical(), "token tag %s", n.Type())
			assert.Empty(t, n.Children())
		} else {
			assert.True(t, n.Type().IsSyntactic(), "expression tag %s", n.Type())
			assert.NotEmpty(t, n.Children())
		}
		return true
	})
}

func TestConstructorContractViolations(t *testing.T) {
	one := num(0, "1", 1)
	plus := NewToken(MathAdd, 1, "+", nil)

	assert.Panics(t, func() { NewNumberExpr(nil) })
	assert.Panics(t, func() { NewBinaryExpr(nil, plus, one) })
	assert.Panics(t, func() { NewBinaryExpr(one, nil, one) })
	assert.Panics(t, func() { NewBinaryExpr(one, plus, nil) })
	assert.Panics(t, func() { NewParenthesisExpr(nil, one, plus) })
	assert.Panics(t, func() { NewParenthesisExpr(plus, nil, plus) })
	assert.Panics(t, func() { NewParenthesisExpr(plus, one, nil) })
}

func TestConstructorRejectsTypedNil(t *testing.T) {
	one := num(0, "1", 1)
	plus := NewToken(MathAdd, 1, "+", nil)

	tests := []struct {
		name string
		x    Expression
	}{
		{"number", (*NumberExpr)(nil)},
		{"binary", (*BinaryExpr)(nil)},
		{"paren", (*ParenthesisExpr)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { NewBinaryExpr(tt.x, plus, one) })
			assert.Panics(t, func() { NewBinaryExpr(one, plus, tt.x) })
			assert.Panics(t, func() { NewParenthesisExpr(plus, tt.x, plus) })
		})
	}
}

func TestConstructionDoesNotValidateSemantics(t *testing.T) {
	// A Number token without a value is a diagnostic concern, not a
	// structural one.
	n := NewNumberExpr(NewToken(Number, 0, "99999999999999999999", nil))
	assert.Nil(t, n.Number().Value())
}
