// Package eval computes the value of Neon expressions.
package eval

import (
	"fmt"
	"go/constant"
	"go/token"

	"github.com/s-o-l-ar/Neon/internal/syntax"
)

// Evaluate computes the value of x using exact integer arithmetic.
// Division truncates toward zero. Trees recovered from syntax errors may
// contain synthesized number tokens; evaluating one is an error.
func Evaluate(x syntax.Expression) (constant.Value, error) {
	switch n := x.(type) {
	case *syntax.NumberExpr:
		return number(n.Number())

	case *syntax.ParenthesisExpr:
		return Evaluate(n.Expression())

	case *syntax.BinaryExpr:
		lhs, err := Evaluate(n.Left())
		if err != nil {
			return nil, err
		}
		rhs, err := Evaluate(n.Right())
		if err != nil {
			return nil, err
		}
		return binary(lhs, n, rhs)
	}
	return nil, fmt.Errorf("eval: unexpected node %T", x)
}

// EvaluateTree evaluates the root of t. Trees with diagnostics are refused
// with ErrDiagnostics; call Evaluate on t.Root() to evaluate a best-effort
// tree anyway.
func EvaluateTree(t *syntax.SyntaxTree) (constant.Value, error) {
	if t.HasDiagnostics() {
		return nil, ErrDiagnostics
	}
	return Evaluate(t.Root())
}

// number converts a Number token into a constant.
func number(tok *syntax.Token) (constant.Value, error) {
	if tok.IsSynthesized() {
		return nil, errorf(tok, "missing number")
	}
	v, ok := tok.Value().(int64)
	if !ok {
		return nil, errorf(tok, "invalid number literal %s", tok.Text())
	}
	return constant.MakeInt64(v), nil
}

// binary applies the operator of n to the values x and y of its operands.
func binary(x constant.Value, n *syntax.BinaryExpr, y constant.Value) (constant.Value, error) {
	tok := n.Operator()
	switch tok.Type() {
	case syntax.MathAdd:
		return constant.BinaryOp(x, token.ADD, y), nil
	case syntax.MathSubtract:
		return constant.BinaryOp(x, token.SUB, y), nil
	case syntax.MathMultiply:
		return constant.BinaryOp(x, token.MUL, y), nil
	case syntax.MathDivide:
		if constant.Sign(y) == 0 {
			err := errorf(tok, "division by zero")
			err.Span = syntax.NodeSpan(n.Right())
			return nil, err
		}
		// QUO_ASSIGN selects truncated integer division.
		return constant.BinaryOp(x, token.QUO_ASSIGN, y), nil
	}
	return nil, errorf(tok, "unexpected operator %s", tok.Type())
}
