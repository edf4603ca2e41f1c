package syntax

import "fmt"

// Parser builds a SyntaxTree from source text.
//
// Parsing never fails: when the input does not match the grammar the parser
// records a diagnostic, synthesizes the token it expected and carries on, so
// that every parse yields a structurally complete tree.
type Parser struct {
	tokens []*Token // significant tokens, ending with EndOfFile
	pos    int      // index of the current token

	diagnostics []string
}

// NewParser lexes text and prepares a Parser for it.
// WhiteSpace and BadToken tokens are dropped; the lexer's diagnostics are
// kept and precede any parser diagnostics.
func NewParser(text string) *Parser {
	p := &Parser{}

	l := NewLexer(text)
	for !l.Done() {
		tok := l.Next()
		switch tok.Type() {
		case WhiteSpace, BadToken:
			continue
		}
		p.tokens = append(p.tokens, tok)
	}
	p.diagnostics = l.Diagnostics()
	return p
}

// ParseSyntaxTree parses text into a SyntaxTree.
func ParseSyntaxTree(text string) *SyntaxTree {
	return NewParser(text).Parse()
}

// Parse parses the whole input. It must be called at most once.
// Tokens left over after the expression are reported and skipped; the
// tree always ends with the lexer's EndOfFile token.
func (p *Parser) Parse() *SyntaxTree {
	root := p.expr()
	if cur := p.current(); cur.Type() != EndOfFile {
		p.unexpected(cur, EndOfFile)
	}
	eof := p.tokens[len(p.tokens)-1]
	return NewSyntaxTree(p.diagnostics, root, eof)
}

// ----------------------------------------------------------------------------
// Token navigation

// peek returns the token offset positions ahead of the current one.
// Past the end it returns the final EndOfFile token.
func (p *Parser) peek(offset int) *Token {
	i := p.pos + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// current returns the current token.
func (p *Parser) current() *Token {
	return p.peek(0)
}

// next consumes and returns the current token.
func (p *Parser) next() *Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// match consumes the current token if it has type typ.
// Otherwise it reports an error and returns a synthesized token of type
// typ at the current position, leaving the current token in place.
func (p *Parser) match(typ TokenType) *Token {
	if p.current().Type() == typ {
		return p.next()
	}
	cur := p.current()
	p.unexpected(cur, typ)
	return NewToken(typ, cur.Position(), "", nil)
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) errorf(format string, args ...interface{}) {
	p.diagnostics = append(p.diagnostics, fmt.Sprintf(format, args...))
}

func (p *Parser) unexpected(got *Token, want TokenType) {
	p.errorf("unexpected token <%s>, expected <%s> at position %d", got.Type(), want, got.Position())
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses an expression.
func (p *Parser) expr() Expression {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; operators of equal precedence group to
// the left.
func (p *Parser) binaryExpr(prec int) Expression {
	x := p.primaryExpr()

	for p.current().Type().IsOperator() {
		oprec := p.current().Type().BinaryPrecedence()
		if oprec <= prec {
			break
		}

		op := p.next()
		y := p.binaryExpr(oprec)
		x = NewBinaryExpr(x, op, y)
	}
	return x
}

// primaryExpr parses a number or a parenthesized expression.
func (p *Parser) primaryExpr() Expression {
	if p.current().Type() == OpenParenthesis {
		lparen := p.next()
		x := p.expr()
		rparen := p.match(CloseParenthesis)
		return NewParenthesisExpr(lparen, x, rparen)
	}

	return NewNumberExpr(p.match(Number))
}
