package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses a tree in depth-first, source order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}
	for _, c := range node.Children() {
		Walk(c, v)
	}
}

// Inspect traverses a tree and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}

// Tokens returns the leaves of node in source order, including synthesized
// tokens.
func Tokens(node Node) []*Token {
	var toks []*Token
	Inspect(node, func(n Node) bool {
		if tok, ok := n.(*Token); ok {
			toks = append(toks, tok)
		}
		return true
	})
	return toks
}
