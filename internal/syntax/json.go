package syntax

import (
	"encoding/json"
	"io"
)

// encNode is the serialized form of a node shared by the JSON and YAML
// encoders.
type encNode struct {
	Type     string      `json:"type" yaml:"type"`
	Position *int        `json:"position,omitempty" yaml:"position,omitempty"`
	Text     string      `json:"text,omitempty" yaml:"text,omitempty"`
	Value    interface{} `json:"value,omitempty" yaml:"value,omitempty"`
	Missing  bool        `json:"missing,omitempty" yaml:"missing,omitempty"`
	Children []*encNode  `json:"children,omitempty" yaml:"children,omitempty"`
}

// encTree is the serialized form of a SyntaxTree.
type encTree struct {
	Root        *encNode `json:"root" yaml:"root"`
	EndOfFile   *encNode `json:"endOfFile" yaml:"endOfFile"`
	Diagnostics []string `json:"diagnostics" yaml:"diagnostics"`
}

func toEnc(node Node) *encNode {
	if node == nil {
		return nil
	}
	n := &encNode{Type: node.Type().String()}
	if tok, ok := node.(*Token); ok {
		pos := tok.Position()
		n.Position = &pos
		n.Text = tok.Text()
		n.Value = tok.Value()
		n.Missing = tok.IsSynthesized()
		return n
	}
	for _, c := range node.Children() {
		n.Children = append(n.Children, toEnc(c))
	}
	return n
}

func toEncTree(t *SyntaxTree) *encTree {
	diags := t.Diagnostics()
	if diags == nil {
		diags = []string{}
	}
	return &encTree{
		Root:        toEnc(t.Root()),
		EndOfFile:   toEnc(t.EndOfFile()),
		Diagnostics: diags,
	}
}

// FprintTreeJSON writes a JSON representation of t to w.
func FprintTreeJSON(w io.Writer, t *SyntaxTree) error {
	return encodeJSON(w, toEncTree(t))
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
