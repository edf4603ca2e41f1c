package syntax

import (
	"io"

	"gopkg.in/yaml.v3"
)

// FprintTreeYAML writes a YAML representation of t to w.
func FprintTreeYAML(w io.Writer, t *SyntaxTree) error {
	return encodeYAML(w, toEncTree(t))
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
