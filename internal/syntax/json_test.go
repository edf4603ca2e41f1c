package syntax

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func TestFprintTreeJSONRoot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTreeJSON(&buf, ParseSyntaxTree("1 + 2")))

	out := buf.String()
	require.True(t, gjson.Valid(out), out)

	root := gjson.Get(out, "root").Raw
	assert.Equal(t, "BinaryExpr", gjson.Get(root, "type").String())
	assert.Equal(t, int64(3), gjson.Get(root, "children.#").Int())
	assert.Equal(t, "NumberExpr", gjson.Get(root, "children.0.type").String())
	assert.Equal(t, int64(0), gjson.Get(root, "children.0.children.0.position").Int())
	assert.True(t, gjson.Get(root, "children.0.children.0.position").Exists())
	assert.Equal(t, int64(1), gjson.Get(root, "children.0.children.0.value").Int())
	assert.Equal(t, "MathAdd", gjson.Get(root, "children.1.type").String())
	assert.Equal(t, "+", gjson.Get(root, "children.1.text").String())
	assert.False(t, gjson.Get(root, "children.1.value").Exists())
	assert.Equal(t, int64(4), gjson.Get(root, "children.2.children.0.position").Int())
}

func TestFprintTreeJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTreeJSON(&buf, ParseSyntaxTree("(1")))

	out := buf.String()
	assert.Equal(t, "ParenthesizedExpr", gjson.Get(out, "root.type").String())
	assert.True(t, gjson.Get(out, "root.children.2.missing").Bool())
	assert.Equal(t, "EndOfFile", gjson.Get(out, "endOfFile.type").String())
	assert.Equal(t, int64(2), gjson.Get(out, "endOfFile.position").Int())
	assert.Equal(t, int64(1), gjson.Get(out, "diagnostics.#").Int())
}

func TestFprintTreeJSONEmptyDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTreeJSON(&buf, ParseSyntaxTree("1")))

	diags := gjson.Get(buf.String(), "diagnostics")
	assert.True(t, diags.IsArray())
	assert.Empty(t, diags.Array())
}

func TestFprintYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTreeYAML(&buf, ParseSyntaxTree("2 * 3")))

	var doc struct {
		Root struct {
			Type     string `yaml:"type"`
			Children []struct {
				Type     string `yaml:"type"`
				Text     string `yaml:"text"`
				Position int    `yaml:"position"`
			} `yaml:"children"`
		} `yaml:"root"`
		EndOfFile struct {
			Type     string `yaml:"type"`
			Position int    `yaml:"position"`
		} `yaml:"endOfFile"`
		Diagnostics []string `yaml:"diagnostics"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "BinaryExpr", doc.Root.Type)
	require.Len(t, doc.Root.Children, 3)
	assert.Equal(t, "MathMultiply", doc.Root.Children[1].Type)
	assert.Equal(t, "*", doc.Root.Children[1].Text)
	assert.Equal(t, 2, doc.Root.Children[1].Position)
	assert.Equal(t, "EndOfFile", doc.EndOfFile.Type)
	assert.Equal(t, 5, doc.EndOfFile.Position)
	assert.Empty(t, doc.Diagnostics)
}

func TestFprintTreeJSONTrailingTokens(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FprintTreeJSON(&buf, ParseSyntaxTree("1 2")))

	out := buf.String()
	assert.Equal(t, int64(3), gjson.Get(out, "endOfFile.position").Int())
	assert.False(t, gjson.Get(out, "endOfFile.missing").Exists())
	assert.Equal(t, "unexpected token <Number>, expected <EndOfFile> at position 2", gjson.Get(out, "diagnostics.0").String())
}
