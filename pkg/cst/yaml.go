package cst

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"groovy/frontend-go/pkg/ast"
)

// DecodeYAML reads one CST document. A node is either a mapping
//
//	kind: Binary
//	field: left
//	text: "..."
//	span: "1:1-1:6"
//	children: [...]
//
// or a scalar, which is shorthand for a Token with that text. The key `id`
// is shorthand for an Identifier token. Nodes without a span are laid out by
// Layout.
func DecodeYAML(r io.Reader) (*Node, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var root Node
	if err := decoder.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("cst: empty document")
		}
		return nil, fmt.Errorf("cst: %w", err)
	}
	return Layout(&root), nil
}

// EncodeYAML writes root in the form DecodeYAML accepts.
func EncodeYAML(w io.Writer, root *Node) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("cst: %w", err)
	}
	return encoder.Close()
}

// MarshalYAMLString is a convenience for tests and the CLI.
func MarshalYAMLString(root *Node) (string, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*n = Node{Kind: KindToken, Text: value.Value}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: node must be a mapping or a token string", value.Line)
	}
	*n = Node{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case "kind":
			n.Kind = Kind(val.Value)
		case "id":
			n.Kind = KindIdentifier
			n.Text = val.Value
		case "field":
			n.Field = val.Value
		case "text":
			n.Text = val.Value
		case "span":
			span, err := parseSpan(val.Value)
			if err != nil {
				return fmt.Errorf("line %d: %w", val.Line, err)
			}
			n.Span = span
		case "children":
			if err := val.Decode(&n.Children); err != nil {
				return err
			}
		default:
			return fmt.Errorf("line %d: unknown node key %q", key.Line, key.Value)
		}
	}
	if n.Kind == "" {
		return fmt.Errorf("line %d: node is missing a kind", value.Line)
	}
	return nil
}

func (n *Node) MarshalYAML() (interface{}, error) {
	if n.Kind == KindToken && n.Field == "" && len(n.Children) == 0 && n.Span == (ast.Span{}) {
		return n.Text, nil
	}
	out := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		out.Content = append(out.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, val)
	}
	scalar := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: s, Style: quoteStyle(s)}
	}
	if n.Kind == KindIdentifier {
		add("id", scalar(n.Text))
	} else {
		add("kind", scalar(string(n.Kind)))
		if n.Text != "" {
			add("text", scalar(n.Text))
		}
	}
	if n.Field != "" {
		add("field", scalar(n.Field))
	}
	if n.Span != (ast.Span{}) {
		add("span", scalar(formatSpan(n.Span)))
	}
	if len(n.Children) > 0 {
		children := &yaml.Node{Kind: yaml.SequenceNode}
		for _, child := range n.Children {
			var encoded yaml.Node
			if err := encoded.Encode(child); err != nil {
				return nil, err
			}
			children.Content = append(children.Content, &encoded)
		}
		add("children", children)
	}
	return out, nil
}

func quoteStyle(s string) yaml.Style {
	if s == "" || strings.ContainsAny(s, ":{}[],&*#?|-<>=!%@`'\"\\ ") {
		return yaml.DoubleQuotedStyle
	}
	return 0
}

func formatSpan(span ast.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", span.Start.Line, span.Start.Column, span.End.Line, span.End.Column)
}

func parseSpan(text string) (ast.Span, error) {
	start, end, ok := strings.Cut(strings.TrimSpace(text), "-")
	if !ok {
		return ast.Span{}, fmt.Errorf("span %q: want line:col-line:col", text)
	}
	from, err := parsePosition(start)
	if err != nil {
		return ast.Span{}, fmt.Errorf("span %q: %w", text, err)
	}
	to, err := parsePosition(end)
	if err != nil {
		return ast.Span{}, fmt.Errorf("span %q: %w", text, err)
	}
	if to.Before(from) {
		return ast.Span{}, fmt.Errorf("span %q ends before it starts", text)
	}
	return ast.Span{Start: from, End: to}, nil
}

func parsePosition(text string) (ast.Position, error) {
	line, col, ok := strings.Cut(text, ":")
	if !ok {
		return ast.Position{}, fmt.Errorf("position %q: want line:col", text)
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return ast.Position{}, fmt.Errorf("position %q: bad line", text)
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 1 {
		return ast.Position{}, fmt.Errorf("position %q: bad column", text)
	}
	return ast.Position{Line: l, Column: c}, nil
}
