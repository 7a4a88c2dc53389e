package cst

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"groovy/frontend-go/pkg/ast"
)

// Grammar maps the node names of a tree-sitter grammar onto CST kinds.
// Named nodes missing from Kinds keep their grammar name; anonymous nodes
// become tokens.
type Grammar struct {
	Name  string
	Kinds map[string]Kind
}

// SyntaxError reports an ERROR or MISSING node in a tree-sitter parse.
type SyntaxError struct {
	Message string
	Span    ast.Span
}

func (e *SyntaxError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Parser wraps a tree-sitter parser loaded with one grammar.
type Parser struct {
	parser  *sitter.Parser
	grammar Grammar
}

func NewParser(lang *sitter.Language, grammar Grammar) (*Parser, error) {
	if lang == nil {
		return nil, fmt.Errorf("cst: %s language not available", grammar.Name)
	}
	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		p.Close()
		return nil, fmt.Errorf("cst: %w", err)
	}
	return &Parser{parser: p, grammar: grammar}, nil
}

// Close releases parser resources.
func (p *Parser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// Parse parses source and converts the whole tree.
func (p *Parser) Parse(source []byte) (*Node, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("cst: nil parser")
	}
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("cst: parse failed")
	}
	defer tree.Close()
	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("cst: unexpected root node")
	}
	return FromTreeSitter(root, source, p.grammar)
}

// FromTreeSitter converts a tree-sitter subtree. Extras such as comments are
// dropped; ERROR and MISSING nodes abort with a *SyntaxError.
func FromTreeSitter(root *sitter.Node, source []byte, grammar Grammar) (*Node, error) {
	if root == nil {
		return nil, fmt.Errorf("cst: nil tree-sitter node")
	}
	if root.HasError() {
		return nil, syntaxError(root)
	}
	return convertNode(root, source, grammar), nil
}

func convertNode(node *sitter.Node, source []byte, grammar Grammar) *Node {
	out := &Node{Span: spanFromNode(node)}
	switch {
	case !node.IsNamed():
		out.Kind = KindToken
	default:
		if kind, ok := grammar.Kinds[node.Kind()]; ok {
			out.Kind = kind
		} else {
			out.Kind = Kind(node.Kind())
		}
	}
	count := node.ChildCount()
	if count == 0 {
		out.Text = sliceContent(node, source)
		return out
	}
	for i := uint(0); i < count; i++ {
		child := node.Child(i)
		if child == nil || child.IsExtra() {
			continue
		}
		converted := convertNode(child, source, grammar)
		converted.Field = node.FieldNameForChild(uint32(i))
		out.Children = append(out.Children, converted)
	}
	if out.Kind.IsToken() && len(out.Children) > 0 {
		out.Text = sliceContent(node, source)
		out.Children = nil
	}
	return out
}

func sliceContent(node *sitter.Node, source []byte) string {
	start, end := node.StartByte(), node.EndByte()
	if start > end || end > uint(len(source)) {
		return ""
	}
	return string(source[start:end])
}

func spanFromNode(node *sitter.Node) ast.Span {
	start := node.StartPosition()
	end := node.EndPosition()
	return ast.Span{
		Start: ast.Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		End:   ast.Position{Line: int(end.Row) + 1, Column: int(end.Column) + 1},
	}
}

func syntaxError(root *sitter.Node) error {
	if missing := firstNode(root, (*sitter.Node).IsMissing); missing != nil {
		return &SyntaxError{
			Message: fmt.Sprintf("cst: syntax error: expected %s", missing.Kind()),
			Span:    spanFromNode(missing),
		}
	}
	if bad := firstNode(root, (*sitter.Node).IsError); bad != nil {
		return &SyntaxError{Message: "cst: syntax error", Span: spanFromNode(bad)}
	}
	return &SyntaxError{Message: "cst: syntax error", Span: spanFromNode(root)}
}

func firstNode(root *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	var best *sitter.Node
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if match(node) && (best == nil || node.StartByte() < best.StartByte()) {
			best = node
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(root)
	return best
}
