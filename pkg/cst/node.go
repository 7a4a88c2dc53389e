package cst

import (
	"strings"

	"groovy/frontend-go/pkg/ast"
)

// Node is one concrete syntax node. Tokens carry Text and no children;
// composite nodes carry ordered children. Field is the role the parent
// assigns to this node ("left", "body", ...) and may be empty.
type Node struct {
	Kind     Kind
	Field    string
	Text     string
	Span     ast.Span
	Children []*Node
}

func (n *Node) IsToken() bool {
	return n != nil && n.Kind.IsToken()
}

func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the i-th child or nil when out of range.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

func (n *Node) ChildByField(field string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child != nil && child.Field == field {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenByField(field string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child != nil && child.Field == field {
			out = append(out, child)
		}
	}
	return out
}

// NamedChildren returns the non-token children in order.
func (n *Node) NamedChildren() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child != nil && !child.IsToken() {
			out = append(out, child)
		}
	}
	return out
}

// Tokens returns the direct token children in order.
func (n *Node) Tokens() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, child := range n.Children {
		if child != nil && child.IsToken() {
			out = append(out, child)
		}
	}
	return out
}

// HasToken reports whether a direct child token has the given text.
func (n *Node) HasToken(text string) bool {
	return n.FindToken(text) != nil
}

func (n *Node) FindToken(text string) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child != nil && child.IsToken() && child.Text == text {
			return child
		}
	}
	return nil
}

// FirstOfKind returns the first direct child with the given kind.
func (n *Node) FirstOfKind(kind Kind) *Node {
	if n == nil {
		return nil
	}
	for _, child := range n.Children {
		if child != nil && child.Kind == kind {
			return child
		}
	}
	return nil
}

// Content concatenates the text of every leaf under n.
func (n *Node) Content() string {
	if n == nil {
		return ""
	}
	if len(n.Children) == 0 {
		return n.Text
	}
	var sb strings.Builder
	n.writeContent(&sb)
	return sb.String()
}

func (n *Node) writeContent(sb *strings.Builder) {
	if len(n.Children) == 0 {
		sb.WriteString(n.Text)
		return
	}
	for _, child := range n.Children {
		if child != nil {
			child.writeContent(sb)
		}
	}
}

// Find returns the first node, in pre-order, for which match returns true.
func Find(root *Node, match func(*Node) bool) *Node {
	if root == nil {
		return nil
	}
	if match(root) {
		return root
	}
	for _, child := range root.Children {
		if found := Find(child, match); found != nil {
			return found
		}
	}
	return nil
}
