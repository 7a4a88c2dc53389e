package cst

import "groovy/frontend-go/pkg/ast"

// N builds a composite node.
func N(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// Leaf builds a childless node carrying text, such as a literal or variable.
func Leaf(kind Kind, text string) *Node {
	return &Node{Kind: kind, Text: text}
}

// T builds a punctuation or keyword token.
func T(text string) *Node {
	return &Node{Kind: KindToken, Text: text}
}

// Ident builds an identifier token.
func Ident(name string) *Node {
	return &Node{Kind: KindIdentifier, Text: name}
}

// Named assigns the parent-side field name and returns node.
func Named(field string, node *Node) *Node {
	if node != nil {
		node.Field = field
	}
	return node
}

// At sets an explicit span and returns node.
func At(node *Node, startLine, startCol, endLine, endCol int) *Node {
	node.Span = ast.Span{
		Start: ast.Position{Line: startLine, Column: startCol},
		End:   ast.Position{Line: endLine, Column: endCol},
	}
	return node
}

// Layout assigns spans to every node that lacks one by laying leaf text out
// left to right on line 1, one space apart. Explicit spans are kept and move
// the cursor past them. It returns root for chaining.
func Layout(root *Node) *Node {
	cursor := ast.Position{Line: 1, Column: 1}
	layoutNode(root, &cursor)
	return root
}

func layoutNode(n *Node, cursor *ast.Position) {
	if n == nil {
		return
	}
	if n.Span != (ast.Span{}) {
		if len(n.Children) > 0 {
			inner := *cursor
			if n.Span.Start.Line > 0 {
				inner = n.Span.Start
			}
			for _, child := range n.Children {
				layoutNode(child, &inner)
			}
		}
		if cursor.Before(n.Span.End) {
			*cursor = ast.Position{Line: n.Span.End.Line, Column: n.Span.End.Column + 1}
		}
		return
	}
	if len(n.Children) == 0 {
		start := *cursor
		end := ast.Position{Line: start.Line, Column: start.Column + len(n.Text)}
		n.Span = ast.Span{Start: start, End: end}
		*cursor = ast.Position{Line: end.Line, Column: end.Column + 1}
		return
	}
	var span ast.Span
	for _, child := range n.Children {
		layoutNode(child, cursor)
		if child != nil {
			span = ast.Cover(span, child.Span)
		}
	}
	n.Span = span
}
