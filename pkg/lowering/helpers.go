package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// namedChild returns the i-th non-token child, preferring an explicit field.
func namedChild(node *cst.Node, field string, i int) *cst.Node {
	if field != "" {
		if child := node.ChildByField(field); child != nil {
			return child
		}
	}
	named := node.NamedChildren()
	if i < 0 || i >= len(named) {
		return nil
	}
	return named[i]
}

func requireNamed(node *cst.Node, field string, i int, what string) (*cst.Node, error) {
	child := namedChild(node, field, i)
	if child == nil {
		return nil, fatal(node, "%s: missing %s", node.Kind, what)
	}
	return child, nil
}

// namedAfterToken returns the first non-token child following the token with
// the given text.
func namedAfterToken(node *cst.Node, text string) *cst.Node {
	seen := false
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if child.IsToken() {
			if child.Text == text {
				seen = true
			}
			continue
		}
		if seen {
			return child
		}
	}
	return nil
}

func isTypeNode(node *cst.Node) bool {
	if node == nil {
		return false
	}
	switch node.Kind {
	case cst.KindTypeDeclaration, cst.KindGenericClassName, cst.KindClassName:
		return true
	}
	return false
}

func firstTypeNode(node *cst.Node) *cst.Node {
	if child := node.ChildByField("type"); child != nil {
		return child
	}
	for _, child := range node.Children {
		if isTypeNode(child) {
			return child
		}
	}
	return nil
}

// identifierChild returns the first direct Identifier token, optionally by field.
func identifierChild(node *cst.Node, field string) *cst.Node {
	if field != "" {
		if child := node.ChildByField(field); child != nil {
			return child
		}
	}
	return node.FirstOfKind(cst.KindIdentifier)
}

func spanOf(nodes ...*cst.Node) ast.Span {
	var span ast.Span
	for _, node := range nodes {
		if node != nil {
			span = ast.Cover(span, node.Span)
		}
	}
	return span
}
