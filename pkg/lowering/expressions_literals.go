package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func lowerInteger(s *session, node *cst.Node) (ast.Expression, error) {
	lit, err := DecodeInteger(leafName(node))
	if err != nil {
		return nil, locate(node, err)
	}
	return stamped(s, lit, node.Span), nil
}

func lowerDecimal(s *session, node *cst.Node) (ast.Expression, error) {
	lit, err := DecodeDecimal(leafName(node))
	if err != nil {
		return nil, locate(node, err)
	}
	return stamped(s, lit, node.Span), nil
}

func lowerString(s *session, node *cst.Node) (ast.Expression, error) {
	value, err := DecodeString(node.Content())
	if err != nil {
		return nil, locate(node, err)
	}
	return stamped(s, ast.NewStringLiteral(value), node.Span), nil
}

func lowerBool(s *session, node *cst.Node) (ast.Expression, error) {
	switch text := node.Content(); text {
	case "true", "false":
		return stamped(s, ast.NewBooleanLiteral(text == "true"), node.Span), nil
	default:
		return nil, fatal(node, "bool: unexpected literal %q", text)
	}
}

func lowerNull(s *session, node *cst.Node) (ast.Expression, error) {
	return stamped(s, ast.NewNullLiteral(), node.Span), nil
}

func lowerGStringPath(s *session, node *cst.Node) (ast.Expression, error) {
	segments, err := gstringPathSegments(node)
	if err != nil {
		return nil, err
	}
	return resolveValue(s.stamp, segments)
}

// lowerGString splits an interpolated string into its constant fragments and
// embedded values. Fragments keep their raw text minus the boundary symbols:
// the opening quote and trailing `$` of the start token, the trailing `$` of
// middle parts, and the closing quote of the end token. A `${}` placeholder
// yields a null value.
func lowerGString(s *session, node *cst.Node) (ast.Expression, error) {
	var (
		fragments []*ast.StringLiteral
		values    []ast.Expression
	)
	children := node.Children
	for i, child := range children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case cst.KindGStringStart:
			text := child.Text
			fragment := ""
			if len(text) > 2 {
				fragment = text[1 : len(text)-1]
			}
			fragments = append(fragments, stamped(s, ast.NewStringLiteral(fragment), child.Span))
		case cst.KindGStringPart, cst.KindGStringEnd:
			text := child.Text
			fragment := ""
			if len(text) > 1 {
				fragment = text[:len(text)-1]
			}
			fragments = append(fragments, stamped(s, ast.NewStringLiteral(fragment), child.Span))
		case cst.KindGStringPath:
			value, err := s.Expression(child)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		case cst.KindToken:
			next := nextNonNil(children, i+1)
			if child.Text == "{" && next != nil && next.IsToken() && next.Text == "}" {
				values = append(values, stamped(s, ast.NewNullLiteral(), spanOf(child, next)))
			}
		default:
			value, err := s.Expression(child)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
	}
	if len(fragments) != len(values)+1 {
		return nil, fatal(node, "gstring: %d fragments for %d values", len(fragments), len(values))
	}
	return stamped(s, ast.NewGStringExpression(node.Content(), fragments, values), node.Span), nil
}

func nextNonNil(nodes []*cst.Node, from int) *cst.Node {
	for i := from; i < len(nodes); i++ {
		if nodes[i] != nil {
			return nodes[i]
		}
	}
	return nil
}

// annotationValue accepts the constant-like shapes allowed inside annotations.
func (s *session) annotationValue(node *cst.Node) (ast.Expression, error) {
	if node == nil {
		return nil, malformed(ErrUnsupportedInAnnotation, nil, "annotation: missing value")
	}
	if err := s.enter(node); err != nil {
		s.leave()
		return nil, err
	}
	defer s.leave()
	switch node.Kind {
	case cst.KindAnnotationArray:
		named := node.NamedChildren()
		elements := make([]ast.Expression, 0, len(named))
		for _, child := range named {
			element, err := s.annotationValue(child)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		return stamped(s, ast.NewListExpression(elements), node.Span), nil
	case cst.KindAnnotationBool:
		return lowerBool(s, node)
	case cst.KindAnnotationInteger:
		return lowerInteger(s, node)
	case cst.KindAnnotationDecimal:
		return lowerDecimal(s, node)
	case cst.KindAnnotationString:
		return lowerString(s, node)
	case cst.KindAnnotationNull:
		return lowerNull(s, node)
	case cst.KindAnnotationClass:
		typeNode := firstTypeNode(node)
		if typeNode == nil {
			typeNode = node.FirstOfKind(cst.KindIdentifier)
		}
		typ, err := s.ClassType(typeNode)
		if err != nil {
			return nil, err
		}
		return stamped(s, ast.NewClassExpression(typ), node.Span), nil
	case cst.KindAnnotationPath:
		segments, err := pathSegments(node)
		if err != nil {
			return nil, err
		}
		return resolveValue(s.stamp, segments)
	}
	return nil, malformed(ErrUnsupportedInAnnotation, node, "expression %q is prohibited inside annotations", node.Content())
}
