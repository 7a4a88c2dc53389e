package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func lowerVariable(s *session, node *cst.Node) (ast.Expression, error) {
	name := leafName(node)
	if name == "" {
		return nil, fatal(node, "variable: missing name")
	}
	return stamped(s, ast.NewVariableExpression(name), node.Span), nil
}

func lowerPath(s *session, node *cst.Node) (ast.Expression, error) {
	segments, err := pathSegments(node)
	if err != nil {
		return nil, err
	}
	return resolveValue(s.stamp, segments)
}

// lowerCall handles `name args`, `a.b.c(args)` and `foo { ... }`. Without a
// parenthesized argument list and without trailing closures the node is a
// plain property read of the path.
func lowerCall(s *session, node *cst.Node) (ast.Expression, error) {
	var (
		pathNode *cst.Node
		argsNode *cst.Node
		closures []*cst.Node
	)
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch child.Kind {
		case cst.KindPath, cst.KindVariable, cst.KindIdentifier:
			if pathNode == nil {
				pathNode = child
			}
		case cst.KindArgumentList:
			argsNode = child
		case cst.KindClosure:
			closures = append(closures, child)
		}
	}
	if pathNode == nil {
		return nil, fatal(node, "call: missing callee path")
	}
	segments, err := pathSegments(pathNode)
	if err != nil {
		return nil, err
	}
	if !node.HasToken("(") && argsNode == nil && len(closures) == 0 {
		return resolveValue(s.stamp, segments)
	}
	args, err := s.arguments(argsNode, node)
	if err != nil {
		return nil, err
	}
	if len(closures) > 0 {
		merged := append([]ast.Expression(nil), args.Arguments...)
		for _, closureNode := range closures {
			closure, err := s.Expression(closureNode)
			if err != nil {
				return nil, err
			}
			merged = append(merged, closure)
		}
		args = stamped(s, ast.NewArgumentListExpression(merged), spanOf(append([]*cst.Node{argsNode}, closures...)...))
	}
	target, err := resolveForCall(s.stamp, segments)
	if err != nil {
		return nil, err
	}
	call := ast.NewMethodCallExpression(target.Receiver, target.Method.Name, args, target.ImplicitThis)
	return stamped(s, call, node.Span), nil
}

// memberParts splits `object nav name ...` where nav is one of the member
// access tokens.
func memberParts(node *cst.Node) (object, nav, name *cst.Node, err error) {
	object = node.ChildByField("object")
	if object == nil {
		object = node.Child(0)
	}
	if object == nil || object.IsToken() {
		return nil, nil, nil, fatal(node, "%s: missing receiver", node.Kind)
	}
	for _, child := range node.Children {
		if child == nil || !child.IsToken() {
			continue
		}
		switch {
		case nav == nil && child.Kind == cst.KindToken:
			switch child.Text {
			case ".", "?.", "*.", ".@":
				nav = child
			}
		case nav != nil && child.Kind == cst.KindIdentifier:
			if name == nil {
				name = child
			}
		}
	}
	if named := node.ChildByField("name"); named != nil {
		name = named
	}
	if nav == nil {
		return nil, nil, nil, fatal(node, "%s: missing navigation token", node.Kind)
	}
	if name == nil {
		return nil, nil, nil, fatal(node, "%s: missing member name", node.Kind)
	}
	return object, nav, name, nil
}

func lowerMethodCall(s *session, node *cst.Node) (ast.Expression, error) {
	objectNode, nav, name, err := memberParts(node)
	if err != nil {
		return nil, err
	}
	if nav.Text == ".@" {
		return nil, fatal(nav, "method call: attribute navigation cannot be called")
	}
	object, err := s.Expression(objectNode)
	if err != nil {
		return nil, err
	}
	args, err := s.arguments(node.FirstOfKind(cst.KindArgumentList), node)
	if err != nil {
		return nil, err
	}
	call := ast.NewMethodCallExpression(object, leafName(name), args, false)
	call.Safe = nav.Text == "?."
	call.SpreadSafe = nav.Text == "*."
	return stamped(s, call, node.Span), nil
}

func lowerFieldAccess(s *session, node *cst.Node) (ast.Expression, error) {
	objectNode, nav, name, err := memberParts(node)
	if err != nil {
		return nil, err
	}
	object, err := s.Expression(objectNode)
	if err != nil {
		return nil, err
	}
	key := stamped(s, ast.NewStringLiteral(leafName(name)), name.Span)
	if nav.Text == ".@" {
		return stamped(s, ast.NewAttributeExpression(object, key), node.Span), nil
	}
	spread := nav.Text == "*."
	safe := spread || nav.Text == "?."
	return stamped(s, ast.NewPropertyExpression(object, key, safe, spread), node.Span), nil
}

func lowerClassExpression(s *session, node *cst.Node) (ast.Expression, error) {
	typ, err := s.ClassType(node)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewClassExpression(typ), node.Span), nil
}

// ClassType lowers a type reference: a dotted class name, optionally with
// generic arguments and array brackets.
func (s *session) ClassType(node *cst.Node) (*ast.ClassType, error) {
	if node == nil {
		return nil, fatal(nil, "type: missing type reference")
	}
	switch node.Kind {
	case cst.KindClassName, cst.KindPath:
		segments, err := pathSegments(node)
		if err != nil {
			return nil, err
		}
		return stamped(s, ast.NewClassType(joinSegments(segments)), node.Span), nil
	case cst.KindIdentifier, cst.KindVariable:
		return stamped(s, ast.NewClassType(leafName(node)), node.Span), nil
	case cst.KindGenericClassName:
		nameNode := node.ChildByField("name")
		if nameNode == nil {
			nameNode = node.FirstOfKind(cst.KindClassName)
		}
		if nameNode == nil {
			nameNode = node.FirstOfKind(cst.KindIdentifier)
		}
		base, err := s.ClassType(nameNode)
		if err != nil {
			return nil, err
		}
		typ := ast.NewClassType(base.Name)
		for _, child := range node.Children {
			if child != nil && child.IsToken() && child.Text == "[" {
				typ.Dimensions++
			}
		}
		if genericsNode := node.FirstOfKind(cst.KindGenericList); genericsNode != nil {
			generics, err := s.helpers.GenericList(s, genericsNode)
			if err != nil {
				return nil, err
			}
			typ.Generics = generics
		}
		return stamped(s, typ, node.Span), nil
	case cst.KindTypeDeclaration:
		return s.TypeDeclaration(node)
	}
	return nil, unsupported(node, "type")
}

func lowerDeclaration(s *session, node *cst.Node) (ast.Expression, error) {
	decl, err := s.helpers.Declaration(s, node)
	if err != nil {
		return nil, err
	}
	if decl == nil {
		return nil, fatal(node, "declaration: helper returned nothing")
	}
	return decl, nil
}

func lowerNewInstance(s *session, node *cst.Node) (ast.Expression, error) {
	typeNode := firstTypeNode(node)
	if typeNode == nil {
		return nil, fatal(node, "new: missing type")
	}
	typ, err := s.ClassType(typeNode)
	if err != nil {
		return nil, err
	}
	args, err := s.arguments(node.FirstOfKind(cst.KindArgumentList), node)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewConstructorCallExpression(typ, args), node.Span), nil
}

// lowerNewArray handles `new T[a][b]`; every non-type child is a dimension.
func lowerNewArray(s *session, node *cst.Node) (ast.Expression, error) {
	typeNode := firstTypeNode(node)
	if typeNode == nil {
		return nil, fatal(node, "new array: missing element type")
	}
	typ, err := s.ClassType(typeNode)
	if err != nil {
		return nil, err
	}
	var sizes []ast.Expression
	for _, child := range node.NamedChildren() {
		if child == typeNode {
			continue
		}
		size, err := s.Expression(child)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	if len(sizes) == 0 {
		return nil, fatal(node, "new array: missing dimension")
	}
	return stamped(s, ast.NewArrayExpression(typ, sizes), node.Span), nil
}
