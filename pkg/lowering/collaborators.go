package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// Helpers lower the sub-trees the engines delegate: parameter lists, type
// declarations, generic arguments, declarations and call arguments. Each
// method receives the Engine of the call in progress so nested expressions
// share its depth budget and stamper.
type Helpers interface {
	ParameterList(e Engine, node *cst.Node) (*ast.ParameterList, error)
	TypeDeclaration(e Engine, node *cst.Node) (*ast.ClassType, error)
	GenericList(e Engine, node *cst.Node) ([]*ast.GenericsType, error)
	Declaration(e Engine, node *cst.Node) (ast.Expression, error)
	ArgumentList(e Engine, node *cst.Node) (*ast.ArgumentListExpression, error)
}

// DefaultHelpers implements Helpers with Groovy's conventions.
type DefaultHelpers struct{}

var declarationModifiers = map[string]bool{
	"final": true, "static": true, "public": true, "private": true, "protected": true,
	"abstract": true, "synchronized": true, "transient": true, "volatile": true,
}

func (DefaultHelpers) ParameterList(e Engine, node *cst.Node) (*ast.ParameterList, error) {
	params := make([]*ast.Parameter, 0)
	for _, child := range node.NamedChildren() {
		if child.Kind != cst.KindParameter {
			return nil, fatal(child, "parameters: expected Parameter, found %s", child.Kind)
		}
		nameNode := identifierChild(child, "name")
		if nameNode == nil {
			return nil, fatal(child, "parameter: missing name")
		}
		typ, err := e.TypeDeclaration(firstTypeNode(child))
		if err != nil {
			return nil, err
		}
		if typ.Span() == (ast.Span{}) {
			e.Stamp(typ, nameNode.Span)
		}
		param := ast.NewParameter(typ, nameNode.Text)
		if defaultNode := namedChild(child, "default", -1); defaultNode != nil || child.HasToken("=") {
			if defaultNode == nil {
				defaultNode = namedAfterToken(child, "=")
			}
			if defaultNode == nil {
				return nil, fatal(child, "parameter %s: missing default value", nameNode.Text)
			}
			value, err := e.Expression(defaultNode)
			if err != nil {
				return nil, err
			}
			param.Default = value
		}
		e.Stamp(param, child.Span)
		params = append(params, param)
	}
	list := ast.NewParameterList(params)
	e.Stamp(list, node.Span)
	return list, nil
}

// TypeDeclaration resolves `def`, an omitted type (nil node) or a class type.
func (DefaultHelpers) TypeDeclaration(e Engine, node *cst.Node) (*ast.ClassType, error) {
	if node == nil {
		return ast.DynamicType(), nil
	}
	if node.Kind == cst.KindTypeDeclaration {
		for _, child := range node.Children {
			if isTypeNode(child) || (child != nil && child.Kind == cst.KindIdentifier) {
				return e.ClassType(child)
			}
		}
		typ := ast.DynamicType()
		e.Stamp(typ, node.Span)
		return typ, nil
	}
	if node.IsToken() && node.Text == "def" {
		typ := ast.DynamicType()
		e.Stamp(typ, node.Span)
		return typ, nil
	}
	return e.ClassType(node)
}

func (DefaultHelpers) GenericList(e Engine, node *cst.Node) ([]*ast.GenericsType, error) {
	var generics []*ast.GenericsType
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch {
		case child.IsToken() && child.Text == "?":
			wildcard := ast.NewWildcardGenericsType()
			e.Stamp(wildcard, child.Span)
			generics = append(generics, wildcard)
		case isTypeNode(child):
			typ, err := e.ClassType(child)
			if err != nil {
				return nil, err
			}
			g := ast.NewGenericsType(typ)
			e.Stamp(g, child.Span)
			generics = append(generics, g)
		case child.IsToken():
		default:
			return nil, fatal(child, "generics: unexpected %s", child.Kind)
		}
	}
	return generics, nil
}

// Declaration lowers `[modifiers] (def | T) name [= value]`.
func (DefaultHelpers) Declaration(e Engine, node *cst.Node) (ast.Expression, error) {
	var modifiers []string
	var typeNode *cst.Node
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		switch {
		case child.IsToken() && declarationModifiers[child.Text]:
			modifiers = append(modifiers, child.Text)
		case child.IsToken() && child.Text == "def" && typeNode == nil:
			typeNode = child
		case isTypeNode(child) && typeNode == nil:
			typeNode = child
		}
	}
	nameNode := identifierChild(node, "name")
	if nameNode == nil {
		return nil, fatal(node, "declaration: missing variable name")
	}
	typ, err := e.TypeDeclaration(typeNode)
	if err != nil {
		return nil, err
	}
	if typ.Span() == (ast.Span{}) {
		e.Stamp(typ, nameNode.Span)
	}
	variable := ast.NewTypedVariableExpression(nameNode.Text, typ)
	e.Stamp(variable, nameNode.Span)
	var value ast.Expression
	if valueNode := namedAfterToken(node, "="); valueNode != nil {
		value, err = e.Expression(valueNode)
		if err != nil {
			return nil, err
		}
	} else {
		empty := ast.NewEmptyExpression()
		e.Stamp(empty, nameNode.Span)
		value = empty
	}
	decl := ast.NewDeclarationExpression(modifiers, variable, value)
	e.Stamp(decl, node.Span)
	return decl, nil
}

// ArgumentList lowers call arguments. Named arguments (`key: value`) are
// gathered into a map passed as the first argument.
func (DefaultHelpers) ArgumentList(e Engine, node *cst.Node) (*ast.ArgumentListExpression, error) {
	var (
		named      []*ast.MapEntryExpression
		namedNodes []*cst.Node
		positional []ast.Expression
	)
	for _, child := range node.NamedChildren() {
		expr, err := e.Expression(child)
		if err != nil {
			return nil, err
		}
		if entry, ok := expr.(*ast.MapEntryExpression); ok {
			named = append(named, entry)
			namedNodes = append(namedNodes, child)
			continue
		}
		positional = append(positional, expr)
	}
	args := make([]ast.Expression, 0, len(positional)+1)
	if len(named) > 0 {
		m := ast.NewMapExpression(named)
		e.Stamp(m, spanOf(namedNodes...))
		args = append(args, m)
	}
	args = append(args, positional...)
	list := ast.NewArgumentListExpression(args)
	e.Stamp(list, node.Span)
	return list, nil
}
