package lowering

import (
	"strings"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func lowerParen(s *session, node *cst.Node) (ast.Expression, error) {
	inner, err := requireNamed(node, "expression", 0, "parenthesized expression")
	if err != nil {
		return nil, err
	}
	return s.Expression(inner)
}

func lowerList(s *session, node *cst.Node) (ast.Expression, error) {
	named := node.NamedChildren()
	elements := make([]ast.Expression, 0, len(named))
	for _, child := range named {
		expr, err := s.Expression(child)
		if err != nil {
			return nil, err
		}
		elements = append(elements, expr)
	}
	return stamped(s, ast.NewListExpression(elements), node.Span), nil
}

func lowerMap(s *session, node *cst.Node) (ast.Expression, error) {
	named := node.NamedChildren()
	entries := make([]*ast.MapEntryExpression, 0, len(named))
	for _, child := range named {
		if child.Kind != cst.KindMapEntry {
			return nil, fatal(child, "map: expected MapEntry, found %s", child.Kind)
		}
		entry, err := s.mapEntry(child)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return stamped(s, ast.NewMapExpression(entries), node.Span), nil
}

func lowerMapEntryExpression(s *session, node *cst.Node) (ast.Expression, error) {
	return s.mapEntry(node)
}

// mapEntry lowers `key: value`. A bare identifier key is sugar for the
// string of the same name; any other key is lowered as an expression.
func (s *session) mapEntry(node *cst.Node) (*ast.MapEntryExpression, error) {
	var keyNode, valueNode *cst.Node
	for _, child := range node.Children {
		if child == nil || (child.Kind == cst.KindToken) {
			continue
		}
		switch {
		case keyNode == nil:
			keyNode = child
		case valueNode == nil:
			valueNode = child
		default:
			return nil, fatal(child, "map entry: unexpected %s", child.Kind)
		}
	}
	if keyNode == nil || valueNode == nil {
		return nil, fatal(node, "map entry: expected key and value")
	}
	var key ast.Expression
	if keyNode.Kind == cst.KindIdentifier {
		key = stamped(s, ast.NewStringLiteral(keyNode.Text), keyNode.Span)
	} else {
		expr, err := s.Expression(keyNode)
		if err != nil {
			return nil, err
		}
		key = expr
	}
	value, err := s.Expression(valueNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewMapEntryExpression(key, value), node.Span), nil
}

func lowerClosureExpression(s *session, node *cst.Node) (ast.Expression, error) {
	var params *ast.ParameterList
	if paramsNode := node.ChildByField("parameters"); paramsNode != nil || node.FirstOfKind(cst.KindParameterList) != nil {
		if paramsNode == nil {
			paramsNode = node.FirstOfKind(cst.KindParameterList)
		}
		list, err := s.helpers.ParameterList(s, paramsNode)
		if err != nil {
			return nil, err
		}
		if list == nil {
			list = stamped(s, ast.NewParameterList(nil), paramsNode.Span)
		}
		params = list
	}
	bodyNode := node.ChildByField("body")
	if bodyNode == nil {
		bodyNode = node.FirstOfKind(cst.KindBlock)
	}
	body, err := s.block(bodyNode, node)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewClosureExpression(params, body), node.Span), nil
}

// lowerBinary handles every infix form except assignment. The operator run
// starts at the second child; its span becomes the node's span.
func lowerBinary(s *session, node *cst.Node) (ast.Expression, error) {
	leftNode := node.Child(0)
	if leftNode == nil || leftNode.IsToken() {
		return nil, fatal(node, "binary: missing left operand")
	}
	op, next, err := ResolveOperator(node.Children, 1)
	if err != nil {
		return nil, err
	}
	rightNode := node.Child(next)
	if rightNode == nil || rightNode.IsToken() {
		return nil, fatal(node, "binary: missing right operand after %q", op.Text)
	}
	left, err := s.Expression(leftNode)
	if err != nil {
		return nil, err
	}
	switch op.Kind {
	case ast.OperatorCast:
		typ, err := s.ClassType(rightNode)
		if err != nil {
			return nil, err
		}
		return stamped(s, ast.NewCastExpression(typ, left, true), op.Span), nil
	case ast.OperatorInstanceof:
		typ, err := s.ClassType(rightNode)
		if err != nil {
			return nil, err
		}
		class := stamped(s, ast.NewClassExpression(typ), rightNode.Span)
		return stamped(s, ast.NewBinaryExpression(left, op, class), op.Span), nil
	}
	right, err := s.Expression(rightNode)
	if err != nil {
		return nil, err
	}
	if op.Kind == ast.OperatorRange {
		inclusive := !strings.HasSuffix(op.Text, "<")
		return stamped(s, ast.NewRangeExpression(left, right, inclusive), op.Span), nil
	}
	return stamped(s, ast.NewBinaryExpression(left, op, right), op.Span), nil
}

func lowerAssignment(s *session, node *cst.Node) (ast.Expression, error) {
	leftNode := node.Child(0)
	if leftNode == nil || leftNode.IsToken() {
		return nil, fatal(node, "assignment: missing target")
	}
	op, next, err := ResolveOperator(node.Children, 1)
	if err != nil {
		return nil, err
	}
	if op.Kind != ast.OperatorAssign {
		return nil, fatal(node, "assignment: %q is not an assignment operator", op.Text)
	}
	rightNode := node.Child(next)
	if rightNode == nil || rightNode.IsToken() {
		return nil, fatal(node, "assignment: missing value")
	}
	left, err := s.Expression(leftNode)
	if err != nil {
		return nil, err
	}
	right, err := s.Expression(rightNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewBinaryExpression(left, op, right), node.Span), nil
}

func lowerTernary(s *session, node *cst.Node) (ast.Expression, error) {
	named := node.NamedChildren()
	if len(named) != 3 {
		return nil, fatal(node, "ternary: expected 3 operands, found %d", len(named))
	}
	cond, err := s.condition(named[0])
	if err != nil {
		return nil, err
	}
	whenTrue, err := s.Expression(named[1])
	if err != nil {
		return nil, err
	}
	whenFalse, err := s.Expression(named[2])
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewTernaryExpression(cond, whenTrue, whenFalse), node.Span), nil
}

func lowerElvis(s *session, node *cst.Node) (ast.Expression, error) {
	named := node.NamedChildren()
	if len(named) != 2 {
		return nil, fatal(node, "elvis: expected 2 operands, found %d", len(named))
	}
	value, err := s.Expression(named[0])
	if err != nil {
		return nil, err
	}
	fallback, err := s.Expression(named[1])
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewElvisExpression(value, fallback), node.Span), nil
}

// condition lowers node and wraps it for truth testing.
func (s *session) condition(node *cst.Node) (*ast.BooleanExpression, error) {
	expr, err := s.Expression(node)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewBooleanExpression(expr), node.Span), nil
}

var unaryOperators = map[string]ast.UnaryOperator{
	"-": ast.UnaryMinus,
	"+": ast.UnaryPlus,
	"!": ast.UnaryNot,
	"~": ast.UnaryBitwiseNot,
}

func lowerUnary(s *session, node *cst.Node) (ast.Expression, error) {
	opNode := node.Child(0)
	if opNode == nil || !opNode.IsToken() {
		return nil, fatal(node, "unary: missing operator")
	}
	op, ok := unaryOperators[opNode.Text]
	if !ok {
		return nil, fatal(opNode, "unary: unexpected operator %q", opNode.Text)
	}
	operandNode, err := requireNamed(node, "operand", 0, "operand")
	if err != nil {
		return nil, err
	}
	operand, err := s.Expression(operandNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewUnaryExpression(op, operand), opNode.Span), nil
}

func lowerPrefix(s *session, node *cst.Node) (ast.Expression, error) {
	opNode := node.Child(0)
	if opNode == nil || !opNode.IsToken() {
		return nil, fatal(node, "prefix: missing operator")
	}
	op, err := stepOperator(opNode)
	if err != nil {
		return nil, err
	}
	operandNode, err := requireNamed(node, "operand", 0, "operand")
	if err != nil {
		return nil, err
	}
	operand, err := s.Expression(operandNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewPrefixExpression(op, operand), op.Span), nil
}

func lowerPostfix(s *session, node *cst.Node) (ast.Expression, error) {
	opNode := node.Child(node.ChildCount() - 1)
	if opNode == nil || !opNode.IsToken() {
		return nil, fatal(node, "postfix: missing operator")
	}
	op, err := stepOperator(opNode)
	if err != nil {
		return nil, err
	}
	operandNode, err := requireNamed(node, "operand", 0, "operand")
	if err != nil {
		return nil, err
	}
	operand, err := s.Expression(operandNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewPostfixExpression(operand, op), op.Span), nil
}

func stepOperator(node *cst.Node) (ast.Token, error) {
	op, err := operatorToken(node)
	if err != nil {
		return ast.Token{}, err
	}
	if op.Kind != ast.OperatorIncrement && op.Kind != ast.OperatorDecrement {
		return ast.Token{}, fatal(node, "expected ++ or --, found %q", op.Text)
	}
	return op, nil
}
