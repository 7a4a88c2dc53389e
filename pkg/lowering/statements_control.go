package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

// classicForSeparators delimit the init, condition and update segments.
var classicForSeparators = map[string]bool{"(": true, ";": true, ")": true}

// lowerClassicFor lowers `for (init; cond; update) body`. Any segment left
// empty between two separators becomes an EmptyExpression.
func lowerClassicFor(s *session, node *cst.Node) (ast.Statement, error) {
	var (
		segments []ast.Expression
		capture  bool
		bodyNode *cst.Node
		closed   bool
	)
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if closed {
			if !child.IsToken() && bodyNode == nil {
				bodyNode = child
			}
			continue
		}
		if child.IsToken() {
			separator := classicForSeparators[child.Text]
			if capture && separator {
				segments = append(segments, stamped(s, ast.NewEmptyExpression(), child.Span))
			}
			capture = separator
			if child.Text == ")" {
				closed = true
			}
			continue
		}
		if capture {
			expr, err := s.Expression(child)
			if err != nil {
				return nil, err
			}
			segments = append(segments, expr)
			capture = false
		}
	}
	if len(segments) != 3 {
		return nil, fatal(node, "for: expected 3 loop segments, found %d", len(segments))
	}
	if bodyNode == nil {
		return nil, fatal(node, "for: missing body")
	}
	body, err := s.Statement(bodyNode)
	if err != nil {
		return nil, err
	}
	dummy := ast.ForLoopDummy()
	s.stamp(dummy.Type, node.Span)
	s.stamp(dummy, node.Span)
	collection := stamped(s, ast.NewClosureListExpression(segments), node.Span)
	return stamped(s, ast.NewForStatement(dummy, collection, body), node.Span), nil
}

func lowerForIn(s *session, node *cst.Node) (ast.Statement, error) {
	return s.forEach(node, false)
}

func lowerForColon(s *session, node *cst.Node) (ast.Statement, error) {
	return s.forEach(node, true)
}

// forEach lowers `for (T x in coll)` and `for (T x : coll)`. The colon form
// must declare the variable type.
func (s *session) forEach(node *cst.Node, typeRequired bool) (ast.Statement, error) {
	typeNode := firstTypeNode(node)
	nameNode := identifierChild(node, "name")
	if nameNode == nil {
		return nil, fatal(node, "for: missing loop variable")
	}
	if typeRequired && typeNode == nil {
		return nil, malformed(ErrMissingType, node, "for: loop variable %s requires a declared type", nameNode.Text)
	}
	var rest []*cst.Node
	for _, child := range node.NamedChildren() {
		if child != typeNode {
			rest = append(rest, child)
		}
	}
	collectionNode := node.ChildByField("collection")
	bodyNode := node.ChildByField("body")
	if collectionNode == nil && len(rest) > 0 {
		collectionNode = rest[0]
	}
	if bodyNode == nil && len(rest) > 1 {
		bodyNode = rest[len(rest)-1]
	}
	if collectionNode == nil || bodyNode == nil {
		return nil, fatal(node, "for: expected collection and body")
	}
	typ, err := s.TypeDeclaration(typeNode)
	if err != nil {
		return nil, err
	}
	if typeNode == nil {
		s.stamp(typ, nameNode.Span)
	}
	param := stamped(s, ast.NewParameter(typ, nameNode.Text), spanOf(typeNode, nameNode))
	collection, err := s.Expression(collectionNode)
	if err != nil {
		return nil, err
	}
	body, err := s.Statement(bodyNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewForStatement(param, collection, body), node.Span), nil
}

// lowerSwitch keeps each case's statements in its own block; fall-through
// is left to later phases.
func lowerSwitch(s *session, node *cst.Node) (ast.Statement, error) {
	subjectNode, err := requireNamed(node, "subject", 0, "subject")
	if err != nil {
		return nil, err
	}
	subject, err := s.Expression(subjectNode)
	if err != nil {
		return nil, err
	}
	var (
		cases        []*ast.CaseStatement
		defaultToken *cst.Node
		defaults     []ast.Statement
		defaultNodes []*cst.Node
	)
	for _, child := range node.Children {
		if child == nil || child == subjectNode {
			continue
		}
		switch {
		case child.Kind == cst.KindCase:
			c, err := s.caseStatement(child)
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		case child.IsToken():
			if child.Text == "default" {
				defaultToken = child
			}
		case defaultToken != nil:
			stmt, err := s.Statement(child)
			if err != nil {
				return nil, err
			}
			defaults = append(defaults, stmt)
			defaultNodes = append(defaultNodes, child)
		default:
			return nil, fatal(child, "switch: unexpected %s", child.Kind)
		}
	}
	var fallback ast.Statement
	if defaultToken != nil {
		span := spanOf(append([]*cst.Node{defaultToken}, defaultNodes...)...)
		fallback = stamped(s, ast.NewBlockStatement(defaults), span)
	} else {
		fallback = stamped(s, ast.NewEmptyStatement(), node.Span)
	}
	return stamped(s, ast.NewSwitchStatement(subject, cases, fallback), node.Span), nil
}

// caseStatement is located at its `case` keyword.
func (s *session) caseStatement(node *cst.Node) (*ast.CaseStatement, error) {
	named := node.NamedChildren()
	if len(named) == 0 {
		return nil, fatal(node, "case: missing label expression")
	}
	label, err := s.Expression(named[0])
	if err != nil {
		return nil, err
	}
	statements := make([]ast.Statement, 0, len(named)-1)
	for _, child := range named[1:] {
		stmt, err := s.Statement(child)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	codeSpan := spanOf(named[1:]...)
	if codeSpan == (ast.Span{}) {
		codeSpan = node.Span
	}
	code := stamped(s, ast.NewBlockStatement(statements), codeSpan)
	keyword := node.FindToken("case")
	if keyword == nil {
		keyword = node
	}
	return stamped(s, ast.NewCaseStatement(label, code), keyword.Span), nil
}

// lowerTry expands `catch (A | B e)` into one catch per type sharing the
// variable name and body. A catch naming no type catches Object.
func lowerTry(s *session, node *cst.Node) (ast.Statement, error) {
	bodyNode := node.ChildByField("body")
	if bodyNode == nil {
		bodyNode = node.FirstOfKind(cst.KindBlock)
	}
	if bodyNode == nil {
		return nil, fatal(node, "try: missing body")
	}
	body, err := s.Statement(bodyNode)
	if err != nil {
		return nil, err
	}
	var catches []*ast.CatchStatement
	for _, child := range node.Children {
		if child == nil || child.Kind != cst.KindCatch {
			continue
		}
		expanded, err := s.catchStatements(child)
		if err != nil {
			return nil, err
		}
		catches = append(catches, expanded...)
	}
	var finally ast.Statement
	finallyNode := node.ChildByField("finally")
	if finallyNode == nil {
		finallyNode = namedAfterToken(node, "finally")
	}
	if finallyNode != nil {
		inner, err := s.Statement(finallyNode)
		if err != nil {
			return nil, err
		}
		finally = stamped(s, ast.NewBlockStatement([]ast.Statement{inner}), finallyNode.Span)
	} else {
		finally = stamped(s, ast.NewEmptyStatement(), node.Span)
	}
	return stamped(s, ast.NewTryCatchStatement(body, catches, finally), node.Span), nil
}

func (s *session) catchStatements(node *cst.Node) ([]*ast.CatchStatement, error) {
	nameNode := identifierChild(node, "name")
	if nameNode == nil {
		return nil, fatal(node, "catch: missing variable")
	}
	bodyNode := node.ChildByField("body")
	if bodyNode == nil {
		bodyNode = node.FirstOfKind(cst.KindBlock)
	}
	if bodyNode == nil {
		return nil, fatal(node, "catch: missing body")
	}
	body, err := s.Statement(bodyNode)
	if err != nil {
		return nil, err
	}
	var typeNodes []*cst.Node
	for _, child := range node.Children {
		if child != nil && (child.Kind == cst.KindClassName || child.Kind == cst.KindGenericClassName) {
			typeNodes = append(typeNodes, child)
		}
	}
	if len(typeNodes) == 0 {
		typ := stamped(s, ast.ObjectType(), nameNode.Span)
		param := stamped(s, ast.NewParameter(typ, nameNode.Text), nameNode.Span)
		return []*ast.CatchStatement{stamped(s, ast.NewCatchStatement(param, body), node.Span)}, nil
	}
	catches := make([]*ast.CatchStatement, 0, len(typeNodes))
	for _, typeNode := range typeNodes {
		typ, err := s.ClassType(typeNode)
		if err != nil {
			return nil, err
		}
		param := stamped(s, ast.NewParameter(typ, nameNode.Text), spanOf(typeNode, nameNode))
		catches = append(catches, stamped(s, ast.NewCatchStatement(param, body), node.Span))
	}
	return catches, nil
}

// lowerCommand folds a command chain such as `foo a, b bar c baz` into
// calls and property reads: each name with arguments calls the result so
// far, and a trailing bare name reads a property of it.
func lowerCommand(s *session, node *cst.Node) (ast.Statement, error) {
	var parts []*cst.Node
	for _, child := range node.Children {
		if child != nil && child.Kind != cst.KindToken {
			parts = append(parts, child)
		}
	}
	if len(parts) == 0 {
		return nil, malformed(ErrEmptyCommand, node, "command: no command segments")
	}
	var expr ast.Expression
	start := parts[0]
	for i := 0; i < len(parts); i += 2 {
		name := parts[i]
		var argsNode *cst.Node
		if i+1 < len(parts) {
			argsNode = parts[i+1]
		}
		span := spanOf(start, name, argsNode)
		if argsNode == nil {
			if expr == nil {
				segments, err := pathSegments(name)
				if err != nil {
					return nil, err
				}
				value, err := resolveValue(s.stamp, segments)
				if err != nil {
					return nil, err
				}
				expr = value
				continue
			}
			if name.Kind != cst.KindIdentifier {
				return nil, fatal(name, "command: expected a property name, found %s", name.Kind)
			}
			key := stamped(s, ast.NewStringLiteral(name.Text), name.Span)
			expr = stamped(s, ast.NewPropertyExpression(expr, key, false, false), span)
			continue
		}
		if argsNode.Kind != cst.KindArgumentList {
			return nil, fatal(argsNode, "command: expected arguments, found %s", argsNode.Kind)
		}
		args, err := s.arguments(argsNode, node)
		if err != nil {
			return nil, err
		}
		switch {
		case expr != nil && name.Kind == cst.KindIdentifier:
			expr = stamped(s, ast.NewMethodCallExpression(expr, name.Text, args, false), span)
		case expr == nil:
			segments, err := pathSegments(name)
			if err != nil {
				return nil, err
			}
			target, err := resolveForCall(s.stamp, segments)
			if err != nil {
				return nil, err
			}
			call := ast.NewMethodCallExpression(target.Receiver, target.Method.Name, args, target.ImplicitThis)
			expr = stamped(s, call, span)
		default:
			return nil, fatal(name, "command: expected a method name, found %s", name.Kind)
		}
	}
	if expr == nil {
		return nil, fatal(node, "command: folding produced no expression")
	}
	return stamped(s, ast.NewExpressionStatement(expr), node.Span), nil
}
