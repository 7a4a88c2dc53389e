package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func lowerBlockStatement(s *session, node *cst.Node) (ast.Statement, error) {
	return s.block(node, node)
}

// block lowers a Block node. A nil node is an empty block spanning owner,
// the construct whose body is missing.
func (s *session) block(node, owner *cst.Node) (*ast.BlockStatement, error) {
	if node == nil {
		if owner == nil {
			return nil, fatal(nil, "block: missing body without an owner")
		}
		return stamped(s, ast.NewBlockStatement(nil), owner.Span), nil
	}
	if node.Kind != cst.KindBlock {
		return nil, fatal(node, "block: expected Block, found %s", node.Kind)
	}
	named := node.NamedChildren()
	statements := make([]ast.Statement, 0, len(named))
	for _, child := range named {
		stmt, err := s.Statement(child)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return stamped(s, ast.NewBlockStatement(statements), node.Span), nil
}

// lowerStatementBlock unwraps the body of a control statement, which is
// either a braced block or a single statement.
func lowerStatementBlock(s *session, node *cst.Node) (ast.Statement, error) {
	inner, err := requireNamed(node, "", 0, "statement")
	if err != nil {
		return nil, err
	}
	return s.Statement(inner)
}

func lowerExpressionStatement(s *session, node *cst.Node) (ast.Statement, error) {
	inner, err := requireNamed(node, "expression", 0, "expression")
	if err != nil {
		return nil, err
	}
	expr, err := s.Expression(inner)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewExpressionStatement(expr), node.Span), nil
}

func lowerExpressionAsStatement(s *session, node *cst.Node) (ast.Statement, error) {
	expr, err := s.Expression(node)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewExpressionStatement(expr), node.Span), nil
}

func lowerIf(s *session, node *cst.Node) (ast.Statement, error) {
	condNode, err := requireNamed(node, "condition", 0, "condition")
	if err != nil {
		return nil, err
	}
	thenNode, err := requireNamed(node, "then", 1, "then branch")
	if err != nil {
		return nil, err
	}
	cond, err := s.condition(condNode)
	if err != nil {
		return nil, err
	}
	then, err := s.Statement(thenNode)
	if err != nil {
		return nil, err
	}
	var otherwise ast.Statement
	if elseNode := namedChild(node, "else", 2); elseNode != nil {
		otherwise, err = s.Statement(elseNode)
		if err != nil {
			return nil, err
		}
	} else {
		otherwise = stamped(s, ast.NewEmptyStatement(), node.Span)
	}
	return stamped(s, ast.NewIfStatement(cond, then, otherwise), node.Span), nil
}

func lowerWhile(s *session, node *cst.Node) (ast.Statement, error) {
	condNode, err := requireNamed(node, "condition", 0, "condition")
	if err != nil {
		return nil, err
	}
	bodyNode, err := requireNamed(node, "body", 1, "body")
	if err != nil {
		return nil, err
	}
	cond, err := s.condition(condNode)
	if err != nil {
		return nil, err
	}
	body, err := s.Statement(bodyNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewWhileStatement(cond, body), node.Span), nil
}

func lowerReturn(s *session, node *cst.Node) (ast.Statement, error) {
	var expr ast.Expression
	if valueNode := namedChild(node, "value", 0); valueNode != nil {
		value, err := s.Expression(valueNode)
		if err != nil {
			return nil, err
		}
		expr = value
	} else {
		expr = stamped(s, ast.NewEmptyExpression(), node.Span)
	}
	return stamped(s, ast.NewReturnStatement(expr), node.Span), nil
}

func lowerThrow(s *session, node *cst.Node) (ast.Statement, error) {
	valueNode, err := requireNamed(node, "value", 0, "thrown expression")
	if err != nil {
		return nil, err
	}
	expr, err := s.Expression(valueNode)
	if err != nil {
		return nil, err
	}
	return stamped(s, ast.NewThrowStatement(expr), node.Span), nil
}

func lowerBreak(s *session, node *cst.Node) (ast.Statement, error) {
	return stamped(s, ast.NewBreakStatement(labelOf(node)), node.Span), nil
}

func lowerContinue(s *session, node *cst.Node) (ast.Statement, error) {
	return stamped(s, ast.NewContinueStatement(labelOf(node)), node.Span), nil
}

func labelOf(node *cst.Node) string {
	if label := identifierChild(node, "label"); label != nil {
		return label.Text
	}
	return ""
}
