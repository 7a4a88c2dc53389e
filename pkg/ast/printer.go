package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders node as a compact S-expression. Fixture expectations and the
// CLI's tree output use this form, so it must stay stable.
func Sprint(node Node) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Node) {
	if node == nil || isNilNode(node) {
		sb.WriteString("nil")
		return
	}
	switch n := node.(type) {
	case *NullLiteral:
		sb.WriteString("null")
	case *BooleanLiteral:
		sb.WriteString(strconv.FormatBool(n.Value))
	case *IntegerLiteral:
		sb.WriteString(n.Value.String())
		sb.WriteString(numberSuffix(n.Type))
	case *DecimalLiteral:
		sb.WriteString(n.Value.Text('g', -1))
		sb.WriteString(numberSuffix(n.Type))
	case *StringLiteral:
		sb.WriteString(strconv.Quote(n.Value))
	case *EmptyExpression, *EmptyStatement:
		sb.WriteString("<empty>")
	case *VariableExpression:
		sb.WriteString(n.Name)
	case *PropertyExpression:
		nav := "."
		switch {
		case n.SpreadSafe:
			nav = "*."
		case n.Safe:
			nav = "?."
		}
		writeList(sb, nav, n.Object, n.Property)
	case *AttributeExpression:
		writeList(sb, ".@", n.Object, n.Attribute)
	case *MethodCallExpression:
		head := "call"
		switch {
		case n.SpreadSafe:
			head = "call*."
		case n.Safe:
			head = "call?."
		}
		sb.WriteString("(" + head + " ")
		if n.ImplicitThis {
			sb.WriteString("_")
		} else {
			writeNode(sb, n.Object)
		}
		sb.WriteString(" " + n.Method)
		if n.Arguments != nil {
			for _, arg := range n.Arguments.Arguments {
				sb.WriteString(" ")
				writeNode(sb, arg)
			}
		}
		sb.WriteString(")")
	case *BinaryExpression:
		writeList(sb, n.Operator.Text, n.Left, n.Right)
	case *UnaryExpression:
		writeList(sb, string(n.Operator), n.Operand)
	case *PrefixExpression:
		writeList(sb, "prefix"+n.Operator.Text, n.Operand)
	case *PostfixExpression:
		writeList(sb, "postfix"+n.Operator.Text, n.Operand)
	case *RangeExpression:
		op := "..<"
		if n.Inclusive {
			op = ".."
		}
		writeList(sb, op, n.From, n.To)
	case *BooleanExpression:
		writeList(sb, "bool", n.Expression)
	case *TernaryExpression:
		writeList(sb, "?", n.Condition, n.TrueExpression, n.FalseExpression)
	case *ElvisExpression:
		writeList(sb, "?:", n.Value, n.Fallback)
	case *CastExpression:
		writeList(sb, "as", n.Type, n.Expression)
	case *ClassExpression:
		writeList(sb, "class", n.Type)
	case *ListExpression:
		writeList(sb, "list", expressionsToNodes(n.Elements)...)
	case *MapExpression:
		nodes := make([]Node, len(n.Entries))
		for i, entry := range n.Entries {
			nodes[i] = entry
		}
		writeList(sb, "map", nodes...)
	case *MapEntryExpression:
		writeList(sb, ":", n.Key, n.Value)
	case *GStringExpression:
		var nodes []Node
		for i, part := range n.Strings {
			nodes = append(nodes, part)
			if i < len(n.Values) {
				nodes = append(nodes, n.Values[i])
			}
		}
		writeList(sb, "gstring", nodes...)
	case *ClosureExpression:
		if n.Parameters == nil {
			writeList(sb, "closure", n.Code)
		} else {
			writeList(sb, "closure", n.Parameters, n.Code)
		}
	case *ClosureListExpression:
		writeList(sb, ";", expressionsToNodes(n.Expressions)...)
	case *ArgumentListExpression:
		writeList(sb, "args", expressionsToNodes(n.Arguments)...)
	case *DeclarationExpression:
		writeList(sb, "def", n.Variable.Type, n.Variable, n.Value)
	case *ConstructorCallExpression:
		var nodes []Node
		nodes = append(nodes, n.Type)
		if n.Arguments != nil {
			nodes = append(nodes, expressionsToNodes(n.Arguments.Arguments)...)
		}
		writeList(sb, "new", nodes...)
	case *ArrayExpression:
		writeList(sb, "new-array", append([]Node{n.ElementType}, expressionsToNodes(n.Sizes)...)...)
	case *ClassType:
		writeClassType(sb, n)
	case *GenericsType:
		if n.Wildcard || n.Type == nil {
			sb.WriteString("?")
		} else {
			writeClassType(sb, n.Type)
		}
	case *Parameter:
		if n.Default != nil {
			writeList(sb, "param", n.Type, NewVariableExpression(n.Name), n.Default)
		} else {
			writeList(sb, "param", n.Type, NewVariableExpression(n.Name))
		}
	case *ParameterList:
		nodes := make([]Node, len(n.Parameters))
		for i, param := range n.Parameters {
			nodes[i] = param
		}
		writeList(sb, "params", nodes...)
	case *BlockStatement:
		writeList(sb, "block", statementsToNodes(n.Statements)...)
	case *ExpressionStatement:
		writeNode(sb, n.Expression)
	case *IfStatement:
		writeList(sb, "if", n.Condition, n.Then, n.Else)
	case *WhileStatement:
		writeList(sb, "while", n.Condition, n.Body)
	case *ForStatement:
		if n.IsClassic() {
			writeList(sb, "for", n.Collection, n.Body)
		} else {
			writeList(sb, "for-in", n.Variable, n.Collection, n.Body)
		}
	case *SwitchStatement:
		nodes := []Node{n.Subject}
		for _, c := range n.Cases {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, n.Default)
		writeList(sb, "switch", nodes...)
	case *CaseStatement:
		writeList(sb, "case", n.Expression, n.Code)
	case *TryCatchStatement:
		nodes := []Node{n.Try}
		for _, c := range n.Catches {
			nodes = append(nodes, c)
		}
		nodes = append(nodes, n.Finally)
		writeList(sb, "try", nodes...)
	case *CatchStatement:
		writeList(sb, "catch", n.Variable, n.Code)
	case *ReturnStatement:
		writeList(sb, "return", n.Expression)
	case *ThrowStatement:
		writeList(sb, "throw", n.Expression)
	case *BreakStatement:
		writeLabelled(sb, "break", n.Label)
	case *ContinueStatement:
		writeLabelled(sb, "continue", n.Label)
	default:
		sb.WriteString(fmt.Sprintf("<%s>", node.NodeType()))
	}
}

func writeList(sb *strings.Builder, head string, nodes ...Node) {
	sb.WriteString("(")
	sb.WriteString(head)
	for _, node := range nodes {
		sb.WriteString(" ")
		writeNode(sb, node)
	}
	sb.WriteString(")")
}

func writeLabelled(sb *strings.Builder, head, label string) {
	if label == "" {
		sb.WriteString("(" + head + ")")
		return
	}
	sb.WriteString("(" + head + " " + label + ")")
}

func writeClassType(sb *strings.Builder, t *ClassType) {
	if t.Dynamic {
		sb.WriteString("def")
	} else {
		sb.WriteString(t.Name)
	}
	if len(t.Generics) > 0 {
		sb.WriteString("<")
		for i, g := range t.Generics {
			if i > 0 {
				sb.WriteString(",")
			}
			writeNode(sb, g)
		}
		sb.WriteString(">")
	}
	sb.WriteString(strings.Repeat("[]", t.Dimensions))
}

func numberSuffix(t NumberType) string {
	switch t {
	case NumberLong:
		return "L"
	case NumberBigInteger, NumberBigDecimal:
		return "G"
	case NumberFloat:
		return "f"
	case NumberDouble:
		return "d"
	}
	return ""
}

func expressionsToNodes(exprs []Expression) []Node {
	nodes := make([]Node, len(exprs))
	for i, expr := range exprs {
		nodes[i] = expr
	}
	return nodes
}

func statementsToNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, stmt := range stmts {
		nodes[i] = stmt
	}
	return nodes
}

func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *ClassType:
		return n == nil
	case *ParameterList:
		return n == nil
	case *Parameter:
		return n == nil
	case *BooleanExpression:
		return n == nil
	case *BlockStatement:
		return n == nil
	case *VariableExpression:
		return n == nil
	case *StringLiteral:
		return n == nil
	}
	return false
}
