package lowering

import (
	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

var operatorKinds = map[string]ast.OperatorKind{
	"..":         ast.OperatorRange,
	"..<":        ast.OperatorRange,
	"as":         ast.OperatorCast,
	"instanceof": ast.OperatorInstanceof,
	"in":         ast.OperatorIn,

	"=": ast.OperatorAssign, "+=": ast.OperatorAssign, "-=": ast.OperatorAssign,
	"*=": ast.OperatorAssign, "/=": ast.OperatorAssign, "%=": ast.OperatorAssign,
	"**=": ast.OperatorAssign, "&=": ast.OperatorAssign, "|=": ast.OperatorAssign,
	"^=": ast.OperatorAssign, "<<=": ast.OperatorAssign, ">>=": ast.OperatorAssign,
	">>>=": ast.OperatorAssign, "?=": ast.OperatorAssign,

	"==": ast.OperatorCompare, "!=": ast.OperatorCompare, "<": ast.OperatorCompare,
	"<=": ast.OperatorCompare, ">": ast.OperatorCompare, ">=": ast.OperatorCompare,
	"<=>": ast.OperatorCompare, "===": ast.OperatorCompare, "!==": ast.OperatorCompare,

	"=~": ast.OperatorMatch, "==~": ast.OperatorMatch,

	"&&": ast.OperatorLogical, "||": ast.OperatorLogical,

	"+": ast.OperatorArithmetic, "-": ast.OperatorArithmetic, "*": ast.OperatorArithmetic,
	"/": ast.OperatorArithmetic, "%": ast.OperatorArithmetic, "**": ast.OperatorArithmetic,

	"&": ast.OperatorBitwise, "|": ast.OperatorBitwise, "^": ast.OperatorBitwise,

	"<<": ast.OperatorShift, ">>": ast.OperatorShift, ">>>": ast.OperatorShift,

	"++": ast.OperatorIncrement, "--": ast.OperatorDecrement,

	"!": ast.OperatorUnary, "~": ast.OperatorUnary,
}

// maxShiftWidth is the longest operator a run of `>` symbols can form.
const maxShiftWidth = 3

// LookupOperator classifies operator text.
func LookupOperator(text string) (ast.OperatorKind, bool) {
	kind, ok := operatorKinds[text]
	return kind, ok
}

// ResolveOperator builds the operator token that starts at children[start].
// A leading `>` absorbs the `>` symbols that immediately follow it, so grammars
// that lex shifts as separate comparators still yield `>>` and `>>>`. It
// returns the token and the index of the first child after it.
func ResolveOperator(children []*cst.Node, start int) (ast.Token, int, error) {
	if start < 0 || start >= len(children) || children[start] == nil || !children[start].IsToken() {
		var at *cst.Node
		if start >= 0 && start < len(children) {
			at = children[start]
		}
		return ast.Token{}, start, fatal(at, "expected an operator token")
	}
	first := children[start]
	text := first.Text
	span := first.Span
	next := start + 1
	if text == ">" {
		for next < len(children) && len(text) < maxShiftWidth {
			child := children[next]
			if child == nil || !child.IsToken() || child.Text != ">" {
				break
			}
			text += child.Text
			span = ast.Cover(span, child.Span)
			next++
		}
	}
	kind, ok := LookupOperator(text)
	if !ok {
		return ast.Token{}, start, malformed(ErrUnknownOperator, first, "unknown operator %q", text)
	}
	return ast.Token{Kind: kind, Text: text, Span: span}, next, nil
}

// operatorToken resolves a single-token operator such as `++` or `-`.
func operatorToken(node *cst.Node) (ast.Token, error) {
	tok, _, err := ResolveOperator([]*cst.Node{node}, 0)
	return tok, err
}
