package lowering

import (
	"errors"
	"testing"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func v(name string) *cst.Node   { return cst.Leaf(cst.KindVariable, name) }
func num(text string) *cst.Node { return cst.Leaf(cst.KindInteger, text) }
func str(text string) *cst.Node { return cst.Leaf(cst.KindString, text) }

// block wraps stmts in braces so an empty block still has a span.
func block(stmts ...*cst.Node) *cst.Node {
	return cst.N(cst.KindBlock, wrap("{", "}", stmts)...)
}

func path(names ...string) *cst.Node {
	var children []*cst.Node
	for i, name := range names {
		if i > 0 {
			children = append(children, cst.T("."))
		}
		children = append(children, cst.Ident(name))
	}
	return cst.N(cst.KindPath, children...)
}

func className(names ...string) *cst.Node {
	p := path(names...)
	p.Kind = cst.KindClassName
	return p
}

func classType(names ...string) *cst.Node {
	return cst.N(cst.KindGenericClassName, className(names...))
}

func args(exprs ...*cst.Node) *cst.Node {
	return cst.N(cst.KindArgumentList, wrap("(", ")", exprs)...)
}

// bareArgs is a command-style argument list without parentheses.
func bareArgs(exprs ...*cst.Node) *cst.Node { return cst.N(cst.KindArgumentList, exprs...) }

func wrap(open, close string, nodes []*cst.Node) []*cst.Node {
	out := []*cst.Node{cst.T(open)}
	out = append(out, nodes...)
	return append(out, cst.T(close))
}

func binary(left *cst.Node, op string, right *cst.Node) *cst.Node {
	return cst.N(cst.KindBinary, left, cst.T(op), right)
}

func exprStmt(expr *cst.Node) *cst.Node { return cst.N(cst.KindExpressionStatement, expr) }

func lowerExpr(t *testing.T, node *cst.Node) ast.Expression {
	t.Helper()
	expr, err := New().LowerExpression(cst.Layout(node))
	if err != nil {
		t.Fatalf("lower expression: %v", err)
	}
	if err := ast.CheckSpans(expr); err != nil {
		t.Fatalf("spans: %v", err)
	}
	return expr
}

func lowerStmt(t *testing.T, node *cst.Node) ast.Statement {
	t.Helper()
	stmt, err := New().LowerStatement(cst.Layout(node))
	if err != nil {
		t.Fatalf("lower statement: %v", err)
	}
	if err := ast.CheckSpans(stmt); err != nil {
		t.Fatalf("spans: %v", err)
	}
	return stmt
}

func expectTree(t *testing.T, node ast.Node, want string) {
	t.Helper()
	if got := ast.Sprint(node); got != want {
		t.Fatalf("tree mismatch:\n got %s\nwant %s", got, want)
	}
}

func expectError(t *testing.T, err error, target *Error) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", target.Message)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected %s, got %v", target.Message, err)
	}
	var lowerErr *Error
	if !errors.As(err, &lowerErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	return lowerErr
}

func checkSpan(t *testing.T, label string, span ast.Span, sl, sc, el, ec int) {
	t.Helper()
	want := ast.Span{Start: ast.Position{Line: sl, Column: sc}, End: ast.Position{Line: el, Column: ec}}
	if span != want {
		t.Fatalf("%s span mismatch: got %+v want %+v", label, span, want)
	}
}
