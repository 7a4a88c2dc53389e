package lowering

import (
	"testing"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func segment(name string, col int) PathSegment {
	return PathSegment{
		Name: name,
		Span: ast.Span{Start: ast.Position{Line: 1, Column: col}, End: ast.Position{Line: 1, Column: col + len(name)}},
	}
}

func TestResolveValue(t *testing.T) {
	expr, err := ResolveValue([]PathSegment{segment("a", 1), segment("b", 3), segment("c", 5)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	expectTree(t, expr, `(. (. a "b") "c")`)
	checkSpan(t, "chain", expr.Span(), 1, 1, 1, 6)
	prop := expr.(*ast.PropertyExpression)
	checkSpan(t, "key", prop.Property.Span(), 1, 5, 1, 6)

	single, err := ResolveValue([]PathSegment{segment("x", 1)})
	if err != nil {
		t.Fatalf("resolve single: %v", err)
	}
	expectTree(t, single, "x")

	_, err = ResolveValue(nil)
	expectError(t, err, ErrFatalInvariant)
}

func TestResolveForCall(t *testing.T) {
	target, err := ResolveForCall([]PathSegment{segment("foo", 1)})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !target.ImplicitThis || target.Method.Name != "foo" {
		t.Fatalf("unexpected target %+v", target)
	}
	if receiver, ok := target.Receiver.(*ast.VariableExpression); !ok || !receiver.IsThis() {
		t.Fatalf("expected this receiver, got %s", ast.Sprint(target.Receiver))
	}
	checkSpan(t, "this", target.Receiver.Span(), 1, 1, 1, 4)

	target, err = ResolveForCall([]PathSegment{segment("a", 1), segment("b", 3), segment("run", 5)})
	if err != nil {
		t.Fatalf("resolve chain: %v", err)
	}
	if target.ImplicitThis || target.Method.Name != "run" {
		t.Fatalf("unexpected chain target %+v", target)
	}
	expectTree(t, target.Receiver, `(. a "b")`)

	_, err = ResolveForCall(nil)
	expectError(t, err, ErrFatalInvariant)
}

func TestPathSegmentsRejectsForeignChildren(t *testing.T) {
	_, err := pathSegments(cst.Layout(cst.N(cst.KindPath, cst.Ident("a"), cst.T("."), cst.Leaf(cst.KindInteger, "1"))))
	expectError(t, err, ErrFatalInvariant)

	segments, err := pathSegments(cst.Layout(cst.Ident("solo")))
	if err != nil || len(segments) != 1 || segments[0].Name != "solo" {
		t.Fatalf("unexpected segments %+v (%v)", segments, err)
	}
}

func TestGStringPathSegments(t *testing.T) {
	node := cst.Layout(cst.N(cst.KindGStringPath, cst.Ident("user"), cst.Leaf(cst.KindGStringPathPart, ".name")))
	segments, err := gstringPathSegments(node)
	if err != nil {
		t.Fatalf("segments: %v", err)
	}
	if joinSegments(segments) != "user.name" {
		t.Fatalf("unexpected segments %+v", segments)
	}
	_, err = gstringPathSegments(cst.Layout(cst.N(cst.KindGStringPath, cst.Leaf(cst.KindGStringPathPart, "."))))
	expectError(t, err, ErrFatalInvariant)
}
