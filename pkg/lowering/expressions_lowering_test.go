package lowering

import (
	"reflect"
	"strings"
	"testing"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func TestLowerBinaryUsesOperatorSpan(t *testing.T) {
	expr := lowerExpr(t, binary(v("a"), "+", num("1")))
	expectTree(t, expr, "(+ a 1)")
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expected binary expression, got %T", expr)
	}
	if bin.Operator.Kind != ast.OperatorArithmetic {
		t.Fatalf("expected arithmetic operator, got %s", bin.Operator.Kind)
	}
	checkSpan(t, "binary", bin.Span(), 1, 3, 1, 4)
	checkSpan(t, "left", bin.Left.Span(), 1, 1, 1, 2)
}

func TestLowerBinaryCoalescesShiftTokens(t *testing.T) {
	expr := lowerExpr(t, cst.N(cst.KindBinary, v("a"), cst.T(">"), cst.T(">"), cst.T(">"), num("2")))
	expectTree(t, expr, "(>>> a 2)")
	bin := expr.(*ast.BinaryExpression)
	if bin.Operator.Kind != ast.OperatorShift {
		t.Fatalf("expected shift operator, got %s", bin.Operator.Kind)
	}
	checkSpan(t, "operator", bin.Operator.Span, 1, 3, 1, 8)

	cmp := lowerExpr(t, binary(v("a"), ">", num("2")))
	expectTree(t, cmp, "(> a 2)")
}

func TestLowerRanges(t *testing.T) {
	expectTree(t, lowerExpr(t, binary(num("1"), "..", num("5"))), "(.. 1 5)")
	expr := lowerExpr(t, binary(num("1"), "..<", num("5")))
	expectTree(t, expr, "(..< 1 5)")
	rng := expr.(*ast.RangeExpression)
	if rng.Inclusive {
		t.Fatalf("expected exclusive range")
	}
	checkSpan(t, "range", rng.Span(), 1, 3, 1, 6)
}

func TestLowerCastAndInstanceof(t *testing.T) {
	cast := lowerExpr(t, binary(v("x"), "as", classType("java", "util", "List")))
	expectTree(t, cast, "(as java.util.List x)")
	if !cast.(*ast.CastExpression).Coerce {
		t.Fatalf("expected `as` to coerce")
	}
	expectTree(t, lowerExpr(t, binary(v("x"), "instanceof", className("String"))), "(instanceof x (class String))")

	generic := cst.N(cst.KindGenericClassName,
		className("List"),
		cst.N(cst.KindGenericList, cst.T("<"), cst.T("?"), cst.T(">")),
		cst.T("["), cst.T("]"),
	)
	expectTree(t, lowerExpr(t, binary(v("x"), "as", generic)), "(as List<?>[] x)")
}

func TestLowerUnknownOperator(t *testing.T) {
	_, err := New().LowerExpression(cst.Layout(binary(v("a"), "<>", v("b"))))
	lowerErr := expectError(t, err, ErrUnknownOperator)
	checkSpan(t, "error", lowerErr.Span, 1, 3, 1, 5)
	if !strings.Contains(lowerErr.Error(), `"<>"`) {
		t.Fatalf("expected operator in message, got %q", lowerErr.Error())
	}
}

func TestLowerAssignmentSpansWholeNode(t *testing.T) {
	expr := lowerExpr(t, cst.N(cst.KindAssignment, v("x"), cst.T("+="), num("2")))
	expectTree(t, expr, "(+= x 2)")
	checkSpan(t, "assignment", expr.Span(), 1, 1, 1, 7)

	_, err := New().LowerExpression(cst.Layout(cst.N(cst.KindAssignment, v("x"), cst.T("+"), num("2"))))
	expectError(t, err, ErrFatalInvariant)
}

func TestLowerUnaryPrefixPostfix(t *testing.T) {
	neg := lowerExpr(t, cst.N(cst.KindUnary, cst.T("-"), v("x")))
	expectTree(t, neg, "(- x)")
	checkSpan(t, "unary", neg.Span(), 1, 1, 1, 2)
	expectTree(t, lowerExpr(t, cst.N(cst.KindUnary, cst.T("!"), v("ok"))), "(! ok)")

	pre := lowerExpr(t, cst.N(cst.KindPrefix, cst.T("++"), v("i")))
	expectTree(t, pre, "(prefix++ i)")
	checkSpan(t, "prefix", pre.Span(), 1, 1, 1, 3)

	post := lowerExpr(t, cst.N(cst.KindPostfix, v("i"), cst.T("--")))
	expectTree(t, post, "(postfix-- i)")
	checkSpan(t, "postfix", post.Span(), 1, 3, 1, 5)

	_, err := New().LowerExpression(cst.Layout(cst.N(cst.KindPrefix, cst.T("+"), v("i"))))
	expectError(t, err, ErrFatalInvariant)
}

func TestLowerTernaryAndElvis(t *testing.T) {
	expectTree(t, lowerExpr(t, cst.N(cst.KindTernary, v("c"), cst.T("?"), v("a"), cst.T(":"), v("b"))), "(? (bool c) a b)")
	expectTree(t, lowerExpr(t, cst.N(cst.KindElvis, v("a"), cst.T("?:"), v("b"))), "(?: a b)")
}

func TestLowerPathFoldsProperties(t *testing.T) {
	expr := lowerExpr(t, path("a", "b", "c"))
	expectTree(t, expr, `(. (. a "b") "c")`)
	checkSpan(t, "outer", expr.Span(), 1, 1, 1, 10)
	inner := expr.(*ast.PropertyExpression).Object
	checkSpan(t, "inner", inner.Span(), 1, 1, 1, 6)
}

func TestLowerCalls(t *testing.T) {
	cases := []struct {
		name string
		node *cst.Node
		want string
	}{
		{
			name: "implicit receiver",
			node: cst.N(cst.KindCall, path("foo"), args(v("a"))),
			want: "(call _ foo a)",
		},
		{
			name: "qualified receiver",
			node: cst.N(cst.KindCall, path("a", "b"), args(num("1"))),
			want: "(call a b 1)",
		},
		{
			name: "deep receiver",
			node: cst.N(cst.KindCall, path("a", "b", "c"), args()),
			want: `(call (. a "b") c)`,
		},
		{
			name: "path without arguments reads a property",
			node: cst.N(cst.KindCall, path("a", "b")),
			want: `(. a "b")`,
		},
		{
			name: "empty parentheses",
			node: cst.N(cst.KindCall, path("foo"), cst.T("("), cst.T(")")),
			want: "(call _ foo)",
		},
		{
			name: "trailing closure",
			node: cst.N(cst.KindCall, path("each"), cst.N(cst.KindClosure, block(exprStmt(v("it"))))),
			want: "(call _ each (closure (block it)))",
		},
		{
			name: "arguments then closure",
			node: cst.N(cst.KindCall, path("xs", "inject"), args(num("0")), cst.N(cst.KindClosure, block())),
			want: "(call xs inject 0 (closure (block)))",
		},
		{
			name: "named arguments lead",
			node: cst.N(cst.KindCall, path("foo"), args(
				v("y"),
				cst.N(cst.KindMapEntry, cst.Ident("x"), cst.T(":"), num("1")),
			)),
			want: `(call _ foo (map (: "x" 1)) y)`,
		},
	}
	for _, tc := range cases {
		expr := lowerExpr(t, tc.node)
		if got := ast.Sprint(expr); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.name, got, tc.want)
		}
	}
}

func TestLowerCallMarksImplicitThis(t *testing.T) {
	expr := lowerExpr(t, cst.N(cst.KindCall, path("foo"), args(v("a"))))
	call := expr.(*ast.MethodCallExpression)
	if !call.ImplicitThis {
		t.Fatalf("expected implicit this")
	}
	receiver, ok := call.Object.(*ast.VariableExpression)
	if !ok || !receiver.IsThis() {
		t.Fatalf("expected this receiver, got %s", ast.Sprint(call.Object))
	}
	checkSpan(t, "receiver", receiver.Span(), 1, 1, 1, 4)

	qualified := lowerExpr(t, cst.N(cst.KindCall, path("a", "b"), args())).(*ast.MethodCallExpression)
	if qualified.ImplicitThis {
		t.Fatalf("qualified call must not use implicit this")
	}
}

func TestLowerMethodCallNavigation(t *testing.T) {
	safe := lowerExpr(t, cst.N(cst.KindMethodCall, v("obj"), cst.T("?."), cst.Ident("m"), args(num("1"))))
	expectTree(t, safe, "(call?. obj m 1)")
	if call := safe.(*ast.MethodCallExpression); !call.Safe || call.SpreadSafe || call.ImplicitThis {
		t.Fatalf("unexpected flags: %+v", call)
	}
	spread := lowerExpr(t, cst.N(cst.KindMethodCall, v("xs"), cst.T("*."), cst.Ident("size"), args()))
	expectTree(t, spread, "(call*. xs size)")

	plain := lowerExpr(t, cst.N(cst.KindMethodCall, v("obj"), cst.T("."), cst.Ident("m")))
	expectTree(t, plain, "(call obj m)")
	checkSpan(t, "arguments", plain.(*ast.MethodCallExpression).Arguments.Span(), 1, 1, 1, 8)

	_, err := New().LowerExpression(cst.Layout(cst.N(cst.KindMethodCall, v("obj"), cst.T(".@"), cst.Ident("f"), args())))
	expectError(t, err, ErrFatalInvariant)
}

func TestLowerFieldAccess(t *testing.T) {
	attr := lowerExpr(t, cst.N(cst.KindFieldAccess, v("obj"), cst.T(".@"), cst.Ident("f")))
	expectTree(t, attr, `(.@ obj "f")`)

	spread := lowerExpr(t, cst.N(cst.KindFieldAccess, v("xs"), cst.T("*."), cst.Ident("name")))
	expectTree(t, spread, `(*. xs "name")`)
	prop := spread.(*ast.PropertyExpression)
	if !prop.Safe || !prop.SpreadSafe {
		t.Fatalf("spread access must be safe and spread-safe: %+v", prop)
	}
	expectTree(t, lowerExpr(t, cst.N(cst.KindFieldAccess, v("o"), cst.T("?."), cst.Ident("p"))), `(?. o "p")`)
}

func TestLowerCollections(t *testing.T) {
	expectTree(t, lowerExpr(t, cst.N(cst.KindListConstructor, cst.T("["), cst.T("]"))), "(list)")
	expectTree(t, lowerExpr(t, cst.N(cst.KindListConstructor,
		cst.T("["), num("1"), cst.T(","), str(`'a'`), cst.T("]"),
	)), `(list 1 "a")`)

	m := lowerExpr(t, cst.N(cst.KindMapConstructor,
		cst.T("["),
		cst.N(cst.KindMapEntry, cst.Ident("a"), cst.T(":"), num("1")),
		cst.T(","),
		cst.N(cst.KindMapEntry, v("k"), cst.T(":"), num("2")),
		cst.T("]"),
	))
	expectTree(t, m, `(map (: "a" 1) (: k 2))`)
	key := m.(*ast.MapExpression).Entries[0].Key
	checkSpan(t, "sugared key", key.Span(), 1, 3, 1, 4)
}

func TestLowerGString(t *testing.T) {
	node := cst.N(cst.KindGString,
		cst.Leaf(cst.KindGStringStart, `"a$`),
		cst.N(cst.KindGStringPath, cst.Ident("x"), cst.Leaf(cst.KindGStringPathPart, ".y")),
		cst.Leaf(cst.KindGStringPart, `b$`),
		cst.T("{"), cst.T("}"),
		cst.Leaf(cst.KindGStringEnd, `c"`),
	)
	expr := lowerExpr(t, node)
	expectTree(t, expr, `(gstring "a" (. x "y") "b" null "c")`)
	gs := expr.(*ast.GStringExpression)
	if gs.Verbatim != `"a$x.yb${}c"` {
		t.Fatalf("unexpected verbatim text %q", gs.Verbatim)
	}
	checkSpan(t, "empty placeholder", gs.Values[1].Span(), 1, 13, 1, 16)

	braced := cst.N(cst.KindGString,
		cst.Leaf(cst.KindGStringStart, `"$`),
		cst.T("{"), binary(v("a"), "+", num("1")), cst.T("}"),
		cst.Leaf(cst.KindGStringEnd, `"`),
	)
	expectTree(t, lowerExpr(t, braced), `(gstring "" (+ a 1) "")`)

	_, err := New().LowerExpression(cst.Layout(cst.N(cst.KindGString,
		cst.Leaf(cst.KindGStringStart, `"a$`),
		cst.Leaf(cst.KindGStringEnd, `b"`),
	)))
	expectError(t, err, ErrFatalInvariant)
}

func TestLowerClosureParameters(t *testing.T) {
	bare := lowerExpr(t, cst.N(cst.KindClosure, block(exprStmt(v("it")))))
	expectTree(t, bare, "(closure (block it))")
	if bare.(*ast.ClosureExpression).Parameters != nil {
		t.Fatalf("closure without a parameter section must have nil parameters")
	}

	empty := lowerExpr(t, cst.N(cst.KindClosure, cst.T("{"), cst.N(cst.KindParameterList, cst.T("->")), cst.T("}")))
	expectTree(t, empty, "(closure (params) (block))")
	if params := empty.(*ast.ClosureExpression).Parameters; params == nil || len(params.Parameters) != 0 {
		t.Fatalf("explicit empty parameter section must be kept")
	}
	body := empty.(*ast.ClosureExpression).Code
	if body.Span() == ast.ZeroSpan() || body.Span() != empty.Span() {
		t.Fatalf("missing closure body must span the closure, got %+v want %+v", body.Span(), empty.Span())
	}

	typed := lowerExpr(t, cst.N(cst.KindClosure,
		cst.T("{"),
		cst.N(cst.KindParameterList,
			cst.N(cst.KindParameter, cst.Ident("x")),
			cst.T(","),
			cst.N(cst.KindParameter, classType("int"), cst.Ident("y"), cst.T("="), num("2")),
			cst.T("->"),
		),
		block(exprStmt(binary(v("x"), "+", v("y")))),
		cst.T("}"),
	))
	expectTree(t, typed, "(closure (params (param def x) (param int y 2)) (block (+ x y)))")
	param := typed.(*ast.ClosureExpression).Parameters.Parameters[0]
	if !param.Type.IsDynamic() {
		t.Fatalf("untyped parameter must be dynamic")
	}
	checkSpan(t, "dynamic type", param.Type.Span(), 1, 3, 1, 4)
}

func TestLowerLiterals(t *testing.T) {
	cases := []struct {
		node *cst.Node
		want string
	}{
		{num("0x10"), "16"},
		{num("3000000000"), "3000000000L"},
		{cst.Leaf(cst.KindDecimal, "1.5"), "1.5G"},
		{cst.Leaf(cst.KindDecimal, "2.5f"), "2.5f"},
		{cst.Leaf(cst.KindBool, "true"), "true"},
		{cst.Leaf(cst.KindNull, "null"), "null"},
		{str(`'hi\n'`), `"hi\n"`},
		{str(`/a\/b/`), `"a/b"`},
	}
	for _, tc := range cases {
		if got := ast.Sprint(lowerExpr(t, tc.node)); got != tc.want {
			t.Fatalf("%s: got %s want %s", tc.node.Text, got, tc.want)
		}
	}

	_, err := New().LowerExpression(cst.Layout(num("0xZZ")))
	lowerErr := expectError(t, err, ErrInvalidLiteral)
	if lowerErr.Kind != cst.KindInteger {
		t.Fatalf("expected error to carry the node kind, got %q", lowerErr.Kind)
	}
	checkSpan(t, "literal", lowerErr.Span, 1, 1, 1, 5)
}

func TestLowerDeclarationsAndInstantiation(t *testing.T) {
	decl := lowerExpr(t, cst.N(cst.KindDeclaration,
		cst.T("final"), classType("int"), cst.Named("name", cst.Ident("x")), cst.T("="), num("1"),
	))
	expectTree(t, decl, "(def int x 1)")
	if mods := decl.(*ast.DeclarationExpression).Modifiers; len(mods) != 1 || mods[0] != "final" {
		t.Fatalf("unexpected modifiers %v", mods)
	}
	untyped := lowerExpr(t, cst.N(cst.KindDeclaration, cst.T("def"), cst.Ident("y")))
	expectTree(t, untyped, "(def def y <empty>)")

	expectTree(t, lowerExpr(t, cst.N(cst.KindNewInstance, cst.T("new"), classType("Foo"), args(num("1")))), "(new Foo 1)")
	expectTree(t, lowerExpr(t, cst.N(cst.KindNewInstance, cst.T("new"), classType("Foo"))), "(new Foo)")
	expectTree(t, lowerExpr(t, cst.N(cst.KindNewArray,
		cst.T("new"), classType("int"), cst.T("["), num("3"), cst.T("]"), cst.T("["), num("4"), cst.T("]"),
	)), "(new-array int 3 4)")
}

func TestLowerExpressionRejectsUnknownKinds(t *testing.T) {
	_, err := New().LowerExpression(cst.Layout(cst.Leaf(cst.Kind("lambda_expression"), "x")))
	lowerErr := expectError(t, err, ErrUnsupportedNode)
	if lowerErr.Kind != cst.Kind("lambda_expression") {
		t.Fatalf("expected error to name the kind, got %q", lowerErr.Kind)
	}

	_, err = New().LowerExpression(cst.Layout(cst.N(cst.KindWhile, v("c"), block())))
	expectError(t, err, ErrUnsupportedNode)

	_, err = New().LowerExpression(nil)
	expectError(t, err, ErrUnsupportedNode)
}

func TestLoweringIsDeterministic(t *testing.T) {
	build := func() *cst.Node {
		return cst.Layout(cst.N(cst.KindCall, path("a", "b"), args(
			binary(num("1"), "..<", num("10")),
			cst.N(cst.KindMapEntry, cst.Ident("k"), cst.T(":"), str(`'v'`)),
		)))
	}
	node := build()
	l := New()
	first, err := l.LowerExpression(node)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if !reflect.DeepEqual(node, build()) {
		t.Fatalf("lowering modified its input tree")
	}
	second, err := l.LowerExpression(node)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("lowering differs between runs:\n%s\n%s", ast.Sprint(first), ast.Sprint(second))
	}
	if first == second {
		t.Fatalf("each run must build a fresh tree")
	}
}

func TestLowerAnnotationValue(t *testing.T) {
	node := cst.N(cst.KindAnnotationArray,
		cst.T("{"),
		cst.Leaf(cst.KindAnnotationInteger, "1"),
		cst.Leaf(cst.KindAnnotationString, `'a'`),
		cst.N(cst.KindAnnotationClass, className("String")),
		cst.N(cst.KindAnnotationPath, cst.Ident("Foo"), cst.T("."), cst.Ident("BAR")),
		cst.Leaf(cst.KindAnnotationBool, "false"),
		cst.T("}"),
	)
	expr, err := New().LowerAnnotationValue(cst.Layout(node))
	if err != nil {
		t.Fatalf("annotation: %v", err)
	}
	expectTree(t, expr, `(list 1 "a" (class String) (. Foo "BAR") false)`)
	if err := ast.CheckSpans(expr); err != nil {
		t.Fatalf("spans: %v", err)
	}

	_, err = New().LowerAnnotationValue(cst.Layout(binary(v("a"), "+", num("1"))))
	lowerErr := expectError(t, err, ErrUnsupportedInAnnotation)
	expectError(t, err, ErrMalformedConstruct)
	if !strings.Contains(lowerErr.Error(), `expression "a+1" is prohibited inside annotations`) {
		t.Fatalf("unexpected message %q", lowerErr.Error())
	}
}

func TestLowerDepthGuard(t *testing.T) {
	nested := func() *cst.Node {
		node := v("x")
		for i := 0; i < 5; i++ {
			node = cst.N(cst.KindParen, cst.T("("), node, cst.T(")"))
		}
		return cst.Layout(node)
	}
	_, err := New(WithMaxDepth(3)).LowerExpression(nested())
	expectError(t, err, ErrTooDeep)

	expr, err := New().LowerExpression(nested())
	if err != nil {
		t.Fatalf("default depth: %v", err)
	}
	expectTree(t, expr, "x")
}

func TestLowerWithCustomStamper(t *testing.T) {
	var stamped []ast.NodeType
	l := New(WithStamper(func(node ast.Node, span ast.Span) {
		stamped = append(stamped, node.NodeType())
		ast.SetSpan(node, span)
	}))
	if _, err := l.LowerExpression(cst.Layout(binary(v("a"), "+", num("1")))); err != nil {
		t.Fatalf("lower: %v", err)
	}
	want := []ast.NodeType{ast.NodeVariableExpression, ast.NodeIntegerLiteral, ast.NodeBinaryExpression}
	if !reflect.DeepEqual(stamped, want) {
		t.Fatalf("stamp order: got %v want %v", stamped, want)
	}
}

type recordingHelpers struct {
	DefaultHelpers
	argumentLists int
}

func (h *recordingHelpers) ArgumentList(e Engine, node *cst.Node) (*ast.ArgumentListExpression, error) {
	h.argumentLists++
	return h.DefaultHelpers.ArgumentList(e, node)
}

func TestLowerWithCustomHelpers(t *testing.T) {
	helpers := &recordingHelpers{}
	l := New(WithHelpers(helpers))
	expr, err := l.LowerExpression(cst.Layout(cst.N(cst.KindCall, path("foo"), args(
		cst.N(cst.KindCall, path("bar"), args(v("x"))),
	))))
	if err != nil {
		t.Fatalf("lower: %v", err)
	}
	expectTree(t, expr, "(call _ foo (call _ bar x))")
	if helpers.argumentLists != 2 {
		t.Fatalf("expected 2 argument lists, got %d", helpers.argumentLists)
	}
}
