package lowering

import (
	"testing"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func TestLowerBlockAndExpressionStatements(t *testing.T) {
	stmt := lowerStmt(t, block(exprStmt(v("a")), exprStmt(cst.N(cst.KindCall, path("foo"), args()))))
	expectTree(t, stmt, "(block a (call _ foo))")
	checkSpan(t, "block", stmt.Span(), 1, 1, 1, 14)

	expectTree(t, lowerStmt(t, cst.N(cst.KindStatementBlock, block(exprStmt(v("x"))))), "(block x)")
	expectTree(t, lowerStmt(t, block()), "(block)")
}

func TestLowerIf(t *testing.T) {
	noElse := lowerStmt(t, cst.N(cst.KindIf, cst.T("if"), cst.T("("), v("c"), cst.T(")"), block(exprStmt(v("a")))))
	expectTree(t, noElse, "(if (bool c) (block a) <empty>)")
	ifStmt := noElse.(*ast.IfStatement)
	if _, ok := ifStmt.Else.(*ast.EmptyStatement); !ok {
		t.Fatalf("expected empty else, got %T", ifStmt.Else)
	}
	checkSpan(t, "else", ifStmt.Else.Span(), ifStmt.Span().Start.Line, ifStmt.Span().Start.Column, ifStmt.Span().End.Line, ifStmt.Span().End.Column)

	withElse := lowerStmt(t, cst.N(cst.KindIf,
		cst.T("if"), cst.T("("), v("c"), cst.T(")"), block(), cst.T("else"), cst.N(cst.KindReturn, cst.T("return")),
	))
	expectTree(t, withElse, "(if (bool c) (block) (return <empty>))")
}

func TestLowerWhile(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindWhile,
		cst.T("while"), cst.T("("), v("c"), cst.T(")"), cst.N(cst.KindStatementBlock, cst.N(cst.KindBreak, cst.T("break"))),
	))
	expectTree(t, stmt, "(while (bool c) (break))")
}

func TestLowerClassicForEmptySegments(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindClassicFor,
		cst.T("for"), cst.T("("), cst.T(";"), cst.T(";"), cst.T(")"), block(),
	))
	expectTree(t, stmt, "(for (; <empty> <empty> <empty>) (block))")
	loop := stmt.(*ast.ForStatement)
	if !loop.IsClassic() {
		t.Fatalf("expected classic loop variable, got %s", loop.Variable.Name)
	}
	checkSpan(t, "dummy", loop.Variable.Span(), 1, 1, 1, 16)
}

func TestLowerClassicForSegments(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindClassicFor,
		cst.T("for"), cst.T("("),
		cst.N(cst.KindDeclaration, cst.T("def"), cst.Ident("i"), cst.T("="), num("0")),
		cst.T(";"),
		binary(v("i"), "<", num("3")),
		cst.T(";"),
		cst.N(cst.KindPostfix, v("i"), cst.T("++")),
		cst.T(")"),
		block(exprStmt(v("i"))),
	))
	expectTree(t, stmt, "(for (; (def def i 0) (< i 3) (postfix++ i)) (block i))")

	partial := lowerStmt(t, cst.N(cst.KindClassicFor,
		cst.T("for"), cst.T("("), cst.T(";"), v("ok"), cst.T(";"), cst.T(")"), block(),
	))
	expectTree(t, partial, "(for (; <empty> ok <empty>) (block))")

	_, err := New().LowerStatement(cst.Layout(cst.N(cst.KindClassicFor,
		cst.T("for"), cst.T("("), cst.T(";"), cst.T(")"), block(),
	)))
	expectError(t, err, ErrFatalInvariant)
}

func TestLowerForIn(t *testing.T) {
	untyped := lowerStmt(t, cst.N(cst.KindForIn,
		cst.T("for"), cst.T("("), cst.Named("name", cst.Ident("x")), cst.T("in"), v("xs"), cst.T(")"), block(),
	))
	expectTree(t, untyped, "(for-in (param def x) xs (block))")
	param := untyped.(*ast.ForStatement).Variable
	if !param.Type.IsDynamic() {
		t.Fatalf("expected dynamic loop variable")
	}
	checkSpan(t, "variable type", param.Type.Span(), 1, 7, 1, 8)

	typed := lowerStmt(t, cst.N(cst.KindForIn,
		cst.T("for"), cst.T("("), classType("String"), cst.Ident("s"), cst.T("in"), v("xs"), cst.T(")"), block(),
	))
	expectTree(t, typed, "(for-in (param String s) xs (block))")
}

func TestLowerForColonRequiresType(t *testing.T) {
	_, err := New().LowerStatement(cst.Layout(cst.N(cst.KindForColon,
		cst.T("for"), cst.T("("), cst.Ident("x"), cst.T(":"), v("xs"), cst.T(")"), block(),
	)))
	lowerErr := expectError(t, err, ErrMissingType)
	expectError(t, err, ErrMalformedConstruct)
	if lowerErr.Kind != cst.KindForColon {
		t.Fatalf("expected error on the loop, got %q", lowerErr.Kind)
	}

	stmt := lowerStmt(t, cst.N(cst.KindForColon,
		cst.T("for"), cst.T("("), classType("String"), cst.Ident("s"), cst.T(":"), v("xs"), cst.T(")"), block(),
	))
	expectTree(t, stmt, "(for-in (param String s) xs (block))")
}

func TestLowerSwitch(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindSwitch,
		cst.T("switch"), cst.T("("), v("x"), cst.T(")"), cst.T("{"),
		cst.N(cst.KindCase, cst.T("case"), num("1"), cst.T(":"), exprStmt(v("a")), cst.N(cst.KindBreak, cst.T("break"))),
		cst.N(cst.KindCase, cst.T("case"), num("2"), cst.T(":")),
		cst.T("default"), cst.T(":"), exprStmt(v("b")),
		cst.T("}"),
	))
	expectTree(t, stmt, "(switch x (case 1 (block a (break))) (case 2 (block)) (block b))")
	sw := stmt.(*ast.SwitchStatement)
	checkSpan(t, "case", sw.Cases[0].Span(), 1, 16, 1, 20)

	noDefault := lowerStmt(t, cst.N(cst.KindSwitch,
		cst.T("switch"), cst.T("("), v("x"), cst.T(")"), cst.T("{"), cst.T("}"),
	))
	expectTree(t, noDefault, "(switch x <empty>)")
}

func TestLowerTryExpandsMultiCatch(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindTry,
		cst.T("try"), block(exprStmt(v("a"))),
		cst.N(cst.KindCatch,
			cst.T("catch"), cst.T("("),
			className("IOException"), cst.T("|"), className("SQLException"), cst.Ident("e"),
			cst.T(")"), block(exprStmt(v("b"))),
		),
		cst.T("finally"), block(exprStmt(v("c"))),
	))
	expectTree(t, stmt, "(try (block a) (catch (param IOException e) (block b)) (catch (param SQLException e) (block b)) (block (block c)))")
	try := stmt.(*ast.TryCatchStatement)
	if try.Catches[0].Code != try.Catches[1].Code {
		t.Fatalf("expanded catches must share their body")
	}
}

func TestLowerTryCatchWithoutType(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindTry,
		cst.T("try"), block(),
		cst.N(cst.KindCatch, cst.T("catch"), cst.T("("), cst.Ident("e"), cst.T(")"), block()),
	))
	expectTree(t, stmt, "(try (block) (catch (param java.lang.Object e) (block)) <empty>)")
}

func TestLowerJumpStatements(t *testing.T) {
	cases := []struct {
		node *cst.Node
		want string
	}{
		{cst.N(cst.KindReturn, cst.T("return")), "(return <empty>)"},
		{cst.N(cst.KindReturn, cst.T("return"), num("1")), "(return 1)"},
		{cst.N(cst.KindThrow, cst.T("throw"), cst.N(cst.KindNewInstance, cst.T("new"), classType("E"))), "(throw (new E))"},
		{cst.N(cst.KindBreak, cst.T("break"), cst.Ident("outer")), "(break outer)"},
		{cst.N(cst.KindContinue, cst.T("continue")), "(continue)"},
	}
	for _, tc := range cases {
		expectTree(t, lowerStmt(t, tc.node), tc.want)
	}
}

func TestLowerCommandChain(t *testing.T) {
	stmt := lowerStmt(t, cst.N(cst.KindCommand,
		path("foo"), bareArgs(v("a")), cst.Ident("bar"), bareArgs(num("1")), cst.Ident("baz"),
	))
	expectTree(t, stmt, `(. (call (call _ foo a) bar 1) "baz")`)
	checkSpan(t, "command", stmt.Span(), 1, 1, 1, 16)

	expectTree(t, lowerStmt(t, cst.N(cst.KindCommand, path("a", "b"), bareArgs(num("1")))), "(call a b 1)")
	expectTree(t, lowerStmt(t, cst.N(cst.KindCommand, path("a", "b"))), `(. a "b")`)
}

func TestLowerEmptyCommand(t *testing.T) {
	_, err := New().LowerStatement(cst.Layout(cst.N(cst.KindCommand, cst.T(";"))))
	expectError(t, err, ErrEmptyCommand)
}

func TestLowerExpressionKindsAsStatements(t *testing.T) {
	expectTree(t, lowerStmt(t, cst.N(cst.KindDeclaration, cst.T("def"), cst.Ident("x"), cst.T("="), num("1"))), "(def def x 1)")
	expectTree(t, lowerStmt(t, cst.N(cst.KindNewInstance, cst.T("new"), classType("Foo"), args())), "(new Foo)")
}

func TestLowerStatementRejectsUnknownKinds(t *testing.T) {
	_, err := New().LowerStatement(cst.Layout(binary(v("a"), "+", num("1"))))
	expectError(t, err, ErrUnsupportedNode)

	_, err = New().LowerStatement(cst.Layout(cst.N(cst.Kind("labeled_statement"), cst.Ident("l"))))
	expectError(t, err, ErrUnsupportedNode)

	_, err = New().LowerStatement(cst.Layout(block(exprStmt(cst.Leaf(cst.Kind("lambda"), "x")))))
	lowerErr := expectError(t, err, ErrUnsupportedNode)
	checkSpan(t, "nested", lowerErr.Span, 1, 3, 1, 4)
}
