package lowering

import (
	"sync"
	"testing"

	"groovy/frontend-go/pkg/ast"
	"groovy/frontend-go/pkg/cst"
)

func TestLowererIsSafeForConcurrentUse(t *testing.T) {
	l := New()
	root := cst.Layout(cst.N(cst.KindIf,
		cst.T("if"), cst.T("("), binary(v("a"), "<", num("10")), cst.T(")"),
		block(exprStmt(cst.N(cst.KindCall, path("log", "info"), args(str("'hit'"))))),
	))
	want := "(if (bool (< a 10)) (block (call log info \"hit\")) <empty>)"

	const workers = 8
	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			stmt, err := l.LowerStatement(root)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = ast.Sprint(stmt)
		}(i)
	}
	wg.Wait()
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: %v", i, errs[i])
		}
		if results[i] != want {
			t.Fatalf("worker %d: got %s want %s", i, results[i], want)
		}
	}
}

func TestMaxDepthOptionIgnoresNonPositive(t *testing.T) {
	if l := New(WithMaxDepth(0)); l.maxDepth != DefaultMaxDepth {
		t.Fatalf("expected default depth, got %d", l.maxDepth)
	}
	if l := New(WithMaxDepth(5)); l.maxDepth != 5 {
		t.Fatalf("expected depth 5, got %d", l.maxDepth)
	}
}
