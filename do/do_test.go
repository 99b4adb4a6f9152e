package do_test

import (
	"testing"

	"github.com/npillmayer/maybe"
	"github.com/npillmayer/maybe/do"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDoSimple(t *testing.T) {
	r := do.Eval(
		do.Let(func(int) int { return 44 }),
		do.Let(func(a int) int { return a - 2 }),
	)
	var v int
	switch m := r.Match(); m {
	case m.Just(&v):
		t.Logf("do-expression = Just(%d)", v)
	case m.Nothing():
		t.Error("expected do-expression to succeed, didn't")
	}
	if v != 42 {
		t.Errorf("expected do-expression to be Just(42), is %d", v)
	}
}

func TestDoBindNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.do")
	defer teardown()
	//
	checkedDiv := func(a, b int) maybe.Maybe[int] {
		if b == 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(a / b)
	}
	r := do.Eval(
		do.Let(func(int) int { return 44 }),
		do.Bind(func(a int) maybe.Maybe[int] { return checkedDiv(a, 0) }),
	)
	if !r.IsNothing() {
		t.Errorf("expected division by zero to end the expression with Nothing, is %s", r)
	}

	r = do.Eval(
		do.Let(func(int) int { return 44 }),
		do.Bind(func(a int) maybe.Maybe[int] { return checkedDiv(a, 2) }),
	)
	if r.WithDefault(0) != 22 {
		t.Errorf("expected do-expression to be Just(22), is %s", r)
	}
}

func TestDoShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.do")
	defer teardown()
	//
	var trace []int
	r := do.Eval(
		do.Let(func(int) int {
			trace = append(trace, 1)
			return 7
		}),
		do.Bind(func(int) maybe.Maybe[int] {
			trace = append(trace, 2)
			return maybe.Nothing[int]()
		}),
		do.Let(func(a int) int {
			trace = append(trace, 3)
			return a * a
		}),
	)
	if !r.IsNothing() {
		t.Errorf("expected aborted do-expression to be Nothing, is %s", r)
	}
	if len(trace) != 2 || trace[0] != 1 || trace[1] != 2 {
		t.Errorf("expected steps 1 and 2 to run and step 3 not to, ran %v", trace)
	}
}

func TestDoEmpty(t *testing.T) {
	if r := do.Eval[int](); !r.IsNothing() {
		t.Errorf("expected empty do-expression to be Nothing, is %s", r)
	}
}
