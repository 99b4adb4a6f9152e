package lift_test

import (
	"testing"

	"github.com/npillmayer/maybe"
	"github.com/npillmayer/maybe/lift"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestFoldSkipsNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.lift")
	defer teardown()
	//
	sparse := lift.Fold(lift.Min[int],
		maybe.Nothing[int](), maybe.Just(3), maybe.Nothing[int](), maybe.Just(1))
	dense := lift.Fold(lift.Min[int], maybe.Just(3), maybe.Just(1))
	if sparse != dense {
		t.Errorf("expected fold to skip Nothing entries: %s vs %s", sparse, dense)
	}
	if sparse.WithDefault(0) != 1 {
		t.Errorf("expected min fold to be Just(1), is %s", sparse)
	}
}

func TestFoldEmptyAndSingleton(t *testing.T) {
	if r := lift.Fold(lift.Min[int]); !r.IsNothing() {
		t.Errorf("expected empty fold to be Nothing, is %s", r)
	}
	if r := lift.Fold(lift.Min[int], maybe.Nothing[int]()); !r.IsNothing() {
		t.Errorf("expected all-Nothing fold to be Nothing, is %s", r)
	}
	if r := lift.Fold(lift.Min[int], maybe.Just(5)); r.WithDefault(0) != 5 {
		t.Errorf("expected singleton fold to be Just(5), is %s", r)
	}
}

func TestFoldPropagatesCombinatorNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.lift")
	defer teardown()
	//
	// subtraction that refuses to go negative
	monus := func(a, b int) maybe.Maybe[int] {
		if b > a {
			return maybe.Nothing[int]()
		}
		return maybe.Just(a - b)
	}
	r := lift.Fold(monus, maybe.Just(10), maybe.Just(20), maybe.Just(1))
	if !r.IsNothing() {
		t.Errorf("expected fold to abort on combinator Nothing, is %s", r)
	}
	r = lift.Fold(monus, maybe.Just(10), maybe.Just(4), maybe.Just(1))
	if r.WithDefault(-1) != 5 {
		t.Errorf("expected 10-4-1 = Just(5), is %s", r)
	}
}

func TestFoldSum(t *testing.T) {
	add := func(a, b int) maybe.Maybe[int] {
		return maybe.Just(a + b)
	}
	r := lift.Fold(add, maybe.Just(1), maybe.Nothing[int](), maybe.Just(2), maybe.Just(3))
	if r.WithDefault(0) != 6 {
		t.Errorf("expected sum fold to be Just(6), is %s", r)
	}
}

// Selecting the least of several candidate dimensions, some of which may
// be unset. The typical use of a min fold in styling code.
func TestFoldDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "maybe.lift")
	defer teardown()
	//
	least := lift.Fold(lift.Min[dimen.DU],
		maybe.Just(10*dimen.PT),
		maybe.Nothing[dimen.DU](),
		maybe.Just(2*dimen.PT),
		maybe.Just(5*dimen.PT),
	)
	var du dimen.DU
	switch m := least.Match(); m {
	case m.Just(&du):
		t.Logf("least dimension = %s", du)
	case m.Nothing():
		t.Error("expected a least dimension to be present, isn't")
	}
	if du != 2*dimen.PT {
		t.Errorf("expected least dimension to be 2pt, is %s", du)
	}
}
