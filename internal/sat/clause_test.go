package sat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveClashOnSingleVariable(t *testing.T) {
	// (x0 v x1) and (!x0 v x2) resolve on x0 to (x1 v x2).
	l := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	r := []Literal{NegativeLiteral(0), PositiveLiteral(2)}

	got, ok := resolve(l, r)
	if !ok {
		t.Fatalf("resolve() reported no pivot, want a pivot on x0")
	}
	want := []Literal{PositiveLiteral(1), PositiveLiteral(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
	}
	for _, lit := range got {
		if lit.VarID() == 0 {
			t.Errorf("resolvent %v still contains the pivot variable", got)
		}
	}
}

func TestResolveNoSharedVariableFails(t *testing.T) {
	l := []Literal{PositiveLiteral(0)}
	r := []Literal{PositiveLiteral(1)}
	if _, ok := resolve(l, r); ok {
		t.Fatalf("resolve() succeeded with no shared variable")
	}
}

func TestResolveSameSignDuplicateIsDropped(t *testing.T) {
	// (x0 v x1) and (!x1 v x0) resolve on x1; the x0 literal from r is
	// dropped since l already carries it.
	l := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	r := []Literal{NegativeLiteral(1), PositiveLiteral(0)}

	got, ok := resolve(l, r)
	if !ok {
		t.Fatalf("resolve() reported no pivot, want a pivot on x1")
	}
	want := []Literal{PositiveLiteral(0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveMultiplePivotsRemovesBoth(t *testing.T) {
	// (x0 v x1) and (!x0 v !x1) clash on both variables: the resolvent is
	// empty and both sides report success.
	l := []Literal{PositiveLiteral(0), PositiveLiteral(1)}
	r := []Literal{NegativeLiteral(0), NegativeLiteral(1)}

	got, ok := resolve(l, r)
	if !ok {
		t.Fatalf("resolve() reported no pivot")
	}
	if len(got) != 0 {
		t.Errorf("expected an empty resolvent, got %v", got)
	}
}

func TestClauseStoreStableIndices(t *testing.T) {
	cs := newClauseStore()
	a := cs.add(taggedClause{literals: []Literal{PositiveLiteral(0)}})
	b := cs.add(taggedClause{literals: []Literal{PositiveLiteral(1)}})
	if a == b {
		t.Fatalf("expected distinct indices, got %d and %d", a, b)
	}
	if cs.len() != 2 {
		t.Fatalf("len() = %d, want 2", cs.len())
	}
	if got := cs.get(a).literals[0]; got != PositiveLiteral(0) {
		t.Errorf("get(%d) = %v, want PositiveLiteral(0)", a, got)
	}
}
