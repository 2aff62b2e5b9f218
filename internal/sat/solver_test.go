package sat

import "testing"

// build constructs a Solver from a slice of int clauses, where a positive
// int n means the literal PositiveLiteral(n-1) and a negative int -n means
// NegativeLiteral(n-1). Variable ids are 0-based internally but the DIMACS
// convention of 1-based signed ints is convenient for test fixtures.
func build(numVars int, clauses [][]int) *Solver {
	s := NewDefaultSolver()
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	for _, clause := range clauses {
		lits := make([]Literal, len(clause))
		for i, n := range clause {
			if n > 0 {
				lits[i] = PositiveLiteral(n - 1)
			} else {
				lits[i] = NegativeLiteral(-n - 1)
			}
		}
		if err := s.AddClause(lits); err != nil {
			panic(err)
		}
	}
	return s
}

func assertSAT(t *testing.T, s *Solver) []bool {
	t.Helper()
	model, ok := s.Solve()
	if !ok {
		t.Fatalf("expected SAT, got UNSAT")
	}
	if !s.verifyModel(model) {
		t.Fatalf("model %v does not satisfy all clauses", model)
	}
	return model
}

func assertUNSAT(t *testing.T, s *Solver) {
	t.Helper()
	if _, ok := s.Solve(); ok {
		t.Fatalf("expected UNSAT, got SAT")
	}
}

// Scenario 1: p cnf 1 1 / 1 0 -> SAT, x1 = true.
func TestSolveUnitPositive(t *testing.T) {
	s := build(1, [][]int{{1}})
	model := assertSAT(t, s)
	if !model[0] {
		t.Fatalf("expected x1=true, got %v", model)
	}
}

// Scenario 2: p cnf 1 1 / -1 0 -> SAT, x1 = false.
func TestSolveUnitNegative(t *testing.T) {
	s := build(1, [][]int{{-1}})
	model := assertSAT(t, s)
	if model[0] {
		t.Fatalf("expected x1=false, got %v", model)
	}
}

// Scenario 3: p cnf 1 2 / 1 0 / -1 0 -> UNSAT.
func TestSolveConflictingUnits(t *testing.T) {
	s := build(1, [][]int{{1}, {-1}})
	assertUNSAT(t, s)
}

// Scenario 4: p cnf 2 1 / 1 -2 0 -> SAT.
func TestSolveSimpleClause(t *testing.T) {
	s := build(2, [][]int{{1, -2}})
	assertSAT(t, s)
}

// Scenario 5: p cnf 3 5, five clauses including a forced unit -> SAT.
func TestSolveFiveClauses(t *testing.T) {
	s := build(3, [][]int{
		{1, 2, -3},
		{1, -2, 3},
		{-1, 2, 3},
		{-1, -2, -3},
		{3},
	})
	assertSAT(t, s)
}

// Scenario 6: p cnf 3 4, a positive 3-clause contradicted by three unit
// negations -> UNSAT.
func TestSolveUnsatWithUnits(t *testing.T) {
	s := build(3, [][]int{
		{1, 2, 3},
		{-1},
		{-2},
		{-3},
	})
	assertUNSAT(t, s)
}

// An empty clause is unsatisfiable by construction, checked before search.
func TestSolveEmptyClauseIsUnsat(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	if err := s.AddClause(nil); err != nil {
		t.Fatalf("AddClause(nil): %v", err)
	}
	assertUNSAT(t, s)
}

// A formula with no clauses at all is trivially satisfiable.
func TestSolveNoClausesIsSat(t *testing.T) {
	s := NewDefaultSolver()
	s.AddVariable()
	s.AddVariable()
	assertSAT(t, s)
}

// Regression case that forces several rounds of conflict-driven learning
// and non-chronological backjumping: a pigeonhole-style instance that is
// unsatisfiable.
func TestSolvePigeonholeUnsat(t *testing.T) {
	// 3 pigeons, 2 holes: each pigeon in at least one hole, no hole holds
	// two pigeons. Variable v(p,h) = p*2+h+1 (1-based).
	v := func(p, h int) int { return p*2 + h + 1 }
	var clauses [][]int
	for p := 0; p < 3; p++ {
		clauses = append(clauses, []int{v(p, 0), v(p, 1)})
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	s := build(6, clauses)
	assertUNSAT(t, s)
}

func TestSolveDeterministic(t *testing.T) {
	clauses := [][]int{
		{1, 2, -3},
		{1, -2, 3},
		{-1, 2, 3},
		{-1, -2, -3},
		{3},
	}
	first := assertSAT(t, build(3, clauses))
	for i := 0; i < 5; i++ {
		again := assertSAT(t, build(3, clauses))
		for v := range first {
			if first[v] != again[v] {
				t.Fatalf("non-deterministic result on run %d: %v vs %v", i, first, again)
			}
		}
	}
}

func TestHotVariablesAfterConflicts(t *testing.T) {
	v := func(p, h int) int { return p*2 + h + 1 }
	var clauses [][]int
	for p := 0; p < 3; p++ {
		clauses = append(clauses, []int{v(p, 0), v(p, 1)})
	}
	for h := 0; h < 2; h++ {
		for p1 := 0; p1 < 3; p1++ {
			for p2 := p1 + 1; p2 < 3; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	s := build(6, clauses)
	assertUNSAT(t, s)
	if s.TotalConflicts == 0 {
		t.Fatalf("expected at least one conflict on an unsatisfiable instance")
	}
	if got := s.HotVariables(3); len(got) == 0 {
		t.Fatalf("expected at least one hot variable after conflicts, got none")
	}
}
