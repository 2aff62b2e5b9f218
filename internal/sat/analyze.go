package sat

// analyzeConflict implements resolution-based conflict analysis and
// non-chronological backjumping (spec.md §4.8) for a conflict detected on
// clauses[conflictIdx]. It reports false when the formula is proven UNSAT.
//
// The trail is popped and mutated in place as analysis proceeds: unassigning
// a variable here is a real, permanent change to the solver's state, not a
// simulation over a copy.
func (s *Solver) analyzeConflict(conflictIdx int) bool {
	s.TotalConflicts++
	learnt := append([]Literal(nil), s.clauses.get(conflictIdx).literals...)

	for !s.trail.isEmpty() {
		e := s.trail.pop()
		s.heat.bump(e.varID)

		switch e.kind {
		case first:
			s.trail.pushBack(trailEntry{varID: e.varID, kind: second})
			return true

		case second:
			s.assigns.unassign(e.varID)
			s.trail.level--

		case propagated:
			s.assigns.unassign(e.varID)
			resolvent, ok := resolve(learnt, s.clauses.get(e.clause).literals)
			if !ok {
				continue
			}
			learnt = resolvent
			if countAtLevel(s, learnt, s.trail.decisionLevel()) == 1 {
				return s.backjump(learnt)
			}
		}
	}

	return false
}

// countAtLevel counts the literals of lits whose variable is unassigned or
// assigned at decision level, the 1-UIP check of spec.md §4.8 step 2.
func countAtLevel(s *Solver, lits []Literal, level int) int {
	n := 0
	for _, lit := range lits {
		v := lit.VarID()
		if !s.assigns.isAssigned(v) || s.assigns.level(v) == level {
			n++
		}
	}
	return n
}

// backjump implements spec.md §4.8 step 3: pop the trail until the decision
// level drops to the highest level among learnt's literals that are not at
// the current (asserting) level, then install the learnt clause.
func (s *Solver) backjump(learnt []Literal) bool {
	cur := s.trail.decisionLevel()
	target := 0
	for _, lit := range learnt {
		v := lit.VarID()
		if !s.assigns.isAssigned(v) {
			continue
		}
		lvl := s.assigns.level(v)
		if lvl != cur && lvl > target {
			target = lvl
		}
	}

	for !s.trail.isEmpty() {
		e := s.trail.pop()
		switch e.kind {
		case propagated:
			s.assigns.unassign(e.varID)
		case first, second:
			if s.trail.decisionLevel() <= target {
				s.trail.pushBack(e)
				s.installLearnt(learnt)
				return true
			}
			s.assigns.unassign(e.varID)
			s.trail.level--
		}
	}

	if target != 0 {
		// The trail drained before reaching a target above level 0: per
		// spec.md §9's open question on this case, treat it as UNSAT.
		return false
	}

	s.installLearnt(learnt)
	if !s.runRootUnitPropagation() {
		return false
	}
	if !s.tryNextDecision(0) {
		panic("sat: installing an asserting unit clause left no free variable")
	}
	return true
}

// installLearnt implements the clause-learning watch-selection of spec.md
// §4.9: choose the asserting literal and the highest-level falsified
// literal (or any two literals, when neither applies) as the watched pair,
// append the clause to the store, and register it in the watch index.
func (s *Solver) installLearnt(learnt []Literal) {
	s.learntSz.Add(float64(len(learnt)))

	var unassigned []Literal
	var assignedLits []Literal
	maxIdx, maxLevel := -1, -1
	for _, lit := range learnt {
		if s.assigns.isAssigned(lit.VarID()) {
			assignedLits = append(assignedLits, lit)
			if lvl := s.assigns.level(lit.VarID()); lvl > maxLevel {
				maxLevel = lvl
				maxIdx = len(assignedLits) - 1
			}
		} else {
			unassigned = append(unassigned, lit)
		}
	}

	var w0, w1 Literal
	switch {
	case len(learnt) == 1:
		w0, w1 = learnt[0], learnt[0]
	case len(unassigned) >= 2:
		w0, w1 = unassigned[0], unassigned[1]
	case len(unassigned) == 1:
		w0, w1 = unassigned[0], assignedLits[maxIdx]
	default:
		w0, w1 = learnt[0], learnt[1]
	}

	idx := s.clauses.add(taggedClause{literals: learnt, learnt: true, watched: [2]Literal{w0, w1}})
	s.watch.register(w0.VarID(), idx)
	s.watch.register(w1.VarID(), idx)
}
