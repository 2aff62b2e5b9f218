package sat

// propagate drains the pending-variable queue, running two-watched-literal
// unit propagation as described in spec.md §4.7. It returns the index of a
// falsified clause on conflict; callers must hand that index to conflict
// analysis before doing anything else with the solver.
//
// A single call processes one propagation batch: every variable enqueued,
// directly or as a consequence of propagation within the same call, is
// visited at most once (spec.md §9, "Visited set in propagation").
func (s *Solver) propagate() (conflict int, hasConflict bool) {
	s.visited.Clear()

	for s.propQueue.Size() > 0 {
		v := s.propQueue.Pop()
		if s.visited.Contains(v) {
			continue
		}
		s.visited.Add(v)

		snapshot := append([]int(nil), s.watch.list(v)...)
		for _, cidx := range snapshot {
			tc := s.clauses.get(cidx)

			slot := -1
			switch v {
			case tc.watched[0].VarID():
				slot = 0
			case tc.watched[1].VarID():
				slot = 1
			}
			if slot == -1 {
				// Already moved off v earlier in this same snapshot.
				continue
			}
			if s.assigns.litValue(tc.watched[slot]) == True {
				continue
			}

			other := tc.watched[1-slot]
			replaced := false
			for _, lit := range tc.literals {
				if lit.VarID() == v || lit == other {
					continue
				}
				if s.assigns.litValue(lit) == False {
					continue
				}
				tc.watched[slot] = lit
				s.watch.remove(v, cidx)
				s.watch.register(lit.VarID(), cidx)
				replaced = true
				break
			}
			if replaced {
				continue
			}

			switch s.assigns.litValue(other) {
			case True:
				// Clause already satisfied through its other watched literal.
			case Unknown:
				s.assigns.assign(other.VarID(), other.IsPositive(), s.trail.decisionLevel())
				s.trail.pushPropagated(other.VarID(), cidx)
				s.propQueue.Push(other.VarID())
			case False:
				s.propQueue.Clear()
				return cidx, true
			}
		}
	}

	return 0, false
}
