package sat

// taggedClause is a clause together with the bookkeeping the solver needs
// to use it in two-watched-literal propagation (spec.md §3, "Tagged
// clause"). Clauses are immutable once constructed; only the watched pair
// changes over the clause's lifetime.
type taggedClause struct {
	literals []Literal
	learnt   bool
	watched  [2]Literal
}

// clauseStore is the append-only union of original and learnt clauses
// (spec.md §2, "Clause store"). Clauses are referenced by their stable
// index into this store so that learning new clauses never invalidates a
// trail entry's antecedent reference (spec.md §9).
type clauseStore struct {
	clauses []taggedClause
}

func newClauseStore() *clauseStore {
	return &clauseStore{}
}

// add appends c to the store and returns its stable index.
func (cs *clauseStore) add(c taggedClause) int {
	idx := len(cs.clauses)
	cs.clauses = append(cs.clauses, c)
	return idx
}

func (cs *clauseStore) get(idx int) *taggedClause {
	return &cs.clauses[idx]
}

func (cs *clauseStore) len() int {
	return len(cs.clauses)
}

// resolve implements the binary resolution operator of spec.md §4.1.
//
// It returns the resolvent of l and r if the two clauses share at least
// one variable with opposite signs (the pivot); otherwise it returns
// (nil, false). When more than one variable clashes with opposite signs,
// every such variable is removed, which is why resolve always reports
// whether it succeeded rather than which variable was the pivot.
//
// The resolvent keeps every surviving literal of l in its original order,
// followed by every surviving literal of r in its original order. A
// literal of r whose variable also appears in l with the same sign is
// dropped (the l occurrence is kept) even when it is not the clashing
// variable.
func resolve(l, r []Literal) ([]Literal, bool) {
	leftValid := make([]bool, len(l))
	rightValid := make([]bool, len(r))
	for i := range leftValid {
		leftValid[i] = true
	}
	for j := range rightValid {
		rightValid[j] = true
	}

	succeeded := false
	for i := range l {
		for j := range r {
			if l[i].VarID() != r[j].VarID() {
				continue
			}
			if l[i].Sign() != r[j].Sign() {
				leftValid[i] = false
				rightValid[j] = false
				succeeded = true
			} else {
				rightValid[j] = false
			}
		}
	}

	if !succeeded {
		return nil, false
	}

	out := make([]Literal, 0, len(l)+len(r))
	for i, lit := range l {
		if leftValid[i] {
			out = append(out, lit)
		}
	}
	for j, lit := range r {
		if rightValid[j] {
			out = append(out, lit)
		}
	}
	return out, true
}
