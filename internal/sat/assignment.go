package sat

// assignment records the state of a single variable: either unassigned, or
// assigned with a sign and the decision level at which it was first set
// (spec.md §3, VariableState).
type assignment struct {
	value LBool
	level int
}

// assignmentStore holds the per-variable assignment state for every
// variable known to the solver. It is the "Assignment store" leaf
// component of spec.md §2.
type assignmentStore struct {
	vars []assignment
}

func newAssignmentStore() *assignmentStore {
	return &assignmentStore{}
}

// addVariable grows the store by one unassigned variable and returns its id.
func (a *assignmentStore) addVariable() int {
	id := len(a.vars)
	a.vars = append(a.vars, assignment{value: Unknown, level: -1})
	return id
}

func (a *assignmentStore) numVariables() int {
	return len(a.vars)
}

// isAssigned reports whether variable v currently has a value.
func (a *assignmentStore) isAssigned(v int) bool {
	return a.vars[v].value != Unknown
}

// level returns the decision level at which v was assigned. The result is
// unspecified if v is not currently assigned.
func (a *assignmentStore) level(v int) int {
	return a.vars[v].level
}

// sign returns the sign v was assigned. The result is unspecified if v is
// not currently assigned.
func (a *assignmentStore) sign(v int) bool {
	return a.vars[v].value == True
}

// assign sets variable v to the given sign at the given decision level.
func (a *assignmentStore) assign(v int, sign bool, level int) {
	a.vars[v] = assignment{value: Lift(sign), level: level}
}

// unassign resets v back to Unassigned.
func (a *assignmentStore) unassign(v int) {
	a.vars[v] = assignment{value: Unknown, level: -1}
}

// litValue returns the lifted boolean value of a literal given the current
// assignment of its variable: True if the literal is satisfied, False if
// falsified, Unknown if its variable is unassigned.
func (a *assignmentStore) litValue(l Literal) LBool {
	v := a.vars[l.VarID()]
	if v.value == Unknown {
		return Unknown
	}
	if v.value == Lift(l.IsPositive()) {
		return True
	}
	return False
}
