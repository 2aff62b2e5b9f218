package sat

// Problem is the immutable input to the solver: a variable count and an
// ordered list of original clauses (spec.md §3, "Problem").
type Problem struct {
	NumVariables int
	Clauses      [][]Literal
}

// Options configures a Solver's diagnostics. The search loop itself has no
// tunable parameters: spec.md's non-goals exclude restart policies and
// branching-heuristic optimization, so there is nothing else to configure.
type Options struct {
	Logger Logger
}

// DefaultOptions is the zero-configuration option set: a no-op logger.
var DefaultOptions = Options{Logger: NopLogger{}}

// Solver is the CDCL decision engine described in spec.md: iterative DPLL
// search over two-watched-literal unit propagation, with resolution-based
// conflict analysis driving non-chronological backjumps. It is strictly
// single-threaded and performs no I/O of its own (spec.md §5); everything
// it reports goes through the injected Logger.
type Solver struct {
	problemClauses [][]Literal
	unsatAtRoot    bool

	assigns *assignmentStore
	clauses *clauseStore
	watch   *watchIndex
	trail   *trail

	polarity []bool

	propQueue *Queue[int]
	visited   *ResetSet

	heat     *conflictHeat
	learntSz EMA

	logger Logger

	TotalConflicts  int64
	TotalDecisions  int64
	TotalIterations int64
}

// NewSolver returns an empty Solver ready to receive variables and clauses
// via AddVariable/AddClause.
func NewSolver(opts Options) *Solver {
	if opts.Logger == nil {
		opts.Logger = NopLogger{}
	}
	return &Solver{
		assigns:   newAssignmentStore(),
		clauses:   newClauseStore(),
		watch:     newWatchIndex(),
		trail:     newTrail(),
		propQueue: NewQueue[int](128),
		visited:   &ResetSet{},
		heat:      newConflictHeat(),
		learntSz:  NewEMA(0.9),
		logger:    opts.Logger,
	}
}

// NewDefaultSolver returns a Solver with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// Construct builds a Solver from an immutable Problem in one step,
// satisfying the O(N + total-clause-length) construction bound of
// spec.md §6.
func Construct(problem *Problem, opts Options) *Solver {
	s := NewSolver(opts)
	for i := 0; i < problem.NumVariables; i++ {
		s.AddVariable()
	}
	for _, clause := range problem.Clauses {
		if err := s.AddClause(clause); err != nil {
			// AddClause currently never returns an error (an empty clause
			// only marks the solver UNSAT), so this cannot trigger.
			panic(err)
		}
	}
	return s
}

// AddVariable grows the solver by one fresh, unassigned variable and
// returns its id.
func (s *Solver) AddVariable() int {
	id := s.assigns.addVariable()
	s.watch.addVariable()
	s.visited.Expand()
	s.heat.addVariable()
	return id
}

// NumVariables returns the number of variables currently known to the
// solver.
func (s *Solver) NumVariables() int {
	return s.assigns.numVariables()
}

// AddClause records one original clause. Clauses are only materialized
// into the watched clause store when Solve runs (spec.md §4.2/§4.4 happen
// once, in order, before the first decision).
func (s *Solver) AddClause(literals []Literal) error {
	if len(literals) == 0 {
		s.unsatAtRoot = true
		return nil
	}
	s.problemClauses = append(s.problemClauses, append([]Literal(nil), literals...))
	return nil
}

// Solve runs the CDCL search to completion (spec.md §4.10) and returns a
// satisfying model, or ok=false if the formula is unsatisfiable.
func (s *Solver) Solve() (model []bool, ok bool) {
	if s.unsatAtRoot {
		s.logger.Logf("solved: unsat (empty clause at construction)")
		return nil, false
	}
	if !s.runInitialUnitPropagation() {
		s.logger.Logf("solved: unsat (conflict during initial unit propagation)")
		return nil, false
	}

	s.buildClauseStoreAndWatches()

	if !s.tryNextDecision(0) {
		return s.finish()
	}

	for {
		s.TotalIterations++
		if s.TotalIterations%10000 == 0 {
			s.logger.Logf("iterations=%d conflicts=%d decisions=%d clauses=%d avgLearntWidth=%.2f",
				s.TotalIterations, s.TotalConflicts, s.TotalDecisions, s.clauses.len(), s.learntSz.Value())
		}

		i := s.trail.top().varID
		s.realizeTop()

		if conflictIdx, hasConflict := s.propagate(); hasConflict {
			if !s.analyzeConflict(conflictIdx) {
				s.logger.Logf("solved: unsat (trail exhausted during conflict analysis) conflicts=%d", s.TotalConflicts)
				return nil, false
			}
			continue
		}

		if !s.tryNextDecision(i) {
			return s.finish()
		}
	}
}

// runInitialUnitPropagation implements spec.md §4.2: repeatedly scan every
// original clause to a fixpoint, forcing unit facts at decision level 0
// without consuming the decision stack. It returns false if some clause is
// already falsified under the partial assignment.
func (s *Solver) runInitialUnitPropagation() bool {
	for {
		changed := false
		for _, clause := range s.problemClauses {
			satisfied := false
			unassignedCount := 0
			var unassignedLit Literal

			for _, lit := range clause {
				switch s.assigns.litValue(lit) {
				case True:
					satisfied = true
				case Unknown:
					unassignedCount++
					unassignedLit = lit
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return false
			}
			if unassignedCount == 1 {
				s.assigns.assign(unassignedLit.VarID(), unassignedLit.IsPositive(), 0)
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// runRootUnitPropagation mirrors runInitialUnitPropagation but scans the
// full clause store (original clauses plus every clause learnt so far)
// rather than just the original problem clauses. It is used after a
// backjump installs a new clause at decision level 0 (spec.md §4.8 step 3,
// original_source's assign_unit_clause), so that a just-learnt unit clause
// is force-assigned immediately instead of waiting for a later decision to
// stumble onto its variable.
func (s *Solver) runRootUnitPropagation() bool {
	for {
		changed := false
		for i := 0; i < s.clauses.len(); i++ {
			clause := s.clauses.get(i).literals
			satisfied := false
			unassignedCount := 0
			var unassignedLit Literal

			for _, lit := range clause {
				switch s.assigns.litValue(lit) {
				case True:
					satisfied = true
				case Unknown:
					unassignedCount++
					unassignedLit = lit
				}
				if satisfied {
					break
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return false
			}
			if unassignedCount == 1 {
				s.assigns.assign(unassignedLit.VarID(), unassignedLit.IsPositive(), 0)
				changed = true
			}
		}
		if !changed {
			return true
		}
	}
}

// buildClauseStoreAndWatches implements spec.md §4.4 (watch initialization)
// followed by §4.3 (the one-shot polarity heuristic).
func (s *Solver) buildClauseStoreAndWatches() {
	for _, clause := range s.problemClauses {
		var watched [2]Literal
		if len(clause) >= 2 {
			watched = [2]Literal{clause[0], clause[1]}
		} else {
			watched = [2]Literal{clause[0], clause[0]}
		}

		idx := s.clauses.add(taggedClause{literals: clause, learnt: false, watched: watched})
		if len(clause) >= 2 {
			s.watch.register(watched[0].VarID(), idx)
			s.watch.register(watched[1].VarID(), idx)
		}
	}
	s.polarity = computePolarity(s.problemClauses, s.NumVariables())
}

// tryNextDecision implements spec.md §4.5: scan variable ids in [from, N)
// for the first unassigned one and push a fresh decision for it.
func (s *Solver) tryNextDecision(from int) bool {
	for v := from; v < s.NumVariables(); v++ {
		if !s.assigns.isAssigned(v) {
			s.trail.pushDecision(v)
			s.TotalDecisions++
			return true
		}
	}
	return false
}

// realizeTop implements spec.md §4.6: apply the trail's top entry to the
// assignment store and seed the propagation queue with its variable.
func (s *Solver) realizeTop() {
	e := s.trail.top()
	switch e.kind {
	case first:
		s.assigns.assign(e.varID, s.polarity[e.varID], s.trail.decisionLevel())
	case second:
		s.assigns.assign(e.varID, !s.assigns.sign(e.varID), s.trail.decisionLevel())
	}
	s.propQueue.Clear()
	s.propQueue.Push(e.varID)
}

// finish extracts and sanity-checks the model once every variable is
// assigned (spec.md §7: an internal invariant violation here means the
// solver itself is wrong, not that the input was bad, so it aborts the
// process rather than returning an error).
func (s *Solver) finish() ([]bool, bool) {
	model := make([]bool, s.NumVariables())
	for v := range model {
		model[v] = s.assigns.sign(v)
	}
	if !s.verifyModel(model) {
		panic("sat: produced model does not satisfy the original formula")
	}
	s.logger.Logf("solved: sat conflicts=%d decisions=%d hottest=%v",
		s.TotalConflicts, s.TotalDecisions, s.heat.topK(5))
	return model, true
}

func (s *Solver) verifyModel(model []bool) bool {
	for _, clause := range s.problemClauses {
		satisfied := false
		for _, lit := range clause {
			if model[lit.VarID()] == lit.IsPositive() {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// HotVariables returns up to k variable ids most frequently touched during
// conflict analysis, for diagnostics only; nothing in Solve ever consults
// this ranking.
func (s *Solver) HotVariables(k int) []int {
	return s.heat.topK(k)
}
