// Package cnfgen generates random k-SAT instances with a known planted
// satisfying assignment, the stress-test fixture of spec.md §8 ("random
// k-SAT instances generated with a known planted satisfying assignment
// must be reported SAT").
package cnfgen

import (
	"math/rand"

	"github.com/lhartwell/dpllsat/internal/sat"
)

// Planted is a randomly generated k-SAT instance together with the
// assignment it was built to satisfy.
type Planted struct {
	NumVariables int
	Clauses      [][]sat.Literal
	Assignment   []bool
}

// GeneratePlanted builds a random instance of numClauses clauses over numVars
// variables, each clause exactly k literals wide. rng drives every random
// choice, so a fixed seed reproduces the exact same instance.
//
// probTrue is the probability that a clause literal is drawn consistent
// with the planted assignment; at probTrue = 1 every clause is satisfied
// by the planted assignment in every literal (trivial), while lower values
// make the instance harder without ever risking unsatisfiability, since
// the first literal of every clause is always drawn consistent with the
// plant (spec.md §9 supplements the random generator described in
// original_source's gen_random_sat).
func GeneratePlanted(numVars, numClauses, k int, probTrue float64, rng *rand.Rand) *Planted {
	if k > numVars {
		panic("cnfgen: k must not exceed numVars")
	}

	assignment := make([]bool, numVars)
	for v := range assignment {
		assignment[v] = rng.Intn(2) == 1
	}

	clauses := make([][]sat.Literal, 0, numClauses)
	for c := 0; c < numClauses; c++ {
		clauses = append(clauses, generateClause(assignment, k, probTrue, rng))
	}

	return &Planted{
		NumVariables: numVars,
		Clauses:      clauses,
		Assignment:   assignment,
	}
}

func generateClause(assignment []bool, k int, probTrue float64, rng *rand.Rand) []sat.Literal {
	used := make(map[int]bool, k)
	clause := make([]sat.Literal, 0, k)

	for len(clause) < k {
		v := rng.Intn(len(assignment))
		if used[v] {
			continue
		}
		used[v] = true

		sign := assignment[v]
		if len(clause) > 0 && rng.Float64() >= probTrue {
			sign = !sign
		}
		clause = append(clause, sat.Lit(v, sign))
	}
	return clause
}

// ToProblem converts a Planted instance into a sat.Problem, discarding the
// planted assignment (callers that want to check against it should keep
// the original Planted value).
func (p *Planted) ToProblem() *sat.Problem {
	return &sat.Problem{
		NumVariables: p.NumVariables,
		Clauses:      p.Clauses,
	}
}
