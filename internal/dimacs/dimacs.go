// Package dimacs reads and writes the DIMACS CNF format used throughout the
// SAT competition community (spec.md §6, "DIMACS parser/emitter").
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/lhartwell/dpllsat/internal/sat"
)

// Problem is a parsed DIMACS CNF instance: a variable count and its ordered
// clauses, already translated into the solver's Literal encoding.
type Problem struct {
	Variables int
	Clauses   [][]sat.Literal
}

// SolverBuilder is the subset of sat.Solver that Instantiate needs. It lets tests instantiate against a fake without pulling in the
// full solver.
type SolverBuilder interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// ParseDIMACS reads filename as a (possibly gzip-compressed) DIMACS CNF
// file and returns the parsed Problem.
func ParseDIMACS(filename string, gzipped bool) (*Problem, error) {
	r, err := open(filename, gzipped)
	if err != nil {
		return nil, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer r.Close()
	return ParseDIMACSReader(r)
}

// ParseDIMACSReader parses a DIMACS CNF stream, delegating the line-level
// grammar to github.com/rhartert/dimacs and translating its 1-based signed
// integer literals into sat.Literal values.
func ParseDIMACSReader(r io.Reader) (*Problem, error) {
	b := &problemBuilder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacs: parsing: %w", err)
	}
	return &b.problem, nil
}

// problemBuilder implements github.com/rhartert/dimacs's Builder interface,
// translating its 1-based signed-int clauses into sat.Literal values as
// they stream in.
type problemBuilder struct {
	problem Problem
}

func (b *problemBuilder) Problem(kind string, nVars int, nClauses int) error {
	if kind != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q", kind)
	}
	b.problem.Variables = nVars
	b.problem.Clauses = make([][]sat.Literal, 0, nClauses)
	return nil
}

func (b *problemBuilder) Clause(raw []int) error {
	clause := make([]sat.Literal, len(raw))
	for i, l := range raw {
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.problem.Clauses = append(b.problem.Clauses, clause)
	return nil
}

func (b *problemBuilder) Comment(string) error {
	return nil
}

// Instantiate loads p's variables and clauses into s, in order. It is the
// O(N + total-clause-length) construction path of spec.md §6.
func Instantiate(s SolverBuilder, p *Problem) error {
	for i := 0; i < p.Variables; i++ {
		s.AddVariable()
	}
	for _, clause := range p.Clauses {
		if err := s.AddClause(clause); err != nil {
			return fmt.Errorf("dimacs: instantiating clause: %w", err)
		}
	}
	return nil
}

// WriteProblem renders p in DIMACS CNF form (spec.md §8, "DIMACS
// round-trip"). Parsing the output of WriteProblem(p) always reproduces an
// equal Problem.
func WriteProblem(w io.Writer, p *Problem) error {
	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", p.Variables, len(p.Clauses)); err != nil {
		return err
	}
	for _, clause := range p.Clauses {
		if err := writeClause(w, clause); err != nil {
			return err
		}
	}
	return nil
}

func writeClause(w io.Writer, clause []sat.Literal) error {
	var sb strings.Builder
	for _, lit := range clause {
		n := lit.VarID() + 1
		if !lit.IsPositive() {
			n = -n
		}
		fmt.Fprintf(&sb, "%d ", n)
	}
	sb.WriteString("0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteAssignment renders a solver model as a single DIMACS-style line of
// signed integers terminated by 0 — the format ParseModels expects back.
func WriteAssignment(w io.Writer, model []bool) error {
	var sb strings.Builder
	for i, v := range model {
		n := i + 1
		if !v {
			n = -n
		}
		fmt.Fprintf(&sb, "%d ", n)
	}
	sb.WriteString("0\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
