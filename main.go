package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/lhartwell/dpllsat/internal/cnfgen"
	"github.com/lhartwell/dpllsat/internal/dimacs"
	"github.com/lhartwell/dpllsat/internal/sat"
)

var (
	flagCPUProfile = flag.Bool("cpuprof", false, "save pprof CPU profile in cpuprof")
	flagMemProfile = flag.Bool("memprof", false, "save pprof memory profile in memprof")
	flagGzip       = flag.Bool("gzip", false, "the instance file is gzip-compressed")
	flagVerbose    = flag.Bool("v", false, "log search diagnostics to stderr")
	flagEmit       = flag.String("emit", "", "write the satisfying assignment to this file in DIMACS form ('-' for stdout)")

	flagGenVars    = flag.Int("gen-vars", 0, "generate a random planted instance with this many variables instead of reading a file")
	flagGenClauses = flag.Int("gen-clauses", 0, "number of clauses for -gen-vars")
	flagGenK       = flag.Int("gen-k", 3, "literals per clause for -gen-vars")
	flagGenProb    = flag.Float64("gen-prob", 0.5, "probability a clause literal agrees with the planted assignment")
	flagGenSeed    = flag.Int64("gen-seed", 1, "random seed for -gen-vars")
)

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	gzip         bool
	verbose      bool
	emitPath     string

	genVars    int
	genClauses int
	genK       int
	genProb    float64
	genSeed    int64
}

func parseConfig() (*config, error) {
	flag.Parse()

	cfg := &config{
		memProfile: *flagMemProfile,
		cpuProfile: *flagCPUProfile,
		gzip:       *flagGzip,
		verbose:    *flagVerbose,
		emitPath:   *flagEmit,
		genVars:    *flagGenVars,
		genClauses: *flagGenClauses,
		genK:       *flagGenK,
		genProb:    *flagGenProb,
		genSeed:    *flagGenSeed,
	}
	if cfg.genVars > 0 {
		return cfg, nil
	}
	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file (or use -gen-vars to generate one)")
	}
	cfg.instanceFile = flag.Arg(0)
	return cfg, nil
}

// stderrLogger is the concrete Logger (spec.md §7) the CLI injects into
// the solver; the solver itself never imports "log" directly.
type stderrLogger struct {
	l *log.Logger
}

func (s stderrLogger) Logf(format string, args ...any) {
	s.l.Printf(format, args...)
}

func loadProblem(cfg *config) (*dimacs.Problem, error) {
	if cfg.genVars > 0 {
		rng := rand.New(rand.NewSource(cfg.genSeed))
		planted := cnfgen.GeneratePlanted(cfg.genVars, cfg.genClauses, cfg.genK, cfg.genProb, rng)
		clauses := make([][]sat.Literal, len(planted.Clauses))
		copy(clauses, planted.Clauses)
		return &dimacs.Problem{Variables: planted.NumVariables, Clauses: clauses}, nil
	}
	return dimacs.ParseDIMACS(cfg.instanceFile, cfg.gzip)
}

func run(cfg *config) error {
	problem, err := loadProblem(cfg)
	if err != nil {
		return fmt.Errorf("could not load instance: %w", err)
	}

	opts := sat.DefaultOptions
	if cfg.verbose {
		opts.Logger = stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
	}
	s := sat.NewSolver(opts)
	if err := dimacs.Instantiate(s, problem); err != nil {
		return fmt.Errorf("could not instantiate solver: %w", err)
	}

	fmt.Printf("c variables:  %d\n", problem.Variables)
	fmt.Printf("c clauses:    %d\n", len(problem.Clauses))

	t := time.Now()
	model, ok := s.Solve()
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	if ok {
		fmt.Printf("c status:     SAT\n")
	} else {
		fmt.Printf("c status:     UNSAT\n")
	}

	if ok && cfg.emitPath != "" {
		if err := emitAssignment(cfg.emitPath, model); err != nil {
			return fmt.Errorf("could not emit assignment: %w", err)
		}
	}

	return nil
}

func emitAssignment(path string, model []bool) error {
	if path == "-" {
		return dimacs.WriteAssignment(os.Stdout, model)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dimacs.WriteAssignment(f, model)
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
