package main

import (
	"flag"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/samber/lo"

	"longcycle/internal/cycle"
	"longcycle/internal/graph"
	"longcycle/internal/sat"
)

var validSolvers = []string{"glucose", "kissat", "gophersat"}

func main() {
	// Define arguments
	inputPtr := flag.String("input", "./instances/complex.in", "Path to the graph instance file")
	outputPtr := flag.String("output", "formula.cnf", "Path to the CNF workfile written before each solver run")
	solverPtr := flag.String("solver", "glucose", "SAT-Solver to use. Allowed values are: \"glucose\", \"kissat\", \"gophersat\", where \"glucose\" is the default")
	solverPathPtr := flag.String("solver-path", "", "Path to the solver executable; overrides config.json and PATH lookup")
	verbosePtr := flag.Bool("verb", false, "Enable per-trial progress and solver statistics")
	flag.Parse()

	solverName := strings.ToLower(*solverPtr)
	verbose := *verbosePtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverName) {
		log.Fatalf("%v is not a valid solver", solverName)
	}

	// Extract instance
	instance, err := graph.ParseInstance(*inputPtr)
	if err != nil {
		log.Fatalf("cannot parse instance file: %v", err)
	}
	if verbose && instance.Skipped > 0 {
		log.Printf("skipped %v malformed edge lines", instance.Skipped)
	}

	// Initialize engines
	solvers := map[string]func() sat.SATSolver{
		"glucose":   func() sat.SATSolver { return sat.NewGlucoseSolver(*solverPathPtr, *outputPtr, verbose) },
		"kissat":    func() sat.SATSolver { return sat.NewKissatSolver(*solverPathPtr) },
		"gophersat": func() sat.SATSolver { return sat.NewGophersatSolver() },
	}
	finder := cycle.NewFinder(solvers[solverName]())

	g := instance.Graph
	fmt.Printf("Graph with %v nodes... Searching for cycle >= %v...\n", g.Nodes, instance.Target)

	if verbose {
		finder.OnTrial(func(length int64, outcome sat.Outcome) {
			switch outcome.Status {
			case sat.Sat:
				fmt.Printf("Trying length %v... SAT\n", length)
			case sat.Unsat:
				fmt.Printf("Trying length %v... UNSAT\n", length)
			default:
				fmt.Printf("Trying length %v... UNKNOWN (%v)\n", length, outcome.Diagnostic)
			}
			printStatistics(outcome)
		})
	}

	// Search for the longest cycle
	result, err := finder.Find(g, instance.Target)
	if err != nil {
		log.Fatalf("cannot start the search: %v", err)
	}

	if !result.Found {
		for _, diagnostic := range result.Diagnostics {
			log.Printf("inconclusive trial: %v", diagnostic)
		}
		fmt.Printf("\nNo simple cycle of length >= %v exists\n", instance.Target)
		return
	}

	if !cycle.VerifyCycle(g, result.Cycle) {
		log.Printf("solver returned a model that does not trace a valid cycle")
	}

	readable := strings.Join(lo.Map(result.Cycle, func(vertex int64, _ int) string {
		return fmt.Sprintf("%v", vertex)
	}), " -> ")

	fmt.Println(strings.Repeat("-", 20))
	fmt.Printf("Found Cycle of Length %v:\n", result.Length)
	fmt.Printf("%v -> %v\n", readable, result.Cycle[0])
	fmt.Println(strings.Repeat("-", 20))
}

// printStatistics relays the solver's "c "-prefixed statistics lines.
func printStatistics(outcome sat.Outcome) {
	for _, line := range strings.Split(outcome.Output, "\n") {
		if strings.HasPrefix(line, "c ") {
			fmt.Println(line)
		}
	}
}
