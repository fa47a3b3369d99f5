package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver. It needs no external binary,
// which also makes it the backend of choice for hermetic tests.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(instance SAT) Outcome {
	clauses := make([][]int, len(instance.Clauses))
	for i, clause := range instance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	pb := solver.ParseSlice(clauses)
	engine := solver.New(pb)

	switch engine.Solve() {
	case solver.Unsat:
		return unsatisfiable()
	case solver.Sat:
	default:
		return inconclusive("gophersat returned an indeterminate status")
	}

	model := engine.Model()
	solution := make(Solution, 0, len(model))
	for i, positive := range model {
		variable := int64(i + 1)
		if positive {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}

	return satisfiable(solution)
}
