package cycle

import (
	"fmt"

	"longcycle/internal/graph"
	"longcycle/internal/sat"
)

// Result is the terminal state of a search: the longest cycle found at or above
// the target length, or exhaustion of the whole trial range.
type Result struct {
	Found       bool
	Length      int64
	Cycle       []int64
	Diagnostics []string
}

type Finder struct {
	//** Dependencies
	solver   sat.SATSolver
	progress func(length int64, outcome sat.Outcome)
}

func NewFinder(solver sat.SATSolver) *Finder {
	return &Finder{solver: solver}
}

// OnTrial registers a callback invoked after every trial length, decided or not.
func (finder *Finder) OnTrial(callback func(length int64, outcome sat.Outcome)) {
	finder.progress = callback
}

// Find scans trial lengths from g.Nodes down to target and stops at the first
// satisfiable one, which is therefore the longest in range. The scan is linear:
// cycle existence is not monotonic in length, so a binary search over lengths
// would be unsound.
func (finder *Finder) Find(g graph.Graph, target int64) (Result, error) {
	if target < 3 {
		return Result{}, fmt.Errorf("target length must be at least 3: %v", target)
	} else if target > g.Nodes {
		return Result{}, fmt.Errorf("target length %v exceeds the %v-node graph", target, g.Nodes)
	}

	result := Result{}
	for length := g.Nodes; length >= target; length-- {
		instance := Encode(g, length)
		outcome := finder.solver.Solve(instance)

		if finder.progress != nil {
			finder.progress(length, outcome)
		}

		switch outcome.Status {
		case sat.Sat:
			result.Found = true
			result.Length = length
			result.Cycle = Decode(outcome.Model, length)
			return result, nil
		case sat.Unknown:
			// Inconclusive trials are treated like unsatisfiable ones: record
			// the reason and keep descending.
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("length %v: %v", length, outcome.Diagnostic))
		}
	}

	return result, nil
}
