package sat

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type Status int

const (
	Unknown Status = iota
	Sat
	Unsat
)

// Outcome is a solver verdict. Unsat and Unknown are ordinary values rather than
// errors: the search treats both as "keep descending", and Unknown additionally
// carries a diagnostic for the caller.
type Outcome struct {
	Status     Status
	Model      Solution
	Diagnostic string
	Output     string // raw solver stdout, kept for statistics passthrough
}

func satisfiable(model Solution) Outcome {
	return Outcome{Status: Sat, Model: model}
}

func unsatisfiable() Outcome {
	return Outcome{Status: Unsat}
}

func inconclusive(diagnostic string) Outcome {
	return Outcome{Status: Unknown, Diagnostic: diagnostic}
}

// ParseOutcome scans line-oriented solver output for the "s ..." verdict and
// collects every nonzero literal from the "v ..." model lines. Malformed tokens
// on a model line are skipped, not fatal.
func ParseOutcome(solverOutput string) Outcome {
	lines := strings.Split(solverOutput, "\n")

	if !lo.SomeBy(lines, func(line string) bool { return strings.HasPrefix(line, "s SATISFIABLE") }) {
		if lo.SomeBy(lines, func(line string) bool { return strings.HasPrefix(line, "s UNSATISFIABLE") }) {
			return unsatisfiable()
		}
		return inconclusive("no satisfiability verdict in solver output")
	}

	modelLines := lo.Filter(lines, func(line string, _ int) bool {
		return len(line) > 0 && line[0] == 'v'
	})

	model := Solution{}
	for _, line := range modelLines {
		for _, token := range strings.Fields(line)[1:] {
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil || value == 0 {
				continue
			}
			model = append(model, value)
		}
	}

	return satisfiable(model)
}
