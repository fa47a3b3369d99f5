package sat

import (
	"fmt"
	"os"
	"strings"
)

// Solution is the set of signed literals decided by a solver, one per variable.
type Solution []int64

type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// WriteDIMACS writes the instance to path, overwriting any previous trial's file.
func (s SAT) WriteDIMACS(path string) error {
	return os.WriteFile(path, []byte(s.ToDIMACS()), 0666)
}
