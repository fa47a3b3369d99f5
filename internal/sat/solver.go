package sat

import "time"

// SolveTimeout bounds the wall clock of a single solver invocation.
const SolveTimeout = 10 * time.Minute

// SATSolver decides a single CNF instance. Implementations never return errors:
// anything that prevents a SAT/UNSAT verdict is reported as an Unknown outcome
// with a diagnostic.
type SATSolver interface {
	Solve(instance SAT) Outcome
}
