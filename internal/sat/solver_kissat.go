package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

type kissatSolver struct {
	path string
}

// NewKissatSolver returns a solver that feeds the DIMACS form of each instance
// into kissat's standard input, so no workfile is involved. An empty path falls
// back to the config file and then to "kissat" on PATH.
func NewKissatSolver(path string) SATSolver {
	if path == "" {
		path = executablePath("kissat")
	}
	return &kissatSolver{path: path}
}

func (solver *kissatSolver) Solve(instance SAT) Outcome {
	dimacs := instance.ToDIMACS()

	ctx, cancel := context.WithTimeout(context.Background(), SolveTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, solver.path, "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	err := cmd.Run()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return inconclusive(fmt.Sprintf("solver timed out after %v", SolveTimeout))
	}
	if err != nil && cmd.ProcessState == nil {
		if errors.Is(err, exec.ErrNotFound) {
			return inconclusive(fmt.Sprintf("solver executable not found at %v", solver.path))
		}
		return inconclusive(fmt.Sprintf("solver could not be started: %v", err))
	}

	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return inconclusive(fmt.Sprintf("solver crashed with code %v: %v", cmd.ProcessState.ExitCode(), stdErr.String()))
	} else if cmd.ProcessState.ExitCode() == 20 {
		outcome := unsatisfiable()
		outcome.Output = stdOut.String()
		return outcome
	}

	outcome := ParseOutcome(stdOut.String())
	outcome.Output = stdOut.String()
	return outcome
}
