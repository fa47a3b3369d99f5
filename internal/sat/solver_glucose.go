package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

type glucoseSolver struct {
	path     string
	workfile string
	verbose  bool
}

// NewGlucoseSolver returns a solver that serializes each instance to workfile and
// runs the glucose binary at path on it. An empty path falls back to the config
// file and then to "glucose" on PATH. The workfile is overwritten on every call.
func NewGlucoseSolver(path, workfile string, verbose bool) SATSolver {
	if path == "" {
		path = executablePath("glucose")
	}
	return &glucoseSolver{path: path, workfile: workfile, verbose: verbose}
}

func (solver *glucoseSolver) Solve(instance SAT) Outcome {
	if err := instance.WriteDIMACS(solver.workfile); err != nil {
		return inconclusive(fmt.Sprintf("could not write CNF file to %v: %v", solver.workfile, err))
	}

	verbosity := 0
	if solver.verbose {
		verbosity = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), SolveTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, solver.path, "-model", fmt.Sprintf("-verb=%d", verbosity), solver.workfile)

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
