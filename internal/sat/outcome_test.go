package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutcomeSatisfiable(t *testing.T) {
	output := "c restarts : 1\n" +
		"s SATISFIABLE\n" +
		"v 1 -2 3\n" +
		"v -4 5 0\n"

	outcome := ParseOutcome(output)

	assert.Equal(t, Sat, outcome.Status)
	assert.Equal(t, Solution{1, -2, 3, -4, 5}, outcome.Model)
}

func TestParseOutcomeUnsatisfiable(t *testing.T) {
	outcome := ParseOutcome("c stats\ns UNSATISFIABLE\n")

	assert.Equal(t, Unsat, outcome.Status)
	assert.Empty(t, outcome.Model)
}

func TestParseOutcomeSkipsMalformedTokens(t *testing.T) {
	outcome := ParseOutcome("s SATISFIABLE\nv 1 oops -2 0\n")

	assert.Equal(t, Sat, outcome.Status)
	assert.Equal(t, Solution{1, -2}, outcome.Model)
}

func TestParseOutcomeNoVerdict(t *testing.T) {
	outcome := ParseOutcome("c solver crashed halfway\n")

	assert.Equal(t, Unknown, outcome.Status)
	assert.NotEmpty(t, outcome.Diagnostic)
}
