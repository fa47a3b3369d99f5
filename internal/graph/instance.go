package graph

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Instance is a parsed graph problem: the graph plus the minimum cycle length
// the search must reach.
type Instance struct {
	Graph   Graph
	Target  int64
	Skipped int // edge lines dropped by the lenient parser
}

// ParseInstance reads an instance file: a "<nodes> <edges> <target>" header
// followed by one "<u> <v>" line per edge. Malformed or out-of-range edge lines
// are skipped and counted rather than rejected; only an unreadable file or a
// broken header is an error.
func ParseInstance(path string) (Instance, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %w", err)
	}
	return parseInstance(string(content))
}

func parseInstance(content string) (Instance, error) {
	lines := strings.Split(content, "\n")

	header := strings.Fields(lines[0])
	if len(header) < 3 {
		return Instance{}, fmt.Errorf("invalid header line: %q", lines[0])
	}
	nodes, err := strconv.ParseInt(header[0], 10, 64)
	if err != nil || nodes < 1 {
		return Instance{}, fmt.Errorf("invalid node count %q", header[0])
	}
	target, err := strconv.ParseInt(header[2], 10, 64)
	if err != nil {
		return Instance{}, fmt.Errorf("invalid target length %q", header[2])
	}

	edges := make([]Edge, 0, len(lines)-1)
	skipped := 0
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		} else if len(fields) < 2 {
			skipped++
			continue
		}

		u, errU := strconv.ParseInt(fields[0], 10, 64)
		v, errV := strconv.ParseInt(fields[1], 10, 64)
		if errU != nil || errV != nil || u < 1 || u > nodes || v < 1 || v > nodes {
			skipped++
			continue
		}

		edges = append(edges, Edge{U: u, V: v})
	}

	return Instance{Graph: Build(nodes, edges), Target: target, Skipped: skipped}, nil
}
