package dimacs

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/otclique/otclique/graphview"
)

// ReadGraph parses r as a DIMACS clique/vertex-cover benchmark instance.
func ReadGraph(r io.Reader) (*graphview.Graph, error) {
	scanner := bufio.NewScanner(r)
	// Benchmark instances can have very long lines for dense graphs'
	// adjacency listings; grow past bufio's 64KiB default.
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var g *graphview.Graph
	haveHeader := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "c", "d", "v", "x":
			continue

		case "p":
			if haveHeader {
				return nil, ErrDuplicateHeader
			}
			if len(fields) != 4 {
				return nil, ErrMalformedLine
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n <= 0 {
				return nil, ErrMalformedLine
			}
			weight := make([]int64, n)
			for i := range weight {
				weight[i] = 1
			}
			g, err = graphview.NewGraph(n, weight)
			if err != nil {
				return nil, err
			}
			haveHeader = true

		case "e":
			if !haveHeader {
				return nil, ErrMissingHeader
			}
			if len(fields) != 3 {
				return nil, ErrMalformedLine
			}
			u, err1 := strconv.Atoi(fields[1])
			v, err2 := strconv.Atoi(fields[2])
			if err1 != nil || err2 != nil {
				return nil, ErrMalformedLine
			}
			if err := g.AddEdge(u-1, v-1); err != nil {
				return nil, err
			}

		case "n":
			if !haveHeader {
				return nil, ErrMissingHeader
			}
			if len(fields) != 3 {
				return nil, ErrMalformedLine
			}
			v, err1 := strconv.Atoi(fields[1])
			w, err2 := strconv.ParseInt(fields[2], 10, 64)
			if err1 != nil || err2 != nil {
				return nil, ErrMalformedLine
			}
			if err := g.SetWeight(v-1, w); err != nil {
				return nil, err
			}

		default:
			return nil, ErrUnknownLineKind
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !haveHeader {
		return nil, ErrMissingHeader
	}

	return g, nil
}
