package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/parasols/maxclique/bitset"
)

// Format names accepted by Parse and the CLI's --format flag.
const (
	FormatDIMACS = "dimacs"
	FormatPairs  = "pairs"
)

// ErrUnknownFormat is returned by Parse for a format name neither
// FormatDIMACS nor FormatPairs.
var ErrUnknownFormat = errors.New("dimacs: unknown format")

// ErrMalformed is returned for input that cannot be parsed under the
// requested format (spec.md §7's InputParseError).
var ErrMalformed = errors.New("dimacs: malformed input")

// Graph is a parsed input graph paired with the original vertex name
// each 0-based working id was assigned from, in order of first
// appearance in the file.
type Graph struct {
	*bitset.Graph
	Names []string
}

// Name returns the original vertex name for working id v.
func (g *Graph) Name(v int) string {
	return g.Names[v]
}

// Parse reads r under the named format, returning a Graph with vertex
// names mapped to 0-based ids in order of first appearance.
func Parse(r io.Reader, format string) (*Graph, error) {
	switch format {
	case FormatDIMACS:
		return parseDIMACS(r)
	case FormatPairs:
		return parsePairs(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// nameTable assigns 0-based ids to vertex name tokens in order of first
// appearance, the way both input formats are specified to.
type nameTable struct {
	ids   map[string]int
	names []string
}

func newNameTable() *nameTable {
	return &nameTable{ids: make(map[string]int)}
}

func (t *nameTable) idFor(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)

	return id
}

// parseDIMACS reads the `p edge n m` / `e u v` format. Vertex tokens are
// the one-based integers 1..n from the problem line; they are still run
// through a nameTable so Graph.Names holds the literal string each
// vertex was declared under (there is no requirement that every vertex
// 1..n appears in an edge line).
func parseDIMACS(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	table := newNameTable()

	var n int
	var edges [][2]int
	sawProblemLine := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "c":
			continue
		case "p":
			if len(fields) < 4 || fields[1] != "edge" {
				return nil, fmt.Errorf("%w: malformed problem line %q", ErrMalformed, line)
			}
			parsed, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: problem line vertex count: %v", ErrMalformed, err)
			}
			n = parsed
			sawProblemLine = true
			for i := 1; i <= n; i++ {
				table.idFor(strconv.Itoa(i))
			}
		case "e":
			if !sawProblemLine {
				return nil, fmt.Errorf("%w: edge line before problem line", ErrMalformed)
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: malformed edge line %q", ErrMalformed, line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: edge endpoint: %v", ErrMalformed, err)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: edge endpoint: %v", ErrMalformed, err)
			}
			edges = append(edges, [2]int{u - 1, v - 1})
		default:
			return nil, fmt.Errorf("%w: unrecognised line %q", ErrMalformed, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !sawProblemLine {
		return nil, fmt.Errorf("%w: missing problem line", ErrMalformed)
	}

	g, err := bitset.FromEdges(n, edges)
	if err != nil {
		return nil, err
	}

	return &Graph{Graph: g, Names: table.names}, nil
}

// parsePairs reads the two-integers-per-line format: each line is one
// edge, with arbitrary (not necessarily contiguous or 0-based) vertex
// names assigned working ids in order of first appearance.
func parsePairs(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	table := newNameTable()
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: malformed pairs line %q", ErrMalformed, line)
		}
		u := table.idFor(fields[0])
		v := table.idFor(fields[1])
		edges = append(edges, [2]int{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	g, err := bitset.FromEdges(len(table.names), edges)
	if err != nil {
		return nil, err
	}

	return &Graph{Graph: g, Names: table.names}, nil
}
