package campus

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/campuswalk/core"
	"github.com/katalvlaran/campuswalk/dijkstra"
	"github.com/katalvlaran/campuswalk/hashtable"
)

// edgeLine matches `"From" -> "To" [seconds=176.0];`. Either ID may be
// unquoted, and a trailing `//` or `#` comment is allowed. The attribute name
// is ignored; its value is the walking time in seconds.
var edgeLine = regexp.MustCompile(`^"?([^"\[\]]+?)"?\s*->\s*"?([^"\[\]]+?)"?\s*\[\s*[A-Za-z_][A-Za-z0-9_]*\s*=\s*"?([^"\]\s]+)"?\s*\]\s*;?\s*(?://.*|#.*)?$`)

// campusMap is one fully built, immutable snapshot of the loaded map.
type campusMap struct {
	graph     *dijkstra.Graph[string, float64]
	locations []string
}

// parse reads a DOT-style edge list into a fresh campusMap.
//
// A line is an edge iff, trimmed, it contains "->" and is not a comment.
// Every other line (digraph header, braces, comments, node declarations) is
// skipped. Locations are recorded in first-seen order.
func parse(r io.Reader, capacity int) (*campusMap, error) {
	m := &campusMap{
		graph: dijkstra.NewGraph[string, float64](hashtable.String(), core.WithCapacity(capacity)),
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if !strings.Contains(line, "->") || isComment(line) {
			continue
		}

		match := edgeLine.FindStringSubmatch(line)
		if match == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedEdge, lineNo, line)
		}
		from, to := strings.TrimSpace(match[1]), strings.TrimSpace(match[2])
		seconds, err := strconv.ParseFloat(match[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q: %v", ErrMalformedEdge, lineNo, match[3], err)
		}

		for _, loc := range [...]string{from, to} {
			if m.graph.ContainsNode(loc) {
				continue
			}
			if err := m.graph.InsertNode(loc); err != nil {
				return nil, fmt.Errorf("campus: line %d: %w", lineNo, err)
			}
			m.locations = append(m.locations, loc)
		}
		if err := m.graph.InsertEdge(from, to, seconds); err != nil {
			return nil, fmt.Errorf("campus: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("campus: read map: %w", err)
	}

	return m, nil
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "/*")
}
