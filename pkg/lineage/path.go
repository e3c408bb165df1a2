package lineage

import (
	"errors"
	"fmt"
)

// ErrUnknownMember is returned by [ShortestPath] when an endpoint name is
// not present in the graph. This is a resolution failure, distinct from a
// successful search that finds no connecting path.
var ErrUnknownMember = errors.New("unknown member")

// PathResult is the outcome of a shortest-path search.
// When Found is false, Path is nil and From/To carry the endpoint names
// for display.
type PathResult struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Found bool     `json:"found"`
	Path  []string `json:"path,omitempty"`
}

// Hops returns the number of edges in the found path, or -1 when no path
// was found.
func (r PathResult) Hops() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// ShortestPath finds the minimum-hop chain between two members, treating
// every big/little relationship as undirected.
//
// The search is breadth-first, so the first path reaching the target is
// guaranteed to have the fewest edges. Both endpoints must exist in the
// graph; otherwise an error wrapping [ErrUnknownMember] is returned.
// A search from a member to itself finds the single-element path.
func ShortestPath(g *Graph, from, to string) (PathResult, error) {
	if _, ok := g.Member(from); !ok {
		return PathResult{}, fmt.Errorf("%w: %q", ErrUnknownMember, from)
	}
	if _, ok := g.Member(to); !ok {
		return PathResult{}, fmt.Errorf("%w: %q", ErrUnknownMember, to)
	}

	visited := map[string]bool{from: true}
	queue := [][]string{{from}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		curr := path[len(path)-1]
		if curr == to {
			return PathResult{From: from, To: to, Found: true, Path: path}, nil
		}

		for _, next := range g.Neighbors(curr) {
			if visited[next] {
				continue
			}
			visited[next] = true
			grown := make([]string, len(path)+1)
			copy(grown, path)
			grown[len(path)] = next
			queue = append(queue, grown)
		}
	}

	return PathResult{From: from, To: to}, nil
}
