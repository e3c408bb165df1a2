package lineage

import (
	"slices"
	"strings"
)

// Edge represents a directed sponsorship from a big to their little.
type Edge struct {
	Big    string `json:"big"`
	Little string `json:"little"`
}

// Graph is the adjacency representation of a lineage roster.
//
// Relationships may be declared on either endpoint (a member listing a
// little, the little listing a big, or both); the graph normalizes them
// into a single deduplicated edge set so both views always agree.
//
// Graph is immutable after construction and safe for concurrent reads.
type Graph struct {
	members map[string]*Member
	names   []string // insertion order, drives deterministic traversals
	bigs    map[string][]string
	littles map[string][]string
	edges   []Edge
}

// NewGraph builds a Graph from roster records.
//
// Records with an empty name are skipped; on duplicate names the first
// record wins. Big/little references to names absent from the record set
// are silently dropped. Missing relationship lists default to empty.
func NewGraph(records []Member) *Graph {
	g := &Graph{
		members: make(map[string]*Member, len(records)),
		bigs:    make(map[string][]string),
		littles: make(map[string][]string),
	}

	for i := range records {
		m := records[i]
		if m.Name == "" {
			continue
		}
		if _, exists := g.members[m.Name]; exists {
			continue
		}
		g.members[m.Name] = &m
		g.names = append(g.names, m.Name)
	}

	seen := make(map[Edge]bool)
	addEdge := func(big, little string) {
		if _, ok := g.members[big]; !ok {
			return
		}
		if _, ok := g.members[little]; !ok {
			return
		}
		e := Edge{Big: big, Little: little}
		if seen[e] {
			return
		}
		seen[e] = true
		g.edges = append(g.edges, e)
		g.littles[big] = append(g.littles[big], little)
		g.bigs[little] = append(g.bigs[little], big)
	}

	for _, name := range g.names {
		m := g.members[name]
		for _, little := range m.Littles {
			addEdge(name, little)
		}
		for _, big := range m.Bigs {
			addEdge(big, name)
		}
	}

	return g
}

// Member returns the member with the given name and true, or nil and false.
func (g *Graph) Member(name string) (*Member, bool) {
	m, ok := g.members[name]
	return m, ok
}

// Names returns all member names in roster order.
func (g *Graph) Names() []string { return slices.Clone(g.names) }

// Members returns all members in roster order.
func (g *Graph) Members() []*Member {
	out := make([]*Member, len(g.names))
	for i, name := range g.names {
		out[i] = g.members[name]
	}
	return out
}

// Bigs returns the names of the member's bigs (sponsors), in declaration
// order. Returns nil for members without bigs or unknown names. The
// returned slice should not be modified.
func (g *Graph) Bigs(name string) []string { return g.bigs[name] }

// Littles returns the names of the member's littles, in declaration order.
// Returns nil for members without littles or unknown names. The returned
// slice should not be modified.
func (g *Graph) Littles(name string) []string { return g.littles[name] }

// Neighbors returns the union of a member's bigs and littles, deduplicated,
// bigs first. This is the undirected adjacency used by path search.
func (g *Graph) Neighbors(name string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, b := range g.bigs[name] {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	for _, l := range g.littles[name] {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Edges returns a copy of the flattened (big, little) edge list.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// MemberCount returns the number of members in the graph.
func (g *Graph) MemberCount() int { return len(g.names) }

// EdgeCount returns the number of distinct sponsorship edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Resolve maps user-typed text to a canonical member name. Matching is
// attempted in order: exact name, case-insensitive name, case-insensitive
// nickname. On ambiguity the earliest roster entry wins. Returns false
// when nothing matches.
func (g *Graph) Resolve(query string) (string, bool) {
	if _, ok := g.members[query]; ok {
		return query, true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	for _, name := range g.names {
		if strings.ToLower(name) == q {
			return name, true
		}
	}
	for _, name := range g.names {
		if nick := g.members[name].Nickname; nick != "" && strings.ToLower(nick) == q {
			return name, true
		}
	}
	return "", false
}
