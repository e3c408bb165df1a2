package layout

import "github.com/biglinehq/bigline/pkg/lineage"

// ComputeDepths assigns every member a generation depth: zero for members
// with no bigs, otherwise one plus the maximum depth among their bigs
// (longest chain from a root).
//
// The descent is memoized, so shared ancestors reached via multiple paths
// are evaluated once per pass. A visiting set guards against cycles: when
// a member is re-entered while still on the current path, it resolves to
// its best-known depth (the cached value, or zero before one exists)
// instead of recursing. Members on a cycle therefore get a finite depth
// that depends on traversal order; traversal order is fixed (roster order
// for entry points, declaration order for bigs), so the result is still
// deterministic for a given roster.
func ComputeDepths(g *lineage.Graph) map[string]int {
	depths := make(map[string]int, g.MemberCount())
	resolved := make(map[string]bool, g.MemberCount())
	visiting := make(map[string]bool)

	var walk func(name string) int
	walk = func(name string) int {
		if resolved[name] || visiting[name] {
			return depths[name]
		}
		visiting[name] = true
		d := 0
		for _, big := range g.Bigs(name) {
			if bd := walk(big) + 1; bd > d {
				d = bd
			}
		}
		delete(visiting, name)
		depths[name] = d
		resolved[name] = true
		return d
	}

	for _, name := range g.Names() {
		walk(name)
	}
	return depths
}
