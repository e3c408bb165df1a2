package layout

import (
	"slices"

	"github.com/biglinehq/bigline/pkg/lineage"
)

// GroupFamilies partitions members by primary family (the first family
// each member declares). Members within a group keep roster order.
// Members declaring no family at all share the unnamed group "".
func GroupFamilies(g *lineage.Graph) map[string][]string {
	groups := make(map[string][]string)
	for _, m := range g.Members() {
		fam := m.PrimaryFamily()
		groups[fam] = append(groups[fam], m.Name)
	}
	return groups
}

// OrderFamilies sequences family blocks left to right using a greedy
// chain-building heuristic over cross-family edge counts.
//
// A symmetric weight matrix counts edges whose endpoints have different
// primary families. The chain is seeded with the family of largest total
// cross-family weight (ties broken by roster appearance order). Each
// following step picks the unplaced family most strongly connected to the
// already-placed set (ties broken lexicographically by name) and attaches
// it to whichever chain end it is more strongly connected to, preferring
// the left end on a tie.
//
// Keeping connected families adjacent shortens most cross-family edges;
// this is a heuristic, not a minimum-crossing arrangement.
func OrderFamilies(g *lineage.Graph, groups map[string][]string) []string {
	if len(groups) == 0 {
		return nil
	}

	famOf := make(map[string]string, g.MemberCount())
	var appearance []string
	for _, m := range g.Members() {
		fam := m.PrimaryFamily()
		famOf[m.Name] = fam
		if !slices.Contains(appearance, fam) {
			appearance = append(appearance, fam)
		}
	}

	weights := make(map[string]map[string]int, len(groups))
	totals := make(map[string]int, len(groups))
	bump := func(a, b string) {
		if weights[a] == nil {
			weights[a] = make(map[string]int)
		}
		weights[a][b]++
		totals[a]++
	}
	for _, e := range g.Edges() {
		fa, fb := famOf[e.Big], famOf[e.Little]
		if fa == fb {
			continue
		}
		bump(fa, fb)
		bump(fb, fa)
	}

	// Seed with the most cross-linked family; earliest appearance wins ties.
	seed := appearance[0]
	for _, fam := range appearance[1:] {
		if totals[fam] > totals[seed] {
			seed = fam
		}
	}

	sorted := make([]string, 0, len(groups))
	for fam := range groups {
		sorted = append(sorted, fam)
	}
	slices.Sort(sorted)

	chain := []string{seed}
	placed := map[string]bool{seed: true}

	for len(chain) < len(groups) {
		best := ""
		bestWeight := -1
		for _, cand := range sorted {
			if placed[cand] {
				continue
			}
			w := 0
			for p := range placed {
				w += weights[cand][p]
			}
			if w > bestWeight {
				best = cand
				bestWeight = w
			}
		}

		left, right := chain[0], chain[len(chain)-1]
		if weights[best][right] > weights[best][left] {
			chain = append(chain, best)
		} else {
			chain = append([]string{best}, chain...)
		}
		placed[best] = true
	}

	return chain
}
