package layout

import (
	"cmp"
	"slices"

	"github.com/biglinehq/bigline/pkg/lineage"
)

// FamilyPlacement holds the intermediate horizontal positions for one
// family block: the unitless ordering values from the depth-first walk,
// the pixel offsets relative to the block origin, and any relationship
// cycles encountered.
type FamilyPlacement struct {
	// Units maps member name to its unit position (ordering value).
	Units map[string]float64

	// Locals maps member name to its pixel offset within the block.
	Locals map[string]float64

	// Cycles lists each detected cycle as the ordered member names along
	// the closing path, starting at the revisited member.
	Cycles [][]string
}

// PositionFamily assigns a horizontal position to every member of one
// family, using only relationships whose both endpoints are in the family.
//
// Unit positions come from a depth-first walk rooted at each member
// nothing targets intra-family (roots processed in name order): a leaf
// takes the next sequential integer, a parent takes the mean of its
// littles' units once all of them are placed. Revisiting a member still
// on the current path marks a cycle: the member is frozen at the next
// sequential unit, the occurrence is recorded for diagnostics, and the
// walk does not follow the cyclic edge.
//
// Leaves are then spaced left to right in unit order, each separated from
// its predecessor by half the two adjacent label widths plus the minimum
// gap. Members still unplaced after that (cyclic pockets with no leaf
// descendants) fall back to unit × average spacing so every member ends
// with a finite offset. Finally parents are centered over their littles,
// deepest generations first.
func PositionFamily(g *lineage.Graph, members []string, depths map[string]int, widths map[string]float64, cfg Config) FamilyPlacement {
	inSet := make(map[string]bool, len(members))
	for _, m := range members {
		inSet[m] = true
	}
	inLittles := func(name string) []string {
		var out []string
		for _, l := range g.Littles(name) {
			if inSet[l] {
				out = append(out, l)
			}
		}
		return out
	}
	hasFamilyBig := func(name string) bool {
		for _, b := range g.Bigs(name) {
			if inSet[b] {
				return true
			}
		}
		return false
	}

	units := make(map[string]float64, len(members))
	assigned := make(map[string]bool, len(members))
	done := make(map[string]bool, len(members))
	visiting := make(map[string]bool)
	var stack []string
	var cycles [][]string
	next := 0

	assignNext := func(name string) {
		units[name] = float64(next)
		next++
		assigned[name] = true
	}

	var place func(name string)
	place = func(name string) {
		if done[name] {
			return
		}
		done[name] = true
		visiting[name] = true
		stack = append(stack, name)

		kids := inLittles(name)
		if len(kids) == 0 {
			assignNext(name)
		} else {
			for _, kid := range kids {
				if visiting[kid] {
					// Cyclic edge: freeze the revisited member at the next
					// slot and stop descending along this edge.
					if !assigned[kid] {
						assignNext(kid)
					}
					cycles = append(cycles, cyclePath(stack, kid))
					continue
				}
				place(kid)
			}
			if !assigned[name] {
				sum := 0.0
				for _, kid := range kids {
					sum += units[kid]
				}
				units[name] = sum / float64(len(kids))
				assigned[name] = true
			}
		}

		delete(visiting, name)
		stack = stack[:len(stack)-1]
	}

	roots := make([]string, 0, len(members))
	for _, m := range members {
		if !hasFamilyBig(m) {
			roots = append(roots, m)
		}
	}
	slices.Sort(roots)
	for _, r := range roots {
		place(r)
	}

	// Rootless pockets (pure cycles) are entered in name order.
	rest := slices.Clone(members)
	slices.Sort(rest)
	for _, m := range rest {
		place(m)
	}

	// Leaf spacing: unit order becomes pixel offsets.
	var leaves []string
	for _, m := range members {
		if len(inLittles(m)) == 0 {
			leaves = append(leaves, m)
		}
	}
	slices.SortFunc(leaves, func(a, b string) int {
		if c := cmp.Compare(units[a], units[b]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	locals := make(map[string]float64, len(members))
	for i, leaf := range leaves {
		if i == 0 {
			locals[leaf] = 0
			continue
		}
		prev := leaves[i-1]
		locals[leaf] = locals[prev] + (widths[prev]+widths[leaf])/2 + cfg.MinGap
	}

	// Fallback for members with no leaf descendants. Parent positions
	// assigned here are overwritten by the centering pass below.
	if len(members) > 0 {
		total := 0.0
		for _, m := range members {
			total += widths[m]
		}
		avg := total/float64(len(members)) + cfg.MinGap
		for _, m := range members {
			if _, ok := locals[m]; !ok {
				locals[m] = units[m] * avg
			}
		}
	}

	// Center parents over their littles, deepest generations first.
	byDepth := slices.Clone(members)
	slices.SortFunc(byDepth, func(a, b string) int {
		if c := cmp.Compare(depths[b], depths[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for _, m := range byDepth {
		kids := inLittles(m)
		if len(kids) == 0 {
			continue
		}
		sum := 0.0
		for _, kid := range kids {
			sum += locals[kid]
		}
		locals[m] = sum / float64(len(kids))
	}

	return FamilyPlacement{Units: units, Locals: locals, Cycles: cycles}
}

// cyclePath returns the ordered member names forming a cycle: the slice of
// the current walk stack from the revisited member through the member that
// closed the loop.
func cyclePath(stack []string, revisited string) []string {
	for i, name := range stack {
		if name == revisited {
			return slices.Clone(stack[i:])
		}
	}
	// The revisited member is always on the stack; this is unreachable
	// but keeps the diagnostic well-formed if the invariant ever breaks.
	return []string{revisited}
}
