package layout

import (
	"math"

	"github.com/biglinehq/bigline/pkg/lineage"
)

// composeOffsets lays family blocks side by side in the given order and
// returns, per family, the value to add to its members' local positions
// to obtain global x coordinates.
//
// Each block's span is the extent of its members' locals widened by half
// their label widths. Blocks are separated by FamilyGap and the whole
// composition is shifted so it is centered on CanvasWidth. Families with
// no members are skipped; a degenerate span falls back to MinLabelWidth
// so the cursor always advances by a finite amount.
func composeOffsets(order []string, groups map[string][]string, placements map[string]FamilyPlacement, widths map[string]float64, cfg Config) map[string]float64 {
	offsets := make(map[string]float64, len(order))
	cursor := 0.0
	anyPlaced := false

	for _, fam := range order {
		members := groups[fam]
		if len(members) == 0 {
			continue
		}
		p := placements[fam]

		minLeft := math.Inf(1)
		maxRight := math.Inf(-1)
		for _, m := range members {
			l := p.Locals[m]
			half := widths[m] / 2
			minLeft = math.Min(minLeft, l-half)
			maxRight = math.Max(maxRight, l+half)
		}

		span := maxRight - minLeft
		if !(span > 0) || math.IsInf(span, 0) || math.IsNaN(span) {
			minLeft = 0
			span = cfg.MinLabelWidth
		}

		offsets[fam] = cursor - minLeft
		cursor += span + cfg.FamilyGap
		anyPlaced = true
	}

	if !anyPlaced {
		return offsets
	}

	total := cursor - cfg.FamilyGap
	shift := (cfg.CanvasWidth - total) / 2
	for fam := range offsets {
		offsets[fam] += shift
	}
	return offsets
}

// yForDepth converts a generation depth to a vertical coordinate.
// Vertical placement depends only on depth, never on family.
func yForDepth(depth int, cfg Config) float64 {
	return cfg.TopMargin + float64(depth)*cfg.LayerHeight
}

// familySides reports which of a dual-family member's first two declared
// families ended up left versus right in the composited order. Members
// declaring fewer than two families report empty strings. A declared
// family with no block of its own (nobody claims it as primary) keeps the
// declaration order.
func familySides(m *lineage.Member, orderIndex map[string]int) (left, right string) {
	if len(m.Families) < 2 {
		return "", ""
	}
	first, second := m.Families[0], m.Families[1]
	i1, ok1 := orderIndex[first]
	i2, ok2 := orderIndex[second]
	if ok1 && ok2 && i2 < i1 {
		return second, first
	}
	return first, second
}
