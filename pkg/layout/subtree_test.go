package layout

import (
	"math"
	"testing"

	"github.com/biglinehq/bigline/pkg/lineage"
)

// uniformWidths gives every member the same label width, which makes
// expected pixel positions easy to reason about in tests.
func uniformWidths(members []string, w float64) map[string]float64 {
	out := make(map[string]float64, len(members))
	for _, m := range members {
		out[m] = w
	}
	return out
}

func TestPositionFamilyLeafSpacing(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Bob", "Carol", "Dave"}},
		{Name: "Bob"},
		{Name: "Carol"},
		{Name: "Dave"},
	})
	members := []string{"Alice", "Bob", "Carol", "Dave"}
	cfg := DefaultConfig()
	widths := uniformWidths(members, 100)

	p := PositionFamily(g, members, ComputeDepths(g), widths, cfg)

	// Leaves sit at successive offsets of width + MinGap.
	step := 100 + cfg.MinGap
	for i, leaf := range []string{"Bob", "Carol", "Dave"} {
		want := float64(i) * step
		if got := p.Locals[leaf]; math.Abs(got-want) > 1e-9 {
			t.Errorf("local(%s) = %v, want %v", leaf, got, want)
		}
	}

	// The parent is centered over its littles.
	wantParent := step
	if got := p.Locals["Alice"]; math.Abs(got-wantParent) > 1e-9 {
		t.Errorf("local(Alice) = %v, want %v", got, wantParent)
	}

	if len(p.Cycles) != 0 {
		t.Errorf("Cycles = %v, want none", p.Cycles)
	}
}

func TestPositionFamilyLeafOrderStrictlyIncreasing(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Root", Littles: []string{"Mid1", "Mid2"}},
		{Name: "Mid1", Littles: []string{"L1", "L2"}},
		{Name: "Mid2", Littles: []string{"L3"}},
		{Name: "L1"},
		{Name: "L2"},
		{Name: "L3"},
	})
	members := []string{"Root", "Mid1", "Mid2", "L1", "L2", "L3"}
	cfg := DefaultConfig()
	widths := uniformWidths(members, 80)

	p := PositionFamily(g, members, ComputeDepths(g), widths, cfg)

	leaves := []string{"L1", "L2", "L3"}
	for i := 1; i < len(leaves); i++ {
		prev, curr := leaves[i-1], leaves[i]
		if p.Units[prev] >= p.Units[curr] {
			t.Errorf("units not increasing: %s=%v, %s=%v", prev, p.Units[prev], curr, p.Units[curr])
		}
		if p.Locals[prev] >= p.Locals[curr] {
			t.Errorf("locals not increasing: %s=%v, %s=%v", prev, p.Locals[prev], curr, p.Locals[curr])
		}
	}
}

func TestPositionFamilyVariableWidths(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "P", Littles: []string{"Narrow", "Wide"}},
		{Name: "Narrow"},
		{Name: "Wide"},
	})
	members := []string{"P", "Narrow", "Wide"}
	cfg := DefaultConfig()
	widths := map[string]float64{"P": 60, "Narrow": 40, "Wide": 200}

	p := PositionFamily(g, members, ComputeDepths(g), widths, cfg)

	// Adjacent leaves are separated by half of each label plus the gap.
	wantGap := (40.0+200.0)/2 + cfg.MinGap
	if got := p.Locals["Wide"] - p.Locals["Narrow"]; math.Abs(got-wantGap) > 1e-9 {
		t.Errorf("leaf separation = %v, want %v", got, wantGap)
	}
}

func TestPositionFamilyTwoMemberCycle(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Bob"}},
		{Name: "Bob", Littles: []string{"Alice"}},
	})
	members := []string{"Alice", "Bob"}
	cfg := DefaultConfig()
	widths := uniformWidths(members, 100)

	p := PositionFamily(g, members, ComputeDepths(g), widths, cfg)

	if len(p.Cycles) == 0 {
		t.Fatal("Cycles empty, want the Alice/Bob loop reported")
	}
	for _, m := range members {
		l, ok := p.Locals[m]
		if !ok {
			t.Errorf("local(%s) missing", m)
			continue
		}
		if math.IsNaN(l) || math.IsInf(l, 0) {
			t.Errorf("local(%s) = %v, want finite", m, l)
		}
	}
}

func TestPositionFamilySelfLoop(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Alice"}},
	})
	members := []string{"Alice"}
	cfg := DefaultConfig()

	p := PositionFamily(g, members, ComputeDepths(g), uniformWidths(members, 100), cfg)

	if len(p.Cycles) != 1 {
		t.Fatalf("len(Cycles) = %d, want 1", len(p.Cycles))
	}
	if l := p.Locals["Alice"]; math.IsNaN(l) || math.IsInf(l, 0) {
		t.Errorf("local(Alice) = %v, want finite", l)
	}
}

func TestPositionFamilyEmpty(t *testing.T) {
	g := lineage.NewGraph(nil)
	p := PositionFamily(g, nil, nil, nil, DefaultConfig())

	if len(p.Units) != 0 || len(p.Locals) != 0 || len(p.Cycles) != 0 {
		t.Errorf("placement for empty family = %+v, want empty", p)
	}
}
