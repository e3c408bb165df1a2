package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/biglinehq/bigline/pkg/lineage"
)

func chapterRoster() []lineage.Member {
	return []lineage.Member{
		{Name: "Alice Chen", Nickname: "Ace", Families: []string{"Anchor"}, Littles: []string{"Bob Park", "Carol Diaz"}},
		{Name: "Bob Park", Families: []string{"Anchor"}, Littles: []string{"Dave Wu"}},
		{Name: "Carol Diaz", Families: []string{"Anchor"}},
		{Name: "Dave Wu", Families: []string{"Anchor", "Compass"}},
		{Name: "Erin Lee", Families: []string{"Compass"}, Littles: []string{"Frank Moss"}},
		{Name: "Frank Moss", Families: []string{"Compass"}},
		{Name: "Grace Obi"},
	}
}

func TestComputeBasics(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())
	result := Compute(g, DefaultConfig(), nil)

	if got := len(result.Nodes); got != g.MemberCount() {
		t.Fatalf("len(Nodes) = %d, want %d", got, g.MemberCount())
	}
	if got := len(result.Edges); got != g.EdgeCount() {
		t.Errorf("len(Edges) = %d, want %d", got, g.EdgeCount())
	}

	for _, n := range result.Nodes {
		if math.IsNaN(n.X) || math.IsInf(n.X, 0) || math.IsNaN(n.Y) || math.IsInf(n.Y, 0) {
			t.Errorf("node %s at (%v, %v), want finite coordinates", n.Name, n.X, n.Y)
		}
		if n.Width <= 0 {
			t.Errorf("node %s width = %v, want positive", n.Name, n.Width)
		}
	}

	// Nodes are sorted by name.
	for i := 1; i < len(result.Nodes); i++ {
		if result.Nodes[i-1].Name > result.Nodes[i].Name {
			t.Errorf("nodes not sorted: %q before %q", result.Nodes[i-1].Name, result.Nodes[i].Name)
		}
	}
}

func TestComputeVerticalPlacement(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())
	cfg := DefaultConfig()
	result := Compute(g, cfg, nil)

	depths := ComputeDepths(g)
	for _, n := range result.Nodes {
		if n.Depth != depths[n.Name] {
			t.Errorf("node %s depth = %d, want %d", n.Name, n.Depth, depths[n.Name])
		}
		if want := yForDepth(n.Depth, cfg); n.Y != want {
			t.Errorf("node %s y = %v, want %v", n.Name, n.Y, want)
		}
	}
}

func TestComputeEdgesMatchNodes(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())
	result := Compute(g, DefaultConfig(), nil)

	for _, e := range result.Edges {
		big, ok := result.Node(e.Big)
		if !ok {
			t.Fatalf("edge endpoint %q not in nodes", e.Big)
		}
		little, ok := result.Node(e.Little)
		if !ok {
			t.Fatalf("edge endpoint %q not in nodes", e.Little)
		}
		if e.X1 != big.X || e.Y1 != big.Y {
			t.Errorf("edge %s->%s start = (%v, %v), want (%v, %v)", e.Big, e.Little, e.X1, e.Y1, big.X, big.Y)
		}
		if e.X2 != little.X || e.Y2 != little.Y {
			t.Errorf("edge %s->%s end = (%v, %v), want (%v, %v)", e.Big, e.Little, e.X2, e.Y2, little.X, little.Y)
		}
	}
}

func TestComputeIdempotent(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())
	cfg := DefaultConfig()

	first := Compute(g, cfg, nil)
	for i := 0; i < 5; i++ {
		if got := Compute(g, cfg, nil); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestComputeDualFamilySides(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())
	result := Compute(g, DefaultConfig(), nil)

	n, ok := result.Node("Dave Wu")
	if !ok {
		t.Fatal("Dave Wu not in layout")
	}
	if n.LeftFamily == "" || n.RightFamily == "" {
		t.Fatalf("dual-family member sides = (%q, %q), want both set", n.LeftFamily, n.RightFamily)
	}

	// The reported sides must agree with the composited block order.
	idx := make(map[string]int, len(result.Families))
	for i, fam := range result.Families {
		idx[fam] = i
	}
	if idx[n.LeftFamily] > idx[n.RightFamily] {
		t.Errorf("LeftFamily %q sits right of RightFamily %q in order %v",
			n.LeftFamily, n.RightFamily, result.Families)
	}

	single, _ := result.Node("Carol Diaz")
	if single.LeftFamily != "" || single.RightFamily != "" {
		t.Errorf("single-family member sides = (%q, %q), want empty", single.LeftFamily, single.RightFamily)
	}
}

func TestComputeWithCycle(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Families: []string{"Anchor"}, Littles: []string{"Bob"}},
		{Name: "Bob", Families: []string{"Anchor"}, Littles: []string{"Alice"}},
		{Name: "Carol", Families: []string{"Anchor"}},
	})

	result := Compute(g, DefaultConfig(), nil)

	if len(result.Cycles) == 0 {
		t.Error("Cycles empty, want the Alice/Bob loop reported")
	}
	for _, n := range result.Nodes {
		if math.IsNaN(n.X) || math.IsInf(n.X, 0) || math.IsNaN(n.Y) || math.IsInf(n.Y, 0) {
			t.Errorf("node %s at (%v, %v), want finite coordinates", n.Name, n.X, n.Y)
		}
	}
}

func TestComputeEmptyGraph(t *testing.T) {
	g := lineage.NewGraph(nil)
	cfg := DefaultConfig()
	result := Compute(g, cfg, nil)

	if len(result.Nodes) != 0 || len(result.Edges) != 0 {
		t.Errorf("layout of empty graph has %d nodes, %d edges", len(result.Nodes), len(result.Edges))
	}
	if result.Width != cfg.CanvasWidth || result.Height != cfg.CanvasHeight {
		t.Errorf("canvas = %v x %v, want %v x %v", result.Width, result.Height, cfg.CanvasWidth, cfg.CanvasHeight)
	}
}

func TestComputeHeightGrowsWithDepth(t *testing.T) {
	// A chain deep enough to exceed the default canvas height.
	var members []lineage.Member
	names := []string{"M0", "M1", "M2", "M3", "M4", "M5", "M6", "M7", "M8", "M9"}
	for i, name := range names {
		m := lineage.Member{Name: name}
		if i+1 < len(names) {
			m.Littles = []string{names[i+1]}
		}
		members = append(members, m)
	}

	cfg := DefaultConfig()
	result := Compute(lineage.NewGraph(members), cfg, nil)

	want := yForDepth(len(names)-1, cfg) + cfg.TopMargin
	if result.Height < want {
		t.Errorf("Height = %v, want at least %v", result.Height, want)
	}
}

func TestComputeNormalizesConfig(t *testing.T) {
	g := lineage.NewGraph(chapterRoster())

	// A zero config would divide by zero all over; Compute must fall back
	// to defaults instead of producing non-finite geometry.
	result := Compute(g, Config{}, nil)

	for _, n := range result.Nodes {
		if math.IsNaN(n.X) || math.IsInf(n.X, 0) {
			t.Errorf("node %s x = %v, want finite", n.Name, n.X)
		}
	}
	if result.Width != DefaultConfig().CanvasWidth {
		t.Errorf("Width = %v, want default %v", result.Width, DefaultConfig().CanvasWidth)
	}
}
