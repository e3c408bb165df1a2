package layout

import (
	"testing"

	"github.com/biglinehq/bigline/pkg/lineage"
)

func TestComputeDepths(t *testing.T) {
	tests := []struct {
		name    string
		members []lineage.Member
		want    map[string]int
	}{
		{
			name: "single chain",
			members: []lineage.Member{
				{Name: "Alice", Littles: []string{"Bob"}},
				{Name: "Bob", Littles: []string{"Carol"}},
				{Name: "Carol"},
			},
			want: map[string]int{"Alice": 0, "Bob": 1, "Carol": 2},
		},
		{
			name: "members without bigs sit at depth zero",
			members: []lineage.Member{
				{Name: "Alice"},
				{Name: "Bob"},
			},
			want: map[string]int{"Alice": 0, "Bob": 0},
		},
		{
			name: "diamond takes the longest chain",
			members: []lineage.Member{
				{Name: "Alice", Littles: []string{"Bob", "Carol"}},
				{Name: "Bob", Littles: []string{"Dave"}},
				{Name: "Carol", Littles: []string{"Eve"}},
				{Name: "Dave", Littles: []string{"Eve"}},
				{Name: "Eve"},
			},
			want: map[string]int{"Alice": 0, "Bob": 1, "Carol": 1, "Dave": 2, "Eve": 3},
		},
		{
			name: "two bigs of different depth",
			members: []lineage.Member{
				{Name: "Alice", Littles: []string{"Bob"}},
				{Name: "Bob", Littles: []string{"Carol"}},
				{Name: "Carol"},
				{Name: "Zed", Littles: []string{"Carol"}},
			},
			want: map[string]int{"Alice": 0, "Bob": 1, "Carol": 2, "Zed": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := lineage.NewGraph(tt.members)
			got := ComputeDepths(g)
			for name, want := range tt.want {
				if got[name] != want {
					t.Errorf("depth(%s) = %d, want %d", name, got[name], want)
				}
			}
		})
	}
}

func TestComputeDepthsLittleBelowEveryBig(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Carol"}},
		{Name: "Bob", Littles: []string{"Carol"}},
		{Name: "Carol", Littles: []string{"Dave"}},
		{Name: "Dave"},
	})

	depths := ComputeDepths(g)
	for _, name := range g.Names() {
		if depths[name] < 0 {
			t.Errorf("depth(%s) = %d, want non-negative", name, depths[name])
		}
		for _, big := range g.Bigs(name) {
			if depths[name] < depths[big]+1 {
				t.Errorf("depth(%s) = %d, want at least depth(%s)+1 = %d",
					name, depths[name], big, depths[big]+1)
			}
		}
	}
}

func TestComputeDepthsCycle(t *testing.T) {
	// Alice and Bob sponsor each other. The guard resolves the re-entered
	// member to its best-known depth instead of recursing forever.
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Bob"}, Bigs: []string{"Bob"}},
		{Name: "Bob"},
	})

	depths := ComputeDepths(g)

	if len(depths) != 2 {
		t.Fatalf("len(depths) = %d, want 2", len(depths))
	}
	for name, d := range depths {
		if d < 0 {
			t.Errorf("depth(%s) = %d, want non-negative", name, d)
		}
	}

	// Same roster, same result.
	again := ComputeDepths(g)
	for name, d := range depths {
		if again[name] != d {
			t.Errorf("depth(%s) changed between runs: %d then %d", name, d, again[name])
		}
	}
}

func TestComputeDepthsThreeCycle(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Littles: []string{"Bob"}},
		{Name: "Bob", Littles: []string{"Carol"}},
		{Name: "Carol", Littles: []string{"Alice"}},
	})

	depths := ComputeDepths(g)
	for _, name := range g.Names() {
		if _, ok := depths[name]; !ok {
			t.Errorf("depth(%s) missing", name)
		}
	}
}
