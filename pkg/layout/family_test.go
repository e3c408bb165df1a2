package layout

import (
	"reflect"
	"testing"

	"github.com/biglinehq/bigline/pkg/lineage"
)

func TestGroupFamilies(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "Alice", Families: []string{"Anchor"}},
		{Name: "Bob", Families: []string{"Compass", "Anchor"}},
		{Name: "Carol", Families: []string{"Anchor"}},
		{Name: "Dave"},
	})

	groups := GroupFamilies(g)

	if got := groups["Anchor"]; !reflect.DeepEqual(got, []string{"Alice", "Carol"}) {
		t.Errorf("Anchor = %v, want [Alice Carol]", got)
	}
	// Only the primary (first declared) family places a member.
	if got := groups["Compass"]; !reflect.DeepEqual(got, []string{"Bob"}) {
		t.Errorf("Compass = %v, want [Bob]", got)
	}
	// Unaffiliated members share the unnamed group.
	if got := groups[""]; !reflect.DeepEqual(got, []string{"Dave"}) {
		t.Errorf("unaffiliated = %v, want [Dave]", got)
	}
}

func TestOrderFamiliesKeepsConnectedAdjacent(t *testing.T) {
	// Anchor and Compass share two cross-family edges; Delta shares one
	// with Compass and none with Anchor. Compass must sit between them.
	g := lineage.NewGraph([]lineage.Member{
		{Name: "A1", Families: []string{"Anchor"}, Littles: []string{"C1", "C2"}},
		{Name: "C1", Families: []string{"Compass"}},
		{Name: "C2", Families: []string{"Compass"}, Littles: []string{"D1"}},
		{Name: "D1", Families: []string{"Delta"}},
	})

	groups := GroupFamilies(g)
	order := OrderFamilies(g, groups)

	if len(order) != 3 {
		t.Fatalf("len(order) = %d, want 3", len(order))
	}
	if order[1] != "Compass" {
		t.Errorf("order = %v, want Compass in the middle", order)
	}
}

func TestOrderFamiliesDeterministic(t *testing.T) {
	members := []lineage.Member{
		{Name: "A", Families: []string{"Anchor"}, Littles: []string{"B"}},
		{Name: "B", Families: []string{"Compass"}},
		{Name: "C", Families: []string{"Delta"}},
		{Name: "D", Families: []string{"Echo"}},
	}
	g := lineage.NewGraph(members)
	groups := GroupFamilies(g)

	first := OrderFamilies(g, groups)
	for i := 0; i < 10; i++ {
		if got := OrderFamilies(g, groups); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, previous runs produced %v", i, got, first)
		}
	}
}

func TestOrderFamiliesCoversAllGroups(t *testing.T) {
	g := lineage.NewGraph([]lineage.Member{
		{Name: "A", Families: []string{"Anchor"}},
		{Name: "B", Families: []string{"Compass"}},
		{Name: "C"},
	})

	groups := GroupFamilies(g)
	order := OrderFamilies(g, groups)

	if len(order) != len(groups) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(groups))
	}
	seen := make(map[string]bool)
	for _, fam := range order {
		if seen[fam] {
			t.Errorf("family %q appears twice in %v", fam, order)
		}
		seen[fam] = true
		if _, ok := groups[fam]; !ok {
			t.Errorf("family %q not in groups", fam)
		}
	}
}

func TestOrderFamiliesEmpty(t *testing.T) {
	g := lineage.NewGraph(nil)
	if got := OrderFamilies(g, GroupFamilies(g)); got != nil {
		t.Errorf("OrderFamilies() = %v, want nil", got)
	}
}
