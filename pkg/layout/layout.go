package layout

import (
	"math"
	"slices"
	"strings"

	"github.com/biglinehq/bigline/pkg/lineage"
)

// Node is the computed geometry for one member.
// All coordinates are in canvas pixels.
type Node struct {
	Name   string  `json:"name"`
	Label  string  `json:"label"`
	Family string  `json:"family,omitempty"`
	Depth  int     `json:"depth"`
	Unit   float64 `json:"unit"`
	Local  float64 `json:"local"`
	Width  float64 `json:"width"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`

	// LeftFamily and RightFamily are set for members declaring two or
	// more families: whichever of the first two declared families sits
	// further left in the composited order. Consumed by the dual-color
	// rendering treatment.
	LeftFamily  string `json:"left_family,omitempty"`
	RightFamily string `json:"right_family,omitempty"`

	// Redacted is carried through for the renderer; it never affects
	// geometry.
	Redacted bool `json:"redacted,omitempty"`
}

// EdgeGeom is a sponsorship edge with resolved endpoint coordinates.
type EdgeGeom struct {
	Big    string  `json:"big"`
	Little string  `json:"little"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
}

// Result is the complete output of one layout pass, ready for a renderer.
type Result struct {
	Width    float64    `json:"width"`
	Height   float64    `json:"height"`
	Families []string   `json:"families,omitempty"` // block order, left to right
	Nodes    []Node     `json:"nodes"`
	Edges    []EdgeGeom `json:"edges,omitempty"`

	// Cycles lists relationship cycles found during positioning, each as
	// the ordered member names along the loop. Cycles are diagnostics,
	// not errors: the layout above is complete and finite regardless.
	Cycles [][]string `json:"cycles,omitempty"`
}

// Node returns the geometry for the named member and true, or a zero Node
// and false when the member is not part of the layout.
func (r Result) Node(name string) (Node, bool) {
	for _, n := range r.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Compute runs a full layout pass over the graph.
//
// The pass owns all intermediate state and rebuilds it from scratch on
// every call: depths, family order, unit and local positions, and final
// coordinates. est may be nil, in which case the character-count width
// estimator for cfg is used. Every member of the graph ends with finite
// coordinates, including members on relationship cycles.
func Compute(g *lineage.Graph, cfg Config, est WidthEstimator) Result {
	cfg = cfg.normalized()
	if est == nil {
		est = NewCharWidthEstimator(cfg)
	}

	depths := ComputeDepths(g)

	widths := make(map[string]float64, g.MemberCount())
	for _, m := range g.Members() {
		widths[m.Name] = safeWidth(est.LabelWidth(m.DisplayLabel()), cfg.MinLabelWidth)
	}

	groups := GroupFamilies(g)
	order := OrderFamilies(g, groups)

	placements := make(map[string]FamilyPlacement, len(order))
	var cycles [][]string
	for _, fam := range order {
		p := PositionFamily(g, groups[fam], depths, widths, cfg)
		placements[fam] = p
		cycles = append(cycles, p.Cycles...)
	}

	offsets := composeOffsets(order, groups, placements, widths, cfg)
	orderIndex := make(map[string]int, len(order))
	for i, fam := range order {
		orderIndex[fam] = i
	}

	maxDepth := 0
	nodes := make([]Node, 0, g.MemberCount())
	for _, m := range g.Members() {
		fam := m.PrimaryFamily()
		p := placements[fam]
		left, right := familySides(m, orderIndex)
		depth := depths[m.Name]
		if depth > maxDepth {
			maxDepth = depth
		}
		nodes = append(nodes, Node{
			Name:        m.Name,
			Label:       m.DisplayLabel(),
			Family:      fam,
			Depth:       depth,
			Unit:        p.Units[m.Name],
			Local:       p.Locals[m.Name],
			Width:       widths[m.Name],
			X:           offsets[fam] + p.Locals[m.Name],
			Y:           yForDepth(depth, cfg),
			LeftFamily:  left,
			RightFamily: right,
			Redacted:    m.Redacted,
		})
	}
	slices.SortFunc(nodes, func(a, b Node) int {
		return strings.Compare(a.Name, b.Name)
	})

	pos := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		pos[n.Name] = n
	}
	edges := make([]EdgeGeom, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		big, little := pos[e.Big], pos[e.Little]
		edges = append(edges, EdgeGeom{
			Big:    e.Big,
			Little: e.Little,
			X1:     big.X,
			Y1:     big.Y,
			X2:     little.X,
			Y2:     little.Y,
		})
	}

	height := cfg.CanvasHeight
	if len(nodes) > 0 {
		height = math.Max(height, yForDepth(maxDepth, cfg)+cfg.TopMargin)
	}

	return Result{
		Width:    cfg.CanvasWidth,
		Height:   height,
		Families: order,
		Nodes:    nodes,
		Edges:    edges,
		Cycles:   cycles,
	}
}
