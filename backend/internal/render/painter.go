// Package render turns a laid-out graph into a flat list of draw operations
// and provides the camera that frames it. It knows nothing about how the
// operations are rasterized; callers consume the op list in order.
package render

import (
	"math"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/layout"
)

// OpKind discriminates draw operations.
type OpKind string

const (
	OpCircle OpKind = "circle"
	OpGlow   OpKind = "glow"
	OpPill   OpKind = "pill"
	OpLabel  OpKind = "label"
	OpLine   OpKind = "line"
)

// Op is one draw instruction in world coordinates. Ops are emitted in paint
// order: earlier ops render beneath later ones.
type Op struct {
	Kind   OpKind
	NodeID string
	X, Y   float64
	// Radius for circles and glows, half-height for pills.
	Radius float64
	// W is the pill width, derived from the label length.
	W     float64
	Alpha float64
	Text  string
	// Line endpoints, only set for OpLine.
	X2, Y2 float64
}

// Zoom thresholds for the three detail bands.
const (
	zoomMid   = 1.5
	zoomClose = 3.5

	// PaintScale sets the drawn radius to sqrt(val) * PaintScale.
	PaintScale = 2.5

	// HitScale matches the collision radius, so the clickable area is
	// larger than the painted circle and stable across zoom bands.
	HitScale = 4.0

	midRadiusBoost = 1.2
	glowScale      = 2.2
	labelCharWidth = 6.5
	pillPadding    = 8.0
)

// PositionSource supplies world positions for node IDs. The layout engine
// satisfies it.
type PositionSource interface {
	Position(id string) (layout.Point, bool)
}

// Painter emits draw ops for the active graph.
type Painter struct {
	graph *content.Graph
	pos   PositionSource
}

// NewPainter binds a painter to a position source.
func NewPainter(pos PositionSource) *Painter {
	return &Painter{graph: &content.Graph{}, pos: pos}
}

// SetGraph replaces the graph being painted.
func (p *Painter) SetGraph(g *content.Graph) {
	if g == nil {
		g = &content.Graph{}
	}
	p.graph = g
}

// Radius is the painted radius for a node value.
func Radius(val float64) float64 {
	if val <= 0 {
		val = 1
	}
	return math.Sqrt(val) * PaintScale
}

// HitRadius is the clickable radius for a node value. It intentionally does
// not vary with zoom, so small nodes stay clickable when zoomed out.
func HitRadius(val float64) float64 {
	if val <= 0 {
		val = 1
	}
	return math.Sqrt(val) * HitScale
}

// Paint emits the op list for the current graph at the given zoom level.
// Nodes without a position are skipped entirely; they will appear once the
// layout has placed them.
func (p *Painter) Paint(zoom float64) []Op {
	ops := make([]Op, 0, len(p.graph.Links)+2*len(p.graph.Nodes))

	// Edges render beneath all nodes.
	for _, l := range p.graph.Links {
		sp, ok := p.pos.Position(l.Source)
		if !ok {
			continue
		}
		tp, ok := p.pos.Position(l.Target)
		if !ok {
			continue
		}
		ops = append(ops, Op{
			Kind: OpLine, X: sp.X, Y: sp.Y, X2: tp.X, Y2: tp.Y,
			Alpha: 0.25,
		})
	}

	for i := range p.graph.Nodes {
		n := &p.graph.Nodes[i]
		pt, ok := p.pos.Position(n.ID)
		if !ok {
			continue
		}
		ops = append(ops, p.paintNode(n, pt, zoom)...)
	}
	return ops
}

func (p *Painter) paintNode(n *content.Node, pt layout.Point, zoom float64) []Op {
	r := Radius(n.Val)

	switch {
	case zoom < zoomMid:
		ops := make([]Op, 0, 2)
		if n.Type == content.TypeHub {
			// Glow beneath keeps the hub findable at a distance.
			ops = append(ops, Op{
				Kind: OpGlow, NodeID: n.ID, X: pt.X, Y: pt.Y,
				Radius: r * glowScale, Alpha: 0.4,
			})
		}
		alpha := 0.7
		if n.Type == content.TypeHub {
			alpha = 1
		}
		return append(ops, Op{
			Kind: OpCircle, NodeID: n.ID, X: pt.X, Y: pt.Y,
			Radius: r, Alpha: alpha,
		})

	case zoom < zoomClose:
		ops := []Op{{
			Kind: OpCircle, NodeID: n.ID, X: pt.X, Y: pt.Y,
			Radius: r * midRadiusBoost, Alpha: 0.85,
		}}
		if n.Val >= 3 {
			ops = append(ops, Op{
				Kind: OpLabel, NodeID: n.ID, Text: n.Title,
				X: pt.X, Y: pt.Y + r*midRadiusBoost + 4, Alpha: 0.85,
			})
		}
		return ops

	default:
		w := float64(len(n.Title))*labelCharWidth + 2*pillPadding
		return []Op{
			{
				Kind: OpPill, NodeID: n.ID, X: pt.X, Y: pt.Y,
				Radius: r, W: w, Alpha: 0.95,
			},
			{
				Kind: OpLabel, NodeID: n.ID, Text: n.Title,
				X: pt.X, Y: pt.Y, Alpha: 1,
			},
		}
	}
}

// HitTest returns the ID of the topmost node whose hit circle contains the
// world point, or "" when nothing is under it. Later nodes in the graph win
// ties, matching paint order.
func (p *Painter) HitTest(x, y float64) string {
	hit := ""
	for i := range p.graph.Nodes {
		n := &p.graph.Nodes[i]
		pt, ok := p.pos.Position(n.ID)
		if !ok {
			continue
		}
		dx, dy := x-pt.X, y-pt.Y
		r := HitRadius(n.Val)
		if dx*dx+dy*dy <= r*r {
			hit = n.ID
		}
	}
	return hit
}
