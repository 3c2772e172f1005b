// Package layout computes force-directed positions for the content graph.
//
// Positions live in a side table keyed by node ID and owned by this engine;
// they are never written back onto content.Node, so node identity stays a
// pure content concern.
package layout

import (
	"math"

	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/pkg/logger"
)

// Point is a simulated node position with its current velocity.
type Point struct {
	X, Y   float64
	VX, VY float64
}

// Anchor is a fixed point in layout space that a cluster is attracted toward.
type Anchor struct {
	X, Y float64
}

// ClusterAnchors arranges the five clusters so they separate spatially:
// core at the center, the others at the compass points.
var ClusterAnchors = map[content.Cluster]Anchor{
	content.ClusterCore:       {X: 0, Y: 0},
	content.ClusterCareer:     {X: 0, Y: -300},
	content.ClusterLibrary:    {X: 300, Y: 0},
	content.ClusterPlayground: {X: 0, Y: 300},
	content.ClusterLife:       {X: -300, Y: 0},
}

const (
	// AnchorStrength keeps clusters visually distinct while letting graph
	// topology dominate the layout.
	AnchorStrength = 0.15

	// CollisionScale sets the collision radius to sqrt(val) * CollisionScale.
	CollisionScale = 4.0

	linkDistance   = 30.0
	linkStrength   = 0.3
	chargeStrength = -30.0
	velocityDecay  = 0.3
	alphaDecay     = 0.02
	alphaMin       = 0.001

	// CooldownTicks bounds a single layout run.
	CooldownTicks = 200

	// Phyllotaxis seeding constants, so initial positions are deterministic.
	initialRadius = 10.0
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Engine runs the simulation for the currently active node set.
type Engine struct {
	logger *zap.Logger

	graph *content.Graph
	pos   map[string]*Point
	// radii and link index are rebuilt on every SetGraph
	radii []float64
	links [][2]int

	alpha float64
	ticks int
}

// NewEngine creates an engine with no graph; it renders nothing until
// SetGraph is called.
func NewEngine() *Engine {
	return &Engine{
		logger: logger.Get(),
		graph:  &content.Graph{},
		pos:    make(map[string]*Point),
		alpha:  0,
	}
}

// SetGraph swaps the active node set and reheats the simulation. Positions
// of surviving nodes are retained; new nodes are seeded on a deterministic
// phyllotaxis spiral. Positions of removed nodes are dropped.
func (e *Engine) SetGraph(g *content.Graph) {
	if g == nil {
		g = &content.Graph{}
	}

	next := make(map[string]*Point, len(g.Nodes))
	radii := make([]float64, len(g.Nodes))
	for i := range g.Nodes {
		n := &g.Nodes[i]
		if p, ok := e.pos[n.ID]; ok {
			next[n.ID] = p
		} else {
			radius := initialRadius * math.Sqrt(0.5+float64(i))
			angle := float64(i) * initialAngle
			next[n.ID] = &Point{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
			}
		}
		val := n.Val
		if val <= 0 {
			val = 1
		}
		radii[i] = math.Sqrt(val) * CollisionScale
	}

	index := make(map[string]int, len(g.Nodes))
	for i := range g.Nodes {
		index[g.Nodes[i].ID] = i
	}
	links := make([][2]int, 0, len(g.Links))
	for _, l := range g.Links {
		si, ok := index[l.Source]
		if !ok {
			continue
		}
		ti, ok := index[l.Target]
		if !ok {
			continue
		}
		links = append(links, [2]int{si, ti})
	}

	e.graph = g
	e.pos = next
	e.radii = radii
	e.links = links
	e.Reheat()

	e.logger.Debug("Layout graph replaced",
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("links", len(links)),
	)
}

// Reheat restarts the cooling schedule so forces apply again. Must be called
// (and is, via SetGraph) whenever the node/edge set changes, not just on
// initial load.
func (e *Engine) Reheat() {
	e.alpha = 1
	e.ticks = 0
}

// Settled reports whether the simulation has cooled down.
func (e *Engine) Settled() bool {
	return e.alpha < alphaMin || e.ticks >= CooldownTicks || len(e.graph.Nodes) == 0
}

// Position returns the simulated position for a node ID. The second return
// is false for nodes the engine has never seen; callers must treat that as
// "not placed yet" and skip painting or hit-testing the node.
func (e *Engine) Position(id string) (Point, bool) {
	p, ok := e.pos[id]
	if !ok {
		return Point{}, false
	}
	return *p, true
}

// Tick advances the simulation one step. A tick on an empty or settled
// engine is a no-op returning false.
func (e *Engine) Tick() bool {
	if e.Settled() {
		return false
	}

	e.applyLinkForce()
	e.applyChargeForce()
	e.applyAnchorForce()
	e.applyCollisionForce()

	for i := range e.graph.Nodes {
		p := e.pos[e.graph.Nodes[i].ID]
		p.VX *= 1 - velocityDecay
		p.VY *= 1 - velocityDecay
		p.X += p.VX
		p.Y += p.VY
	}

	e.alpha *= 1 - alphaDecay
	e.ticks++
	return true
}

// Run ticks until the simulation settles.
func (e *Engine) Run() {
	for e.Tick() {
	}
}
