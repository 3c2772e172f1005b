// Package interact implements search and node selection on top of the
// renderer: finding nodes by text, focusing the camera on them, and opening
// the detail panel.
package interact

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/render"
	"digital-garden/backend/pkg/logger"
)

// MaxSearchResults caps the dropdown so it never covers the whole canvas.
const MaxSearchResults = 8

// PanelOpenDelay is how long after a search selection the detail panel
// opens. Shorter than the search focus flight, so the panel slides in while
// the camera is still moving.
const PanelOpenDelay = 600 * time.Millisecond

// Scheduler defers a callback. Production uses TimerScheduler; tests
// substitute a manual one to make delayed panel opens deterministic.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimerScheduler schedules on real timers.
type TimerScheduler struct{}

func (TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Positioner resolves a node ID to world coordinates.
type Positioner interface {
	NodePosition(id string) (x, y float64, ok bool)
}

// Controller wires search and click input to the camera and detail panel.
type Controller struct {
	logger *zap.Logger

	graph  *content.Graph
	pos    Positioner
	camera *render.Camera
	sched  Scheduler

	// PanelNodeID is the node shown in the detail panel, "" when closed.
	PanelNodeID string
}

// NewController builds a controller over the given camera. A nil scheduler
// falls back to real timers.
func NewController(pos Positioner, camera *render.Camera, sched Scheduler) *Controller {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Controller{
		logger: logger.Get(),
		graph:  &content.Graph{},
		pos:    pos,
		camera: camera,
		sched:  sched,
	}
}

// SetGraph replaces the searchable node set. An open panel stays open even
// if its node left the graph; the next ClosePanel clears it.
func (c *Controller) SetGraph(g *content.Graph) {
	if g == nil {
		g = &content.Graph{}
	}
	c.graph = g
}

// Search returns up to MaxSearchResults nodes whose title, description, or
// tags contain the query, case-insensitively. Results keep graph order; an
// empty or whitespace query matches nothing.
func (c *Controller) Search(query string) []content.Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []content.Node
	for _, n := range c.graph.Nodes {
		if matches(&n, q) {
			out = append(out, n)
			if len(out) == MaxSearchResults {
				break
			}
		}
	}
	return out
}

func matches(n *content.Node, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) {
		return true
	}
	if n.Meta == nil {
		return false
	}
	if strings.Contains(strings.ToLower(n.Meta.Description), q) {
		return true
	}
	for _, tag := range n.Meta.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Click selects a node directly on the canvas: the detail panel opens
// immediately and the camera flies to the node concurrently. Unknown IDs
// are ignored.
func (c *Controller) Click(id string) {
	x, y, ok := c.resolve(id)
	if !ok {
		return
	}
	c.PanelNodeID = id
	c.camera.FocusOn(x, y, render.ClickFocusDuration)
}

// SelectFromSearch selects a node out of the search dropdown: the camera
// starts its (longer) flight immediately, but the panel open is deferred so
// it does not obscure the node the user is flying toward. Unknown IDs are
// ignored.
func (c *Controller) SelectFromSearch(id string) {
	x, y, ok := c.resolve(id)
	if !ok {
		return
	}
	c.camera.FocusOn(x, y, render.SearchFocusDuration)
	c.sched.After(PanelOpenDelay, func() {
		c.PanelNodeID = id
	})
}

// ClosePanel dismisses the detail panel. The camera stays where it is;
// closing never moves the viewport.
func (c *Controller) ClosePanel() {
	c.PanelNodeID = ""
}

func (c *Controller) resolve(id string) (x, y float64, ok bool) {
	if c.graph.NodeByID(id) == nil {
		c.logger.Debug("Selection ignored, unknown node", zap.String("id", id))
		return 0, 0, false
	}
	x, y, ok = c.pos.NodePosition(id)
	if !ok {
		c.logger.Debug("Selection ignored, node not placed", zap.String("id", id))
	}
	return x, y, ok
}
