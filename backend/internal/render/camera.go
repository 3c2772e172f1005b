package render

import (
	"math"
	"time"
)

// Focus animation durations. Search focus is deliberately slower than a
// click so the jump across the graph stays readable.
const (
	ClickFocusDuration  = 800 * time.Millisecond
	SearchFocusDuration = 1000 * time.Millisecond

	focusZoom = 3.0
)

// Camera frames the graph: a center in world space plus a zoom factor.
// It is a two-state machine, idle or animating; a new FocusOn during an
// animation abandons the old flight and starts a fresh one from the
// current interpolated position.
type Camera struct {
	X, Y, Zoom float64

	animating bool
	elapsed   time.Duration
	duration  time.Duration
	fromX     float64
	fromY     float64
	fromZoom  float64
	toX       float64
	toY       float64
	toZoom    float64
}

// NewCamera starts framed on the origin at neutral zoom.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Animating reports whether a focus flight is in progress.
func (c *Camera) Animating() bool { return c.animating }

// FocusOn starts a flight toward the given world point. The destination is
// captured now; if the layout reheats and the node drifts mid-flight the
// camera still lands on the coordinates it was aimed at.
func (c *Camera) FocusOn(x, y float64, d time.Duration) {
	c.fromX, c.fromY, c.fromZoom = c.X, c.Y, c.Zoom
	c.toX, c.toY, c.toZoom = x, y, focusZoom
	c.duration = d
	c.elapsed = 0
	c.animating = true
}

// Advance moves the animation forward by dt. A settled camera ignores it.
func (c *Camera) Advance(dt time.Duration) {
	if !c.animating {
		return
	}
	c.elapsed += dt
	if c.elapsed >= c.duration {
		c.X, c.Y, c.Zoom = c.toX, c.toY, c.toZoom
		c.animating = false
		return
	}
	t := easeInOutCubic(float64(c.elapsed) / float64(c.duration))
	c.X = c.fromX + (c.toX-c.fromX)*t
	c.Y = c.fromY + (c.toY-c.fromY)*t
	c.Zoom = c.fromZoom + (c.toZoom-c.fromZoom)*t
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
