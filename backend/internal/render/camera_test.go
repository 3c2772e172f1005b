package render

import (
	"testing"
	"time"
)

func TestCamera_FocusCompletes(t *testing.T) {
	c := NewCamera()
	c.FocusOn(100, -50, ClickFocusDuration)
	if !c.Animating() {
		t.Fatal("camera not animating after FocusOn")
	}

	c.Advance(ClickFocusDuration)
	if c.Animating() {
		t.Error("camera still animating after full duration")
	}
	if c.X != 100 || c.Y != -50 {
		t.Errorf("camera landed at (%v, %v)", c.X, c.Y)
	}
	if c.Zoom != focusZoom {
		t.Errorf("zoom = %v", c.Zoom)
	}
}

func TestCamera_MidFlightInterpolates(t *testing.T) {
	c := NewCamera()
	c.FocusOn(100, 0, 800*time.Millisecond)
	c.Advance(400 * time.Millisecond)

	if !c.Animating() {
		t.Fatal("camera settled early")
	}
	if c.X <= 0 || c.X >= 100 {
		t.Errorf("mid-flight X = %v, want strictly between start and target", c.X)
	}
}

func TestCamera_TargetCapturedAtFocusTime(t *testing.T) {
	c := NewCamera()
	c.FocusOn(100, 100, ClickFocusDuration)
	// The node may drift after focus; the camera still lands where it aimed.
	c.Advance(ClickFocusDuration)
	if c.X != 100 || c.Y != 100 {
		t.Errorf("camera landed at (%v, %v), want the captured target", c.X, c.Y)
	}
}

func TestCamera_RefocusRestartsFromCurrent(t *testing.T) {
	c := NewCamera()
	c.FocusOn(100, 0, ClickFocusDuration)
	c.Advance(400 * time.Millisecond)
	mid := c.X

	c.FocusOn(-100, 0, ClickFocusDuration)
	c.Advance(1 * time.Millisecond)
	if c.X > mid+1 {
		t.Errorf("refocus jumped instead of departing from current position: %v > %v", c.X, mid)
	}

	c.Advance(ClickFocusDuration)
	if c.X != -100 {
		t.Errorf("refocus landed at %v", c.X)
	}
}

func TestCamera_AdvanceWhenIdle(t *testing.T) {
	c := NewCamera()
	c.Advance(time.Second)
	if c.X != 0 || c.Y != 0 || c.Zoom != 1 {
		t.Error("idle camera moved")
	}
}

func TestSearchFocusSlowerThanClick(t *testing.T) {
	if SearchFocusDuration <= ClickFocusDuration {
		t.Error("search focus should take longer than click focus")
	}
}
