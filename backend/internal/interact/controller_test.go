package interact

import (
	"fmt"
	"testing"
	"time"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/render"
)

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	pending []func()
	delays  []time.Duration
}

func (m *manualScheduler) After(d time.Duration, fn func()) {
	m.pending = append(m.pending, fn)
	m.delays = append(m.delays, d)
}

func (m *manualScheduler) fire() {
	for _, fn := range m.pending {
		fn()
	}
	m.pending = nil
}

type fixedPositions map[string][2]float64

func (f fixedPositions) NodePosition(id string) (float64, float64, bool) {
	p, ok := f[id]
	return p[0], p[1], ok
}

func searchGraph() *content.Graph {
	return &content.Graph{Nodes: []content.Node{
		{ID: "skill-rust", Title: "Rust",
			Meta: &content.Meta{Description: "Systems programming", Tags: []string{"systems"}}},
		{ID: "blog-rust-journey", Title: "My Journey",
			Meta: &content.Meta{Description: "Six months of Rust", Tags: []string{"learning"}}},
		{ID: "skill-go", Title: "Go",
			Meta: &content.Meta{Tags: []string{"backend", "trusty"}}},
		{ID: "no-meta", Title: "Plain"},
	}}
}

func newTestController(sched Scheduler) (*Controller, *render.Camera) {
	cam := render.NewCamera()
	pos := fixedPositions{
		"skill-rust": {50, 50},
		"skill-go":   {-50, 0},
	}
	ctl := NewController(pos, cam, sched)
	ctl.SetGraph(searchGraph())
	return ctl, cam
}

func TestSearch_MatchesTitleDescriptionAndTags(t *testing.T) {
	ctl, _ := newTestController(nil)

	got := ctl.Search("rust")
	if len(got) != 3 {
		t.Fatalf("results = %d, want 3 (title, description, tag)", len(got))
	}
	// Source order is preserved.
	if got[0].ID != "skill-rust" || got[1].ID != "blog-rust-journey" || got[2].ID != "skill-go" {
		t.Errorf("result order = %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ctl, _ := newTestController(nil)
	if len(ctl.Search("RuSt")) != 3 {
		t.Error("search should ignore case")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	ctl, _ := newTestController(nil)
	if got := ctl.Search("   "); got != nil {
		t.Errorf("whitespace query returned %d results", len(got))
	}
}

func TestSearch_CapsResults(t *testing.T) {
	g := &content.Graph{}
	for i := 0; i < 20; i++ {
		g.Nodes = append(g.Nodes, content.Node{
			ID: fmt.Sprintf("n%d", i), Title: fmt.Sprintf("common %d", i),
		})
	}
	ctl, _ := newTestController(nil)
	ctl.SetGraph(g)

	got := ctl.Search("common")
	if len(got) != MaxSearchResults {
		t.Errorf("results = %d, want cap of %d", len(got), MaxSearchResults)
	}
	if got[0].ID != "n0" {
		t.Error("cap should keep the earliest matches")
	}
}

func TestClick_PanelImmediateAndCameraFlies(t *testing.T) {
	sched := &manualScheduler{}
	ctl, cam := newTestController(sched)

	ctl.Click("skill-rust")
	if ctl.PanelNodeID != "skill-rust" {
		t.Error("panel not open immediately on click")
	}
	if !cam.Animating() {
		t.Error("camera not flying after click")
	}
	if len(sched.pending) != 0 {
		t.Error("click should not defer anything")
	}
}

func TestSelectFromSearch_PanelDeferred(t *testing.T) {
	sched := &manualScheduler{}
	ctl, cam := newTestController(sched)

	ctl.SelectFromSearch("skill-rust")
	if !cam.Animating() {
		t.Error("camera not flying after search selection")
	}
	if ctl.PanelNodeID != "" {
		t.Error("panel opened before its delay elapsed")
	}
	if len(sched.delays) != 1 || sched.delays[0] != PanelOpenDelay {
		t.Fatalf("scheduled delays = %v", sched.delays)
	}
	if sched.delays[0] == render.SearchFocusDuration {
		t.Error("panel delay should be independent of the focus duration")
	}

	sched.fire()
	if ctl.PanelNodeID != "skill-rust" {
		t.Error("panel not open after delay fired")
	}
}

func TestSelect_UnknownOrUnplacedIgnored(t *testing.T) {
	sched := &manualScheduler{}
	ctl, cam := newTestController(sched)

	ctl.Click("ghost")
	ctl.SelectFromSearch("ghost")
	// Known node with no layout position yet.
	ctl.Click("no-meta")

	if ctl.PanelNodeID != "" || cam.Animating() || len(sched.pending) != 0 {
		t.Error("unknown/unplaced selection should be a complete no-op")
	}
}

func TestClosePanel_DoesNotMoveCamera(t *testing.T) {
	ctl, cam := newTestController(&manualScheduler{})

	ctl.Click("skill-rust")
	cam.Advance(render.ClickFocusDuration)
	x, y := cam.X, cam.Y

	ctl.ClosePanel()
	if ctl.PanelNodeID != "" {
		t.Error("panel still open")
	}
	if cam.X != x || cam.Y != y || cam.Animating() {
		t.Error("closing the panel moved the camera")
	}
}
