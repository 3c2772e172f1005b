// Package view owns the client-facing state of one garden viewing session:
// the active graph, the layout engine driving it, the camera, and the
// interaction controller. It mediates tier switches so a slow fetch can
// never clobber a newer one.
package view

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/internal/interact"
	"digital-garden/backend/internal/layout"
	"digital-garden/backend/internal/render"
	"digital-garden/backend/pkg/errors"
	"digital-garden/backend/pkg/logger"
)

// GraphProvider assembles the graph for a visibility tier. The garden
// service satisfies it.
type GraphProvider interface {
	Graph(ctx context.Context, tier content.Tier) (*content.Graph, error)
}

// Session is a single viewer's live state. All methods are safe for
// concurrent use.
type Session struct {
	logger   *zap.Logger
	provider GraphProvider
	timeout  time.Duration

	Engine     *layout.Engine
	Painter    *render.Painter
	Camera     *render.Camera
	Controller *interact.Controller

	mu      sync.Mutex
	tier    content.Tier
	graph   *content.Graph
	gen     uint64
	loading bool
}

// NewSession starts a session at the professional tier with an empty graph;
// call SwitchTier to load content.
func NewSession(provider GraphProvider, fetchTimeout time.Duration, sched interact.Scheduler) *Session {
	s := &Session{
		logger:   logger.Get(),
		provider: provider,
		timeout:  fetchTimeout,
		tier:     content.TierProfessional,
		graph:    &content.Graph{},
		Engine:   layout.NewEngine(),
		Camera:   render.NewCamera(),
	}
	s.Painter = render.NewPainter(s.Engine)
	s.Controller = interact.NewController(s, s.Camera, sched)
	return s
}

// Tier returns the tier currently displayed.
func (s *Session) Tier() content.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tier
}

// Loading reports whether a tier fetch is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Graph returns the graph the session is currently displaying.
func (s *Session) Graph() *content.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph
}

// NodePosition satisfies interact.Positioner.
func (s *Session) NodePosition(id string) (float64, float64, bool) {
	p, ok := s.Engine.Position(id)
	return p.X, p.Y, ok
}

// SwitchTier fetches the graph for the requested tier and, if this call is
// still the most recent switch when the fetch completes, makes it the
// active graph and reheats the layout. A switch started later always wins:
// if a newer SwitchTier begins while this fetch is in flight, this result
// is discarded on arrival. On fetch failure the prior graph stays on
// screen untouched and the error is returned for the caller to surface.
func (s *Session) SwitchTier(ctx context.Context, tier content.Tier) error {
	if !tier.Valid() {
		return errors.NewInvalidTier(string(tier))
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	g, err := s.provider.Graph(ctx, tier)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer switch superseded this one while it was in flight.
		s.logger.Debug("Discarding stale tier fetch",
			zap.String("tier", string(tier)),
			zap.Uint64("generation", gen),
		)
		return nil
	}
	s.loading = false

	if err != nil {
		s.logger.Warn("Tier fetch failed, keeping current graph",
			zap.String("tier", string(tier)),
			zap.Error(err),
		)
		return errors.NewFetchFailed(string(tier), err)
	}

	s.tier = tier
	s.graph = g
	s.Engine.SetGraph(g)
	s.Painter.SetGraph(g)
	s.Controller.SetGraph(g)
	s.logger.Info("Tier switched",
		zap.String("tier", string(tier)),
		zap.Int("nodes", len(g.Nodes)),
	)
	return nil
}
