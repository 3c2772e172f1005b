// Package garden exposes the graph source collaborator: one consistent,
// fully merged graph per visibility tier, cached until a write invalidates
// it.
package garden

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"digital-garden/backend/internal/assemble"
	"digital-garden/backend/internal/content"
	"digital-garden/backend/pkg/errors"
	"digital-garden/backend/pkg/logger"
)

// Fetcher is the persisted-graph dependency (implemented by graph.Repository).
type Fetcher interface {
	FetchGraph(ctx context.Context, tier content.Tier) (*content.Graph, error)
}

// BlocksLoader loads the external large dataset. Only consulted at god_mode.
type BlocksLoader interface {
	Load(ctx context.Context) (*assemble.BlocksDataset, error)
}

// Option configures a Service.
type Option func(*Service)

// WithFiller enables n synthetic filler nodes at god_mode tier.
func WithFiller(n int) Option {
	return func(s *Service) { s.fillerSize = n }
}

// WithBlocks wires the external dataset loader.
func WithBlocks(loader BlocksLoader) Option {
	return func(s *Service) { s.blocks = loader }
}

// Service assembles and caches one graph per tier. The base graph comes from
// the store; the keyword expansion layer is regenerated on every assembly
// from the static table; the blocks dataset and random filler are merged in
// at god_mode only.
type Service struct {
	repo       Fetcher
	blocks     BlocksLoader
	keywords   map[string][]string
	fillerSize int
	logger     *zap.Logger

	mu    sync.Mutex
	cache map[content.Tier]*content.Graph

	// The transformed blocks dataset is fetched once and reused across tier
	// switches back to god_mode; it is never invalidated within a session.
	blocksMu    sync.Mutex
	blocksCache *content.Graph
}

// NewService creates a garden service over the given store.
func NewService(repo Fetcher, keywords map[string][]string, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		keywords: keywords,
		logger:   logger.Get(),
		cache:    make(map[content.Tier]*content.Graph),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Graph returns the fully merged, internally valid graph for the requested
// tier. A fetch failure leaves every cache untouched so callers can keep
// showing the previous state.
func (s *Service) Graph(ctx context.Context, tier content.Tier) (*content.Graph, error) {
	if !tier.Valid() {
		return nil, errors.NewInvalidTier(string(tier))
	}

	s.mu.Lock()
	if g, ok := s.cache[tier]; ok {
		s.mu.Unlock()
		return g, nil
	}
	s.mu.Unlock()

	g, err := s.assembleTier(ctx, tier)
	if err != nil {
		return nil, errors.NewFetchFailed(string(tier), err)
	}

	s.mu.Lock()
	s.cache[tier] = g
	s.mu.Unlock()
	return g, nil
}

// Invalidate drops all tier caches. Called after every admin write. The
// blocks dataset cache is deliberately left alone; the external dataset does
// not change with local content.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.cache = make(map[content.Tier]*content.Graph)
	s.mu.Unlock()
	s.logger.Debug("Invalidated tier caches")
}

func (s *Service) assembleTier(ctx context.Context, tier content.Tier) (*content.Graph, error) {
	var (
		base   *content.Graph
		blocks *content.Graph
	)

	// The base graph and the external dataset are fetched concurrently, but
	// the merged result is only built once both have resolved; a partially
	// merged graph is never exposed.
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		g, err := s.repo.FetchGraph(grpCtx, tier)
		if err != nil {
			return err
		}
		base = g
		return nil
	})
	if tier == content.TierGodMode && s.blocks != nil {
		grp.Go(func() error {
			g, err := s.loadBlocks(grpCtx)
			if err != nil {
				// The dataset is decorative density; degrade to none of it
				// rather than failing the whole tier.
				s.logger.Warn("Blocks dataset unavailable", zap.Error(err))
				return nil
			}
			blocks = g
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	expanded := content.FilterGraph(content.Expand(base.Nodes, s.keywords), tier)

	sources := []*content.Graph{base, expanded}
	if tier == content.TierGodMode {
		if blocks != nil {
			sources = append(sources, blocks)
		}
		if s.fillerSize > 0 {
			bridge := ""
			if len(base.Nodes) > 0 {
				bridge = base.Nodes[0].ID
			}
			sources = append(sources, assemble.RandomTree(s.fillerSize, bridge))
		}
	}

	merged := assemble.Merge(sources...)
	s.logger.Info("Assembled tier graph",
		zap.String("tier", string(tier)),
		zap.Int("nodes", len(merged.Nodes)),
		zap.Int("links", len(merged.Links)),
	)
	return merged, nil
}

func (s *Service) loadBlocks(ctx context.Context) (*content.Graph, error) {
	s.blocksMu.Lock()
	defer s.blocksMu.Unlock()
	if s.blocksCache != nil {
		return s.blocksCache, nil
	}
	ds, err := s.blocks.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.blocksCache = assemble.TransformBlocks(ds)
	return s.blocksCache, nil
}
