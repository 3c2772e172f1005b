package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"digital-garden/backend/internal/content"
	"digital-garden/backend/pkg/logger"
)

// Repository handles all Neo4j database operations. Nodes are stored as
// (:Content) vertices and edges as [:LINKS_TO] relationships; the in-memory
// content.Node/content.Edge model is the typed view of that store.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

// Close closes the Neo4j driver connection
func (r *Repository) Close() error {
	return r.driver.Close(context.Background())
}

// ErrNodeNotFound is returned when a node ID does not exist in the store
type ErrNodeNotFound struct {
	ID string
}

func (e ErrNodeNotFound) Error() string {
	return fmt.Sprintf("node not found: %s", e.ID)
}

// tiersUpTo lists the visibility values admitted at the requested tier.
func tiersUpTo(tier content.Tier) []string {
	out := make([]string, 0, 3)
	for _, t := range content.Tiers {
		if t.Rank() <= tier.Rank() {
			out = append(out, string(t))
		}
	}
	return out
}

// FetchGraph returns the persisted graph visible at the requested tier.
// Edge endpoints are pruned in the query itself, so the result never
// contains a dangling edge.
func (r *Repository) FetchGraph(ctx context.Context, tier content.Tier) (*content.Graph, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	visible := tiersUpTo(tier)
	g := &content.Graph{}

	nodeQuery := `
		MATCH (n:Content)
		WHERE n.visibility IN $tiers
		RETURN n
		ORDER BY n.id
	`
	result, err := session.Run(ctx, nodeQuery, map[string]interface{}{"tiers": visible})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch nodes: %w", err)
	}
	for result.Next(ctx) {
		node, ok := result.Record().Get("n")
		if !ok {
			continue
		}
		if n, ok := node.(neo4j.Node); ok {
			g.Nodes = append(g.Nodes, nodeFromProps(n.Props))
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}

	linkQuery := `
		MATCH (a:Content)-[:LINKS_TO]->(b:Content)
		WHERE a.visibility IN $tiers AND b.visibility IN $tiers
		RETURN a.id AS source, b.id AS target
		ORDER BY source, target
	`
	result, err = session.Run(ctx, linkQuery, map[string]interface{}{"tiers": visible})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links: %w", err)
	}
	for result.Next(ctx) {
		record := result.Record()
		g.Links = append(g.Links, content.Edge{
			Source: getStringFromRecord(record, "source"),
			Target: getStringFromRecord(record, "target"),
		})
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	r.logger.Debug("Fetched graph",
		zap.String("tier", string(tier)),
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("links", len(g.Links)),
	)
	return g, nil
}
