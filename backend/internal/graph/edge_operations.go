package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Edge Operations
// ============================================================================

// CreateEdge links two existing nodes. Edges are undirected in intent, so a
// relationship in either stored direction counts as already present and the
// call is a no-op. Returns ErrNodeNotFound if either endpoint is missing.
func (r *Repository) CreateEdge(ctx context.Context, source, target string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	for _, id := range []string{source, target} {
		if _, err := r.GetNode(ctx, id); err != nil {
			return err
		}
	}

	query := `
		MATCH (a:Content {id: $source}), (b:Content {id: $target})
		WHERE NOT (a)-[:LINKS_TO]-(b)
		CREATE (a)-[:LINKS_TO]->(b)
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"source": source,
		"target": target,
	})
	if err != nil {
		return fmt.Errorf("failed to create edge %s -> %s: %w", source, target, err)
	}
	return nil
}

// DeleteEdge removes the relationship between two nodes in either stored
// direction.
func (r *Repository) DeleteEdge(ctx context.Context, source, target string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MATCH (a:Content {id: $source})-[rel:LINKS_TO]-(b:Content {id: $target})
		DELETE rel
	`
	_, err := session.Run(ctx, query, map[string]interface{}{
		"source": source,
		"target": target,
	})
	if err != nil {
		return fmt.Errorf("failed to delete edge %s -> %s: %w", source, target, err)
	}
	return nil
}
