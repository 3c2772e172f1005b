package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"digital-garden/backend/internal/content"
)

// ============================================================================
// Node Operations
// ============================================================================

// UpsertNode creates or fully replaces a content node.
func (r *Repository) UpsertNode(ctx context.Context, n content.Node) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		MERGE (n:Content {id: $id})
		SET n = $props
	`
	props := nodeToProps(n)
	_, err := session.Run(ctx, query, map[string]interface{}{
		"id":    n.ID,
		"props": props,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert node %s: %w", n.ID, err)
	}
	return nil
}

// GetNode fetches a single node by ID.
func (r *Repository) GetNode(ctx context.Context, id string) (*content.Node, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `MATCH (n:Content {id: $id}) RETURN n`, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	if !result.Next(ctx) {
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read node: %w", err)
		}
		return nil, ErrNodeNotFound{ID: id}
	}
	raw, _ := result.Record().Get("n")
	node, ok := raw.(neo4j.Node)
	if !ok {
		return nil, ErrNodeNotFound{ID: id}
	}
	n := nodeFromProps(node.Props)
	return &n, nil
}

// DeleteNode removes a node and all edges touching it.
func (r *Repository) DeleteNode(ctx context.Context, id string) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	result, err := session.Run(ctx, `
		MATCH (n:Content {id: $id})
		DETACH DELETE n
		RETURN count(n) AS deleted
	`, map[string]interface{}{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	if result.Next(ctx) {
		if getInt64FromRecord(result.Record(), "deleted") == 0 {
			return ErrNodeNotFound{ID: id}
		}
	}
	return nil
}

// ListFilter narrows ListNodes results. Zero values mean "no filter".
type ListFilter struct {
	Type    content.NodeType
	Cluster content.Cluster
	Search  string // case-insensitive substring of the title
}

// ListNodes returns nodes matching the filter, ordered by ID.
func (r *Repository) ListNodes(ctx context.Context, filter ListFilter) ([]content.Node, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	var conditions []string
	params := map[string]interface{}{}
	if filter.Type != "" {
		conditions = append(conditions, "n.type = $type")
		params["type"] = string(filter.Type)
	}
	if filter.Cluster != "" {
		conditions = append(conditions, "n.cluster = $cluster")
		params["cluster"] = string(filter.Cluster)
	}
	if filter.Search != "" {
		conditions = append(conditions, "toLower(n.title) CONTAINS toLower($search)")
		params["search"] = filter.Search
	}

	query := "MATCH (n:Content)"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " RETURN n ORDER BY n.id"

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	var nodes []content.Node
	for result.Next(ctx) {
		raw, ok := result.Record().Get("n")
		if !ok {
			continue
		}
		if node, ok := raw.(neo4j.Node); ok {
			nodes = append(nodes, nodeFromProps(node.Props))
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read nodes: %w", err)
	}
	return nodes, nil
}
