package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// ============================================================================
// Stats Operations
// ============================================================================

// Stats aggregates node/edge counts for the admin dashboard.
type Stats struct {
	NodeCount    int64            `json:"node_count"`
	LinkCount    int64            `json:"link_count"`
	ByType       map[string]int64 `json:"by_type"`
	ByCluster    map[string]int64 `json:"by_cluster"`
	ByVisibility map[string]int64 `json:"by_visibility"`
}

// FetchStats computes dashboard aggregates in a single read session.
func (r *Repository) FetchStats(ctx context.Context) (*Stats, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	stats := &Stats{
		ByType:       make(map[string]int64),
		ByCluster:    make(map[string]int64),
		ByVisibility: make(map[string]int64),
	}

	result, err := session.Run(ctx, `
		MATCH (n:Content)
		OPTIONAL MATCH (:Content)-[rel:LINKS_TO]->(:Content)
		RETURN count(DISTINCT n) AS nodes, count(DISTINCT rel) AS links
	`, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count graph: %w", err)
	}
	if result.Next(ctx) {
		record := result.Record()
		stats.NodeCount = getInt64FromRecord(record, "nodes")
		stats.LinkCount = getInt64FromRecord(record, "links")
	}

	grouped := []struct {
		prop string
		into map[string]int64
	}{
		{"type", stats.ByType},
		{"cluster", stats.ByCluster},
		{"visibility", stats.ByVisibility},
	}
	for _, group := range grouped {
		query := fmt.Sprintf(`
			MATCH (n:Content)
			RETURN n.%s AS key, count(n) AS count
		`, group.prop)
		result, err := session.Run(ctx, query, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate by %s: %w", group.prop, err)
		}
		for result.Next(ctx) {
			record := result.Record()
			key := getStringFromRecord(record, "key")
			if key == "" {
				continue
			}
			group.into[key] = getInt64FromRecord(record, "count")
		}
		if err := result.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s aggregates: %w", group.prop, err)
		}
	}

	return stats, nil
}
