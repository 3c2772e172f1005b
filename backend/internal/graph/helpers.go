package graph

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"digital-garden/backend/internal/content"
)

// ============================================================================
// Helper Functions
// ============================================================================

func getStringFromRecord(record *neo4j.Record, key string) string {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return ""
	}
	if str, ok := val.(string); ok {
		return str
	}
	return ""
}

func getInt64FromRecord(record *neo4j.Record, key string) int64 {
	val, ok := record.Get(key)
	if !ok || val == nil {
		return 0
	}
	if i, ok := val.(int64); ok {
		return i
	}
	if i, ok := val.(int); ok {
		return int64(i)
	}
	return 0
}

func getStringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func getFloatProp(props map[string]interface{}, key string, def float64) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return def
}

func getStringSliceProp(props map[string]interface{}, key string) []string {
	raw, ok := props[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// nodeFromProps converts stored node properties into the typed content model.
// Meta fields are flattened onto the vertex in the store; this is where they
// fold back into the optional bag (absent fields stay absent).
func nodeFromProps(props map[string]interface{}) content.Node {
	n := content.Node{
		ID:         getStringProp(props, "id"),
		Title:      getStringProp(props, "title"),
		Type:       content.NormalizeType(getStringProp(props, "type")),
		Cluster:    content.Cluster(getStringProp(props, "cluster")),
		Visibility: content.Tier(getStringProp(props, "visibility")),
		Val:        getFloatProp(props, "val", 1),
		Content:    getStringProp(props, "content"),
	}

	meta := content.Meta{
		Description: getStringProp(props, "description"),
		Date:        getStringProp(props, "date"),
		Tags:        getStringSliceProp(props, "tags"),
		Link:        getStringProp(props, "link"),
		Category:    getStringProp(props, "category"),
		Image:       getStringProp(props, "image"),
	}
	if meta.Description != "" || meta.Date != "" || len(meta.Tags) > 0 ||
		meta.Link != "" || meta.Category != "" || meta.Image != "" {
		n.Meta = &meta
	}
	return n
}

// nodeToProps flattens a content node into storable properties.
func nodeToProps(n content.Node) map[string]interface{} {
	props := map[string]interface{}{
		"id":         n.ID,
		"title":      n.Title,
		"type":       string(n.Type),
		"cluster":    string(n.Cluster),
		"visibility": string(n.Visibility),
		"val":        n.Val,
		"content":    n.Content,
	}
	if n.Meta != nil {
		props["description"] = n.Meta.Description
		props["date"] = n.Meta.Date
		props["link"] = n.Meta.Link
		props["category"] = n.Meta.Category
		props["image"] = n.Meta.Image
		if len(n.Meta.Tags) > 0 {
			props["tags"] = n.Meta.Tags
		}
	}
	return props
}
