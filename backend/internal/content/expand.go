package content

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases a keyword and collapses every run of non-alphanumeric
// characters into a single hyphen. "React Router" -> "react-router".
func Slug(keyword string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(keyword), "-")
}

// ChildID derives the node ID for a keyword expanded under a parent.
func ChildID(parentID, keyword string) string {
	return fmt.Sprintf("%s--%s", parentID, Slug(keyword))
}

// Expand turns curated parent nodes into an explorable leaf layer using a
// static keyword table. For each parent present in both the node set and the
// table, each keyword becomes a child node inheriting the parent's type and
// cluster, forced to god_mode visibility with val 1 and a synthesized
// description, plus a parent->child edge. The first min(3, n-1) consecutive
// keyword pairs are additionally chained together so siblings cluster
// locally.
//
// A derived ID already present in the accumulated set is skipped, which makes
// expansion idempotent across repeated invocation. Parents in the table but
// missing from the node set are silently ignored.
func Expand(parents []Node, table map[string][]string) *Graph {
	out := &Graph{}

	existing := make(map[string]struct{}, len(parents))
	byID := make(map[string]*Node, len(parents))
	for i := range parents {
		existing[parents[i].ID] = struct{}{}
		byID[parents[i].ID] = &parents[i]
	}

	// Iterate parents in their curated order so output order is stable,
	// rather than ranging over the map.
	for i := range parents {
		parent := &parents[i]
		keywords, ok := table[parent.ID]
		if !ok {
			continue
		}

		childIDs := make([]string, len(keywords))
		for j, kw := range keywords {
			childID := ChildID(parent.ID, kw)
			childIDs[j] = childID

			if _, dup := existing[childID]; dup {
				continue
			}
			existing[childID] = struct{}{}

			category := ""
			if parent.Meta != nil {
				category = parent.Meta.Category
			}
			out.Nodes = append(out.Nodes, Node{
				ID:         childID,
				Title:      kw,
				Type:       parent.Type,
				Cluster:    parent.Cluster,
				Visibility: TierGodMode,
				Val:        1,
				Meta: &Meta{
					Description: fmt.Sprintf("%s — related to %s", kw, parent.Title),
					Category:    category,
				},
			})
			out.Links = append(out.Links, Edge{Source: parent.ID, Target: childID})
		}

		// Sibling chain among the first few derived IDs
		chain := len(childIDs) - 1
		if chain > 3 {
			chain = 3
		}
		for j := 0; j < chain; j++ {
			out.Links = append(out.Links, Edge{Source: childIDs[j], Target: childIDs[j+1]})
		}
	}

	return out
}
