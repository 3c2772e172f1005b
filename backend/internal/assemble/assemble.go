// Package assemble merges heterogeneous graph sources (curated content,
// keyword expansion, external datasets, synthetic filler) into a single
// consistent graph: unique node IDs, no dangling edges, no duplicate edges.
package assemble

import (
	"digital-garden/backend/internal/content"
)

type edgeKey struct {
	a, b string
}

// Edges are undirected: {a,b} and {b,a} carry the same identity, so the
// dedup key is the lexicographically ordered pair.
func keyFor(e content.Edge) edgeKey {
	if e.Source <= e.Target {
		return edgeKey{e.Source, e.Target}
	}
	return edgeKey{e.Target, e.Source}
}

// Merge combines graphs in precedence order into one consistent graph.
//
// Nodes: concatenated in order; on ID collision the first occurrence wins and
// later entries are dropped, never merged.
// Edges: concatenated in the same order, then pruned of any edge whose
// endpoint is missing from the merged node set, then deduplicated as
// undirected pairs keeping the first occurrence.
//
// Output order is insertion order, so the result is deterministic given its
// inputs.
func Merge(graphs ...*content.Graph) *content.Graph {
	out := &content.Graph{}

	seen := make(map[string]struct{})
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, n := range g.Nodes {
			if _, dup := seen[n.ID]; dup {
				continue
			}
			seen[n.ID] = struct{}{}
			out.Nodes = append(out.Nodes, n)
		}
	}

	seenEdges := make(map[edgeKey]struct{})
	for _, g := range graphs {
		if g == nil {
			continue
		}
		for _, l := range g.Links {
			if _, ok := seen[l.Source]; !ok {
				continue
			}
			if _, ok := seen[l.Target]; !ok {
				continue
			}
			k := keyFor(l)
			if _, dup := seenEdges[k]; dup {
				continue
			}
			seenEdges[k] = struct{}{}
			out.Links = append(out.Links, l)
		}
	}

	return out
}
