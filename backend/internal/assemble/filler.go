package assemble

import (
	"fmt"
	"math/rand"

	"digital-garden/backend/internal/content"
)

var fillerClusters = []content.Cluster{
	content.ClusterCareer,
	content.ClusterLibrary,
	content.ClusterPlayground,
	content.ClusterLife,
	content.ClusterCore,
}

// RandomTree generates n synthetic god_mode filler nodes wired into a random
// tree: each node links back to a uniformly chosen earlier node, so the
// result is connected and can never dangle. When bridgeTo is non-empty an
// extra edge ties the tree's root to that node so the filler doesn't float
// free of the rest of the graph.
//
// The tree is deliberately unseeded; it is a decorative density layer, not
// part of the data model.
func RandomTree(n int, bridgeTo string) *content.Graph {
	out := &content.Graph{}
	if n <= 0 {
		return out
	}

	for i := 0; i < n; i++ {
		out.Nodes = append(out.Nodes, content.Node{
			ID:         fmt.Sprintf("rand-%d", i),
			Title:      fmt.Sprintf("Node %d", i),
			Type:       content.TypeDataset,
			Cluster:    fillerClusters[i%len(fillerClusters)],
			Visibility: content.TierGodMode,
			Val:        1,
			Meta:       &content.Meta{Description: fmt.Sprintf("Random node %d", i)},
		})
	}
	for i := 1; i < n; i++ {
		out.Links = append(out.Links, content.Edge{
			Source: fmt.Sprintf("rand-%d", i),
			Target: fmt.Sprintf("rand-%d", rand.Intn(i)),
		})
	}
	if bridgeTo != "" {
		out.Links = append(out.Links, content.Edge{Source: bridgeTo, Target: "rand-0"})
	}
	return out
}
