package assemble

import (
	"fmt"

	"digital-garden/backend/internal/content"
)

// BlocksNode is one entry of the external blocks dataset.
type BlocksNode struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Description string `json:"description"`
}

// BlocksLink is one relation of the external blocks dataset.
type BlocksLink struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// BlocksDataset is the raw shape of the external large dataset, consumed only
// at god_mode tier.
type BlocksDataset struct {
	Nodes []BlocksNode `json:"nodes"`
	Links []BlocksLink `json:"links"`
}

// blocksPrefix namespaces dataset IDs so they can never collide with curated
// or expanded node IDs.
const blocksPrefix = "b-"

// TransformBlocks converts the raw dataset into renderable content nodes:
// IDs are prefixed, type is forced to dataset, visibility to god_mode, and
// every node lands in the playground cluster with val 1.
func TransformBlocks(ds *BlocksDataset) *content.Graph {
	out := &content.Graph{}
	if ds == nil {
		return out
	}

	for _, n := range ds.Nodes {
		title := n.Description
		if title == "" {
			title = n.ID
		}
		out.Nodes = append(out.Nodes, content.Node{
			ID:         blocksPrefix + n.ID,
			Title:      title,
			Type:       content.TypeDataset,
			Cluster:    content.ClusterPlayground,
			Visibility: content.TierGodMode,
			Val:        1,
			Meta: &content.Meta{
				Description: fmt.Sprintf("by %s", n.User),
				Category:    "D3 Blocks",
			},
		})
	}
	for _, l := range ds.Links {
		out.Links = append(out.Links, content.Edge{
			Source: blocksPrefix + l.Source,
			Target: blocksPrefix + l.Target,
		})
	}
	return out
}
