package assemble

import (
	"testing"

	"digital-garden/backend/internal/content"
)

func TestMerge_FirstNodeWins(t *testing.T) {
	a := &content.Graph{Nodes: []content.Node{{ID: "x", Title: "Curated"}}}
	b := &content.Graph{Nodes: []content.Node{{ID: "x", Title: "Dataset"}, {ID: "y", Title: "Other"}}}

	merged := Merge(a, b)
	if len(merged.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(merged.Nodes))
	}
	if merged.Nodes[0].Title != "Curated" {
		t.Errorf("collision kept %q, want the earlier source", merged.Nodes[0].Title)
	}
}

func TestMerge_UndirectedEdgeDedup(t *testing.T) {
	g := &content.Graph{
		Nodes: []content.Node{{ID: "a"}, {ID: "b"}},
		Links: []content.Edge{
			{Source: "a", Target: "b"},
			{Source: "a", Target: "b"},
			{Source: "b", Target: "a"},
		},
	}

	merged := Merge(g)
	if len(merged.Links) != 1 {
		t.Fatalf("links = %d, want 1 (reversed pair is the same edge)", len(merged.Links))
	}
	if merged.Links[0].Source != "a" || merged.Links[0].Target != "b" {
		t.Errorf("kept edge = %+v, want the first occurrence", merged.Links[0])
	}
}

func TestMerge_PrunesDanglingEdges(t *testing.T) {
	g := &content.Graph{
		Nodes: []content.Node{{ID: "a"}},
		Links: []content.Edge{
			{Source: "a", Target: "ghost"},
			{Source: "ghost", Target: "a"},
		},
	}

	merged := Merge(g)
	if len(merged.Links) != 0 {
		t.Errorf("links = %+v, want dangling edges pruned", merged.Links)
	}
	if merged.HasDanglingEdges() {
		t.Error("merged graph has dangling edges")
	}
}

func TestMerge_EdgeAcrossSources(t *testing.T) {
	a := &content.Graph{Nodes: []content.Node{{ID: "hub"}}}
	b := &content.Graph{
		Nodes: []content.Node{{ID: "leaf"}},
		Links: []content.Edge{{Source: "hub", Target: "leaf"}},
	}

	merged := Merge(a, b)
	if len(merged.Links) != 1 {
		t.Errorf("cross-source edge dropped: %+v", merged.Links)
	}
}

func TestMerge_NilSource(t *testing.T) {
	merged := Merge(nil, &content.Graph{Nodes: []content.Node{{ID: "a"}}}, nil)
	if len(merged.Nodes) != 1 {
		t.Errorf("nodes = %d, want 1", len(merged.Nodes))
	}
}

func TestTransformBlocks(t *testing.T) {
	ds := &BlocksDataset{
		Nodes: []BlocksNode{
			{ID: "1234", User: "mbostock", Description: "Force Layout Demo"},
			{ID: "5678", User: "anon"},
		},
		Links: []BlocksLink{{Source: "1234", Target: "5678"}},
	}

	g := TransformBlocks(ds)
	if len(g.Nodes) != 2 || len(g.Links) != 1 {
		t.Fatalf("got %d nodes %d links", len(g.Nodes), len(g.Links))
	}

	n := g.NodeByID("b-1234")
	if n == nil {
		t.Fatal("expected prefixed id b-1234")
	}
	if n.Title != "Force Layout Demo" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Type != content.TypeDataset || n.Cluster != content.ClusterPlayground {
		t.Errorf("type/cluster = %v/%v", n.Type, n.Cluster)
	}
	if n.Visibility != content.TierGodMode || n.Val != 1 {
		t.Errorf("visibility/val = %v/%v", n.Visibility, n.Val)
	}
	if n.Meta.Description != "by mbostock" || n.Meta.Category != "D3 Blocks" {
		t.Errorf("meta = %+v", n.Meta)
	}

	// Description-less nodes fall back to the raw id as title.
	if got := g.NodeByID("b-5678").Title; got != "5678" {
		t.Errorf("fallback title = %q", got)
	}

	if g.Links[0].Source != "b-1234" || g.Links[0].Target != "b-5678" {
		t.Errorf("link endpoints not prefixed: %+v", g.Links[0])
	}
}

func TestTransformBlocks_Nil(t *testing.T) {
	g := TransformBlocks(nil)
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Error("nil dataset should transform to an empty graph")
	}
}

func TestRandomTree_Connected(t *testing.T) {
	g := RandomTree(25, "")
	if len(g.Nodes) != 25 {
		t.Fatalf("nodes = %d", len(g.Nodes))
	}
	// A tree over n nodes has exactly n-1 edges and no dangling endpoints.
	if len(g.Links) != 24 {
		t.Errorf("links = %d, want 24", len(g.Links))
	}
	if g.HasDanglingEdges() {
		t.Error("random tree has dangling edges")
	}
	for _, n := range g.Nodes {
		if n.Visibility != content.TierGodMode {
			t.Fatalf("filler node %q not god_mode", n.ID)
		}
	}
}

func TestRandomTree_Bridge(t *testing.T) {
	g := RandomTree(3, "me")
	last := g.Links[len(g.Links)-1]
	if last.Source != "me" || last.Target != "rand-0" {
		t.Errorf("bridge edge = %+v", last)
	}
}

func TestRandomTree_Empty(t *testing.T) {
	g := RandomTree(0, "me")
	if len(g.Nodes) != 0 || len(g.Links) != 0 {
		t.Error("zero-size tree should be empty, bridge included")
	}
}
