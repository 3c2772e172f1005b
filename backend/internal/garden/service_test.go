package garden

import (
	"context"
	"errors"
	"strings"
	"testing"

	"digital-garden/backend/internal/assemble"
	"digital-garden/backend/internal/content"
	pkgerrors "digital-garden/backend/pkg/errors"
)

type mockFetcher struct {
	calls int
	err   error
}

func (m *mockFetcher) FetchGraph(ctx context.Context, tier content.Tier) (*content.Graph, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	g := &content.Graph{
		Nodes: []content.Node{
			{ID: "me", Title: "Me", Type: content.TypeHub, Cluster: content.ClusterCore,
				Visibility: content.TierProfessional, Val: 10},
			{ID: "skill-react", Title: "React", Type: content.TypeSkill, Cluster: content.ClusterCareer,
				Visibility: content.TierProfessional, Val: 5},
		},
		Links: []content.Edge{{Source: "me", Target: "skill-react"}},
	}
	return content.FilterGraph(g, tier), nil
}

type mockBlocks struct {
	calls int
	err   error
}

func (m *mockBlocks) Load(ctx context.Context) (*assemble.BlocksDataset, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &assemble.BlocksDataset{
		Nodes: []assemble.BlocksNode{{ID: "1", User: "u", Description: "demo"}},
	}, nil
}

func testKeywords() map[string][]string {
	return map[string][]string{"skill-react": {"Hooks", "JSX"}}
}

func TestService_InvalidTier(t *testing.T) {
	svc := NewService(&mockFetcher{}, testKeywords())
	_, err := svc.Graph(context.Background(), content.Tier("bogus"))
	if err == nil || !pkgerrors.IsErrorType(err, pkgerrors.ErrorTypeContent) {
		t.Fatalf("err = %v, want content error", err)
	}
}

func TestService_ExpansionHiddenBelowGodMode(t *testing.T) {
	svc := NewService(&mockFetcher{}, testKeywords())

	g, err := svc.Graph(context.Background(), content.TierProfessional)
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range g.Nodes {
		if strings.Contains(n.ID, "--") {
			t.Errorf("expanded node %q visible at professional", n.ID)
		}
	}
}

func TestService_GodModeIncludesExpansion(t *testing.T) {
	svc := NewService(&mockFetcher{}, testKeywords())

	g, err := svc.Graph(context.Background(), content.TierGodMode)
	if err != nil {
		t.Fatal(err)
	}
	if g.NodeByID("skill-react--hooks") == nil {
		t.Error("expansion missing at god_mode")
	}
	if g.HasDanglingEdges() {
		t.Error("assembled graph has dangling edges")
	}
}

func TestService_BlocksAndFillerOnlyAtGodMode(t *testing.T) {
	blocks := &mockBlocks{}
	svc := NewService(&mockFetcher{}, testKeywords(),
		WithBlocks(blocks), WithFiller(5))

	pro, err := svc.Graph(context.Background(), content.TierProfessional)
	if err != nil {
		t.Fatal(err)
	}
	if blocks.calls != 0 {
		t.Error("blocks loaded below god_mode")
	}
	for _, n := range pro.Nodes {
		if n.Type == content.TypeDataset {
			t.Errorf("dataset node %q below god_mode", n.ID)
		}
	}

	god, err := svc.Graph(context.Background(), content.TierGodMode)
	if err != nil {
		t.Fatal(err)
	}
	if god.NodeByID("b-1") == nil {
		t.Error("blocks node missing at god_mode")
	}
	if god.NodeByID("rand-0") == nil {
		t.Error("filler missing at god_mode")
	}
	if god.HasDanglingEdges() {
		t.Error("god_mode graph has dangling edges")
	}
}

func TestService_CachesPerTier(t *testing.T) {
	fetcher := &mockFetcher{}
	svc := NewService(fetcher, testKeywords())

	ctx := context.Background()
	first, _ := svc.Graph(ctx, content.TierExplorer)
	second, _ := svc.Graph(ctx, content.TierExplorer)
	if fetcher.calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (cached)", fetcher.calls)
	}
	if first != second {
		t.Error("cache returned a different graph instance")
	}

	svc.Invalidate()
	svc.Graph(ctx, content.TierExplorer)
	if fetcher.calls != 2 {
		t.Errorf("fetch calls after invalidate = %d, want 2", fetcher.calls)
	}
}

func TestService_BlocksCacheSurvivesInvalidate(t *testing.T) {
	blocks := &mockBlocks{}
	svc := NewService(&mockFetcher{}, testKeywords(), WithBlocks(blocks))

	ctx := context.Background()
	svc.Graph(ctx, content.TierGodMode)
	svc.Invalidate()
	svc.Graph(ctx, content.TierGodMode)

	if blocks.calls != 1 {
		t.Errorf("blocks loads = %d, want 1 (never re-fetched)", blocks.calls)
	}
}

func TestService_FetchFailureCachesNothing(t *testing.T) {
	fetcher := &mockFetcher{err: errors.New("connection refused")}
	svc := NewService(fetcher, testKeywords())

	ctx := context.Background()
	_, err := svc.Graph(ctx, content.TierProfessional)
	if err == nil {
		t.Fatal("expected error")
	}
	if !pkgerrors.IsErrorType(err, pkgerrors.ErrorTypeFetch) {
		t.Errorf("err = %v, want fetch error", err)
	}
	if !pkgerrors.IsRecoverable(err) {
		t.Error("fetch failure should be recoverable")
	}

	// Recovery: the next call retries instead of serving a cached failure.
	fetcher.err = nil
	if _, err := svc.Graph(ctx, content.TierProfessional); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
}

func TestService_BlocksFailureDegrades(t *testing.T) {
	svc := NewService(&mockFetcher{}, testKeywords(),
		WithBlocks(&mockBlocks{err: errors.New("file missing")}))

	g, err := svc.Graph(context.Background(), content.TierGodMode)
	if err != nil {
		t.Fatalf("blocks failure should not fail the tier: %v", err)
	}
	if g.NodeByID("me") == nil {
		t.Error("base graph missing after blocks degrade")
	}
	for _, n := range g.Nodes {
		if strings.HasPrefix(n.ID, "b-") {
			t.Error("dataset nodes present despite load failure")
		}
	}
}
