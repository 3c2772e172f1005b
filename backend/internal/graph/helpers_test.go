package graph

import (
	"testing"

	"digital-garden/backend/internal/content"
)

func TestNodeFromProps_LegacyTypeNormalized(t *testing.T) {
	n := nodeFromProps(map[string]interface{}{
		"id": "about", "title": "About", "type": "about",
		"cluster": "core", "visibility": "professional", "val": int64(2),
	})
	if n.Type != content.TypeNote {
		t.Errorf("legacy type mapped to %v, want note", n.Type)
	}
	if n.Val != 2 {
		t.Errorf("val = %v, want int64 prop coerced", n.Val)
	}
}

func TestNodeFromProps_MetaStaysAbsent(t *testing.T) {
	n := nodeFromProps(map[string]interface{}{
		"id": "bare", "title": "Bare", "type": "note",
		"cluster": "core", "visibility": "professional", "val": 1.0,
	})
	if n.Meta != nil {
		t.Errorf("meta = %+v, want nil when no meta props stored", n.Meta)
	}
}

func TestNodeFromProps_MetaFoldsBack(t *testing.T) {
	n := nodeFromProps(map[string]interface{}{
		"id": "x", "title": "X", "type": "skill",
		"cluster": "career", "visibility": "explorer", "val": 1.0,
		"tags": []interface{}{"go", "backend"},
		"date": "2025-03-01",
	})
	if n.Meta == nil {
		t.Fatal("meta not folded back")
	}
	if len(n.Meta.Tags) != 2 || n.Meta.Date != "2025-03-01" {
		t.Errorf("meta = %+v", n.Meta)
	}
}

func TestNodeFromProps_MissingValDefaults(t *testing.T) {
	n := nodeFromProps(map[string]interface{}{"id": "v", "title": "V", "type": "note"})
	if n.Val != 1 {
		t.Errorf("val = %v, want default 1", n.Val)
	}
}
