package vertexstore

import (
	"context"
	"testing"

	"github.com/ritamzico/searchplan/internal/chain"
	"github.com/ritamzico/searchplan/internal/graphquery"
)

func TestStore_SearchReturnsAllVertices(t *testing.T) {
	s := NewStore()
	s.Put(Vertex{ID: "v1", Attributes: map[string]Value{"name": {Kind: StringVal, S: "foo"}}})
	s.Put(Vertex{ID: "v2", Attributes: map[string]Value{"name": {Kind: StringVal, S: "bar"}}})

	got, err := s.Search(context.Background(), "v.name: foo")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Search = %v, want 2 candidates", got)
	}
}

func TestStore_RefineFiltersByMatcher(t *testing.T) {
	s := NewStore()
	s.Put(Vertex{ID: "v1", Attributes: map[string]Value{"name": {Kind: StringVal, S: "foo"}, "size": {Kind: IntVal, I: 200}}})
	s.Put(Vertex{ID: "v2", Attributes: map[string]Value{"name": {Kind: StringVal, S: "bar"}, "size": {Kind: IntVal, I: 50}}})

	m := NewMatcher()
	m.Has("size", graphquery.OpGT, "100")

	got, err := s.Refine(context.Background(), chain.Candidates{"v1", "v2"}, m)
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	if len(got) != 1 || got[0] != "v1" {
		t.Errorf("Refine = %v, want [v1]", got)
	}
}

func TestStore_RefineOrOfTwoOwnerValues(t *testing.T) {
	s := NewStore()
	s.Put(Vertex{ID: "v1", Attributes: map[string]Value{"owner": {Kind: StringVal, S: "a"}}})
	s.Put(Vertex{ID: "v2", Attributes: map[string]Value{"owner": {Kind: StringVal, S: "b"}}})
	s.Put(Vertex{ID: "v3", Attributes: map[string]Value{"owner": {Kind: StringVal, S: "c"}}})

	left := NewMatcher()
	left.Has("owner", graphquery.OpEQ, "a")
	right := NewMatcher()
	right.Has("owner", graphquery.OpEQ, "b")
	top := NewMatcher()
	top.Or(left, right)

	got, err := s.Refine(context.Background(), chain.Candidates{"v1", "v2", "v3"}, top)
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Refine = %v, want 2 candidates (v1, v2)", got)
	}
}

func TestStore_RefineEmptyProgramIsPassThrough(t *testing.T) {
	s := NewStore()
	s.Put(Vertex{ID: "v1", Attributes: map[string]Value{}})

	got, err := s.Refine(context.Background(), chain.Candidates{"v1"}, NewMatcher())
	if err != nil {
		t.Fatalf("Refine failed: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Refine = %v, want pass-through of 1 candidate", got)
	}
}
