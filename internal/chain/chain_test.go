package chain

import (
	"context"
	"testing"

	"github.com/ritamzico/searchplan/internal/graphquery"
)

type fakeSearcher struct {
	result Candidates
}

func (f fakeSearcher) Search(ctx context.Context, indexQuery string) (Candidates, error) {
	return f.result, nil
}

type fakeRefiner struct {
	keep map[VertexID]bool
}

func (f fakeRefiner) Refine(ctx context.Context, candidates Candidates, program graphquery.Builder) (Candidates, error) {
	var out Candidates
	for _, c := range candidates {
		if f.keep[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

func TestChain_IndexThenGraphNarrows(t *testing.T) {
	searcher := fakeSearcher{result: Candidates{"v1", "v2", "v3"}}
	refiner := fakeRefiner{keep: map[VertexID]bool{"v1": true, "v3": true}}
	program := graphquery.NewProgram()
	program.Has("name", graphquery.OpEQ, "foo")

	stage := &IndexThenGraphPlanner{Searcher: searcher, IndexQuery: "v.name: foo", Refiner: refiner, GraphProgram: program}
	c := New(stage)

	got, err := c.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := Candidates{"v1", "v3"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Execute = %v, want %v", got, want)
	}
}

func TestChain_EmptyProgramIsPassThrough(t *testing.T) {
	searcher := fakeSearcher{result: Candidates{"v1", "v2"}}
	stage := &IndexThenGraphPlanner{Searcher: searcher, IndexQuery: "v.name: foo", GraphProgram: graphquery.NewProgram()}
	c := New(stage)

	got, err := c.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Execute = %v, want pass-through of 2 candidates", got)
	}
}

func TestChain_EmptyCandidatesShortCircuits(t *testing.T) {
	head := &IndexThenGraphPlanner{Searcher: fakeSearcher{result: Candidates{}}, IndexQuery: "v.name: foo"}
	refineCalled := false
	second := &trackingStage{called: &refineCalled}
	c := New(head, second)

	got, err := c.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if refineCalled {
		t.Error("expected the second stage's Refine to be skipped for an empty candidate set")
	}
}

type trackingStage struct{ called *bool }

func (s *trackingStage) Produce(ctx context.Context) (Candidates, error) { return nil, nil }

func (s *trackingStage) Refine(ctx context.Context, candidates Candidates) (Candidates, error) {
	*s.called = true
	return candidates, nil
}

func TestChain_NoStagesReturnsNil(t *testing.T) {
	c := New()
	got, err := c.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil result for empty chain, got %v", got)
	}
}
