package chain

import (
	"context"

	"github.com/ritamzico/searchplan/internal/graphquery"
)

// IndexSearcher is the abstract index engine collaborator: it executes an
// already-emitted index query string and returns the resulting vertex
// set. The planner never implements this itself; it is supplied by the
// caller wiring a real index engine client.
type IndexSearcher interface {
	Search(ctx context.Context, indexQuery string) (Candidates, error)
}

// GraphRefiner is the abstract graph engine collaborator: it narrows (or,
// given an empty candidate set, produces) a vertex set against a graph
// query builder program.
type GraphRefiner interface {
	Refine(ctx context.Context, candidates Candidates, program graphquery.Builder) (Candidates, error)
}

// IndexThenGraphPlanner is the pushdown-eligible path: the index pass
// produces a candidate set, which the graph pass then refines against
// the residual (graph-only) predicates. Produce runs both passes, so the
// planner narrows its candidates even as a chain's only stage. If the
// residual program is empty, Refine is a pass-through.
type IndexThenGraphPlanner struct {
	Searcher     IndexSearcher
	IndexQuery   string
	Refiner      GraphRefiner
	GraphProgram graphquery.Builder
}

func (p *IndexThenGraphPlanner) Produce(ctx context.Context) (Candidates, error) {
	candidates, err := p.Searcher.Search(ctx, p.IndexQuery)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return candidates, nil
	}
	return p.Refine(ctx, candidates)
}

func (p *IndexThenGraphPlanner) Refine(ctx context.Context, candidates Candidates) (Candidates, error) {
	if p.GraphProgram == nil || p.GraphProgram.Empty() {
		return candidates, nil
	}
	return p.Refiner.Refine(ctx, candidates, p.GraphProgram)
}

// GraphOnlyPlanner is the pushdown-disallowed path: there is no index
// pass, so Produce itself must ask the graph engine to evaluate the full
// AST's program against its own universe of vertices.
type GraphOnlyPlanner struct {
	Refiner      GraphRefiner
	GraphProgram graphquery.Builder
	Universe     Candidates
}

func (p *GraphOnlyPlanner) Produce(ctx context.Context) (Candidates, error) {
	return p.Refiner.Refine(ctx, p.Universe, p.GraphProgram)
}

func (p *GraphOnlyPlanner) Refine(ctx context.Context, candidates Candidates) (Candidates, error) {
	return p.Refiner.Refine(ctx, candidates, p.GraphProgram)
}

// ClassificationOnlyPlanner runs neither the index nor the graph engine;
// it is used to drive the classifier and emitters purely for diagnostics
// (e.g. an "explain plan" request), with Produce and Refine both acting
// as identity operations over whatever candidate set is already in hand.
type ClassificationOnlyPlanner struct{}

func (ClassificationOnlyPlanner) Produce(ctx context.Context) (Candidates, error) {
	return nil, nil
}

func (ClassificationOnlyPlanner) Refine(ctx context.Context, candidates Candidates) (Candidates, error) {
	return candidates, nil
}
