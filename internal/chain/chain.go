// Package chain composes planners into the Processor Chain (§4.6): an
// ordered pipeline of stages, each producing or refining a candidate
// vertex set. The source's linked list of processors collapses here into
// an explicit vector per the design's own note, since addProcessor's
// recursion was only ever building a list.
package chain

import "context"

// VertexID identifies a vertex in the graph engine. The planner never
// interprets it beyond passing it between stages.
type VertexID string

// Candidates is the sequence of vertices produced by one stage and
// narrowed by the next.
type Candidates []VertexID

// Stage is one planner in the chain: Produce creates an initial
// candidate set (typically via the index pass), Refine narrows a
// supplied set (typically via the graph pass).
type Stage interface {
	Produce(ctx context.Context) (Candidates, error)
	Refine(ctx context.Context, candidates Candidates) (Candidates, error)
}

// Chain is a linear pipeline: the first stage's Produce seeds the
// candidate set, and each subsequent stage's Refine narrows it in turn.
// An empty candidate set short-circuits the remaining stages.
type Chain struct {
	stages []Stage
}

// New builds a Chain from stages in execution order. The chain never
// calls the first stage's Refine; only its Produce runs.
func New(stages ...Stage) *Chain {
	return &Chain{stages: stages}
}

// Execute runs the chain to completion, returning the final refined
// candidate set.
func (c *Chain) Execute(ctx context.Context) (Candidates, error) {
	if len(c.stages) == 0 {
		return nil, nil
	}

	candidates, err := c.stages[0].Produce(ctx)
	if err != nil {
		return nil, err
	}

	for _, stage := range c.stages[1:] {
		if len(candidates) == 0 {
			break
		}
		candidates, err = stage.Refine(ctx, candidates)
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}
