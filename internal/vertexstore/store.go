package vertexstore

import (
	"context"

	"github.com/ritamzico/searchplan/internal/chain"
	"github.com/ritamzico/searchplan/internal/graphquery"
)

// Vertex is one row in the demo store: a stable ID plus a flat attribute
// map keyed by attribute name (e.g. "name"), the same names the graph
// emitter passes to Matcher.Has.
type Vertex struct {
	ID         chain.VertexID
	Attributes map[string]Value
}

// Store is an in-memory stand-in for both halves of the Processor Chain's
// Ports: an index engine (chain.IndexSearcher) and a graph engine
// (chain.GraphRefiner). It exists only so cmd/cli's search command has
// something to run an emitted plan against; the planner itself never
// executes an index query or a graph traversal.
type Store struct {
	vertices map[chain.VertexID]Vertex
	order    []chain.VertexID
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{vertices: make(map[chain.VertexID]Vertex)}
}

// Put inserts or replaces a vertex.
func (s *Store) Put(v Vertex) {
	if _, exists := s.vertices[v.ID]; !exists {
		s.order = append(s.order, v.ID)
	}
	s.vertices[v.ID] = v
}

// Search implements chain.IndexSearcher. The demo store does not parse the
// Lucene-style index query syntax indexquery.Emit produces — it has no real
// inverted index to run it against — so it returns every vertex and lets
// GraphRefiner do the real filtering. A real IndexSearcher implementation
// would send indexQuery to an actual search engine instead.
func (s *Store) Search(ctx context.Context, indexQuery string) (chain.Candidates, error) {
	out := make(chain.Candidates, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Refine implements chain.GraphRefiner: it looks up each candidate and
// keeps the ones whose attributes satisfy the built predicate program.
func (s *Store) Refine(ctx context.Context, candidates chain.Candidates, program graphquery.Builder) (chain.Candidates, error) {
	if program == nil || program.Empty() {
		return candidates, nil
	}
	m, ok := program.(*Matcher)
	if !ok {
		return candidates, nil
	}
	var out chain.Candidates
	for _, id := range candidates {
		v, found := s.vertices[id]
		if !found {
			continue
		}
		if m.Matches(v.Attributes) {
			out = append(out, id)
		}
	}
	return out, nil
}
