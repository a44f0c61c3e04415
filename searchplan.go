// Package searchplan is the hybrid search planner's public facade: it
// wires the Filter AST, Search Context, classifier, and the three
// emitters (index, graph, Gremlin) behind a single Planner type.
package searchplan

import (
	"github.com/ritamzico/searchplan/internal/chain"
	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/filterdsl"
	"github.com/ritamzico/searchplan/internal/graphquery"
	"github.com/ritamzico/searchplan/internal/gremlin"
	"github.com/ritamzico/searchplan/internal/indexcatalog"
	"github.com/ritamzico/searchplan/internal/indexquery"
	"github.com/ritamzico/searchplan/internal/plan"
	"github.com/ritamzico/searchplan/internal/schema"
)

// Re-exported types, so callers need only import this package for the
// common case.
type (
	Operator    = filterast.Operator
	Combinator  = filterast.Combinator
	Node        = filterast.Node
	Leaf        = filterast.Leaf
	Group       = filterast.Group
	SchemaPort  = schema.Port
	StaticPort  = schema.StaticPort
	ValueType   = schema.ValueType
	CatalogPort = indexcatalog.Port
	CatalogSet  = indexcatalog.Set
	Limits      = config.Limits
	Diagnostic  = plan.Diagnostic
	VertexID    = chain.VertexID
	Candidates  = chain.Candidates
)

const (
	LT         = filterast.LT
	GT         = filterast.GT
	LTE        = filterast.LTE
	GTE        = filterast.GTE
	EQ         = filterast.EQ
	NEQ        = filterast.NEQ
	IN         = filterast.IN
	LIKE       = filterast.LIKE
	STARTSWITH = filterast.STARTSWITH
	ENDSWITH   = filterast.ENDSWITH
	CONTAINS   = filterast.CONTAINS

	AND = filterast.AND
	OR  = filterast.OR

	StringType  = schema.StringType
	NumberType  = schema.NumberType
	BooleanType = schema.BooleanType
	DateType    = schema.DateType
)

// ParseFilter compiles a textual filter expression into a Node.
func ParseFilter(input string) (Node, error) {
	return filterdsl.Parse(input)
}

// Plan is the emitted artifact set for one planning session.
type Plan struct {
	PushdownEligible bool
	IndexQuery       string
	GraphProgram     graphquery.Builder
	Gremlin          *gremlin.Fragment
	Diagnostics      []Diagnostic
}

// Planner owns one planning session against a fixed root type, schema
// snapshot, index catalog snapshot, and limits.
type Planner struct {
	ctx *plan.SearchContext
}

// NewPlanner constructs a Planner for rootType, borrowing sp and ic for
// the lifetime of the session.
func NewPlanner(rootType string, sp SchemaPort, ic CatalogPort, limits Limits) *Planner {
	return &Planner{ctx: plan.New(rootType, sp, ic, limits)}
}

// NewPlannerWithDefaults constructs a Planner using config.DefaultLimits().
func NewPlannerWithDefaults(rootType string, sp SchemaPort, ic CatalogPort) *Planner {
	return NewPlanner(rootType, sp, ic, config.DefaultLimits())
}

// Plan classifies root, then emits the index query (when pushdown is
// eligible), the graph query builder program, and the Gremlin fragment.
// The Gremlin emitter always sees the full AST, regardless of pushdown
// eligibility — it is an alternate backend, not a residual pass.
func (p *Planner) Plan(root Node) (*Plan, error) {
	classification := plan.Classify(p.ctx, root)

	result := &Plan{PushdownEligible: classification.PushdownEligible}

	var graphAttributes map[string]struct{}
	if classification.PushdownEligible {
		indexQuery, err := indexquery.Emit(p.ctx, root)
		if err != nil {
			return nil, err
		}
		result.IndexQuery = indexQuery
		graphAttributes = toSet(p.ctx.GraphFiltered())
	} else {
		graphAttributes = toSet(p.ctx.AllAttributes())
	}

	result.GraphProgram = graphquery.Emit(p.ctx, root, graphAttributes)
	result.Gremlin = gremlin.Emit(p.ctx, root)
	result.Diagnostics = p.ctx.Diagnostics()
	return result, nil
}

// EntityAttributes returns the attributes referenced so far that belong
// to the root type's entity (non-classification) schema.
func (p *Planner) EntityAttributes() []string { return p.ctx.EntityAttributes() }

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}
