// Package graphquery renders the graph-only residual of a classified
// Filter AST (or the full AST, when pushdown is disallowed) into a graph
// query builder program (§4.4). The Builder interface is the Graph Query
// Builder Port of the design: the core only plans against it and never
// executes a query itself.
package graphquery

import (
	"fmt"
	"strings"
)

// MatchOp is the predicate kind passed to Has. Unlike filterast.Operator,
// it is the graph engine's own vocabulary: comparison operators pass
// through unchanged, but LIKE/CONTAINS/ENDS_WITH collapse to REGEX and
// STARTS_WITH becomes a dedicated prefix match (see Emit's operator
// mapping).
type MatchOp string

const (
	OpLT     MatchOp = "LT"
	OpLTE    MatchOp = "LTE"
	OpGT     MatchOp = "GT"
	OpGTE    MatchOp = "GTE"
	OpEQ     MatchOp = "EQ"
	OpNEQ    MatchOp = "NEQ"
	OpRegex  MatchOp = "REGEX"
	OpPrefix MatchOp = "PREFIX"
)

// Builder is the Graph Query Builder Port (§6): has/createChildQuery/
// addConditionsFrom/or, as abstract collaborators the emitter drives.
// Program is the text-rendering implementation in this package;
// vertexstore.Matcher is a second one that evaluates predicates directly.
type Builder interface {
	// Has records a single predicate in this builder's scope.
	Has(attributeName string, op MatchOp, value string)

	// CreateChildQuery returns a new, empty scope suitable for either
	// AddConditionsFrom (AND) or collection into Or's children.
	CreateChildQuery() Builder

	// AddConditionsFrom merges other's predicates into this scope's
	// conjunction. If other is itself a disjunction (built via Or), it is
	// added as a single disjunctive term rather than flattened.
	AddConditionsFrom(other Builder)

	// Or replaces this scope's content with the disjunction of children.
	// An empty children list is a no-op, per the design's "empty child
	// lists degrade to a no-op".
	Or(children ...Builder)

	// Empty reports whether this scope has no predicates and no
	// disjunction. An empty Program renders to "".
	Empty() bool

	// String renders this scope as text. Program renders "has(...)" terms
	// and nested "or(...)" groups joined by ", ", or "or(t1, t2, ...)" if
	// the scope was built via Or; other implementations may render less.
	String() string
}

// Predicate is one has(attributeName, op, value) term.
type Predicate struct {
	AttributeName string
	Op            MatchOp
	Value         string
}

func (p Predicate) String() string {
	value := p.Value
	if p.Op == OpRegex {
		value = `"` + value + `"`
	}
	return fmt.Sprintf("has(%s,%s,%s)", p.AttributeName, p.Op, value)
}

// Program is the concrete Builder: an ordered list of terms (predicates
// and nested or-groups) conjoined, unless it was itself built via Or, in
// which case it renders as the disjunction of its orChildren instead.
type Program struct {
	terms      []fmt.Stringer
	isOr       bool
	orChildren []*Program
}

// NewProgram returns an empty scope.
func NewProgram() *Program { return &Program{} }

func (p *Program) Has(attributeName string, op MatchOp, value string) {
	p.terms = append(p.terms, Predicate{AttributeName: attributeName, Op: op, Value: value})
}

func (p *Program) CreateChildQuery() Builder { return NewProgram() }

func (p *Program) AddConditionsFrom(other Builder) {
	o, ok := other.(*Program)
	if !ok || o.Empty() {
		return
	}
	if o.isOr {
		p.terms = append(p.terms, o)
		return
	}
	p.terms = append(p.terms, o.terms...)
}

func (p *Program) Or(children ...Builder) {
	if len(children) == 0 {
		return
	}
	kept := make([]*Program, 0, len(children))
	for _, c := range children {
		cp, ok := c.(*Program)
		if !ok || cp.Empty() {
			continue
		}
		kept = append(kept, cp)
	}
	if len(kept) == 0 {
		return
	}
	p.isOr = true
	p.orChildren = kept
	p.terms = nil
}

func (p *Program) Empty() bool {
	return !p.isOr && len(p.terms) == 0
}

func (p *Program) String() string {
	if p.isOr {
		parts := make([]string, 0, len(p.orChildren))
		for _, c := range p.orChildren {
			parts = append(parts, c.String())
		}
		return "or(" + strings.Join(parts, ", ") + ")"
	}
	parts := make([]string, 0, len(p.terms))
	for _, t := range p.terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ", ")
}
