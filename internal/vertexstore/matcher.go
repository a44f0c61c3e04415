package vertexstore

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ritamzico/searchplan/internal/graphquery"
)

// entry is either a single comparison or a nested disjunction, mirroring
// graphquery.Program's own term/or-group split.
type entry interface {
	matches(attrs map[string]Value) bool
}

type comparison struct {
	attribute string
	op        graphquery.MatchOp
	value     string
}

func (c comparison) matches(attrs map[string]Value) bool {
	v, ok := attrs[c.attribute]
	if !ok {
		return false
	}
	switch c.op {
	case graphquery.OpEQ:
		return v.String() == c.value
	case graphquery.OpNEQ:
		return v.String() != c.value
	case graphquery.OpLT, graphquery.OpLTE, graphquery.OpGT, graphquery.OpGTE:
		return compareOrdered(v, c.value, c.op)
	case graphquery.OpRegex:
		re, err := regexp.Compile(c.value)
		if err != nil {
			return false
		}
		return re.MatchString(v.String())
	case graphquery.OpPrefix:
		return strings.HasPrefix(v.String(), c.value)
	default:
		return false
	}
}

func compareOrdered(v Value, raw string, op graphquery.MatchOp) bool {
	a, bOK := numeric(v)
	b, err := strconv.ParseFloat(raw, 64)
	if !bOK || err != nil {
		return lexOrdered(v.String(), raw, op)
	}
	switch op {
	case graphquery.OpLT:
		return a < b
	case graphquery.OpLTE:
		return a <= b
	case graphquery.OpGT:
		return a > b
	default:
		return a >= b
	}
}

func numeric(v Value) (float64, bool) {
	switch v.Kind {
	case IntVal:
		return float64(v.I), true
	case FloatVal:
		return v.F, true
	default:
		return 0, false
	}
}

func lexOrdered(a, b string, op graphquery.MatchOp) bool {
	switch op {
	case graphquery.OpLT:
		return a < b
	case graphquery.OpLTE:
		return a <= b
	case graphquery.OpGT:
		return a > b
	default:
		return a >= b
	}
}

// Matcher is a graphquery.Builder implementation that evaluates directly
// against a vertex's attribute map, instead of rendering text. Like
// graphquery.Program, a Matcher either holds a conjunction of entries or
// (if built via Or) is itself the disjunction of its children.
type Matcher struct {
	entries    []entry
	isOr       bool
	orChildren []*Matcher
}

// NewMatcher returns an empty scope.
func NewMatcher() *Matcher { return &Matcher{} }

func (m *Matcher) Has(attributeName string, op graphquery.MatchOp, value string) {
	m.entries = append(m.entries, comparison{attribute: attributeName, op: op, value: value})
}

func (m *Matcher) CreateChildQuery() graphquery.Builder { return NewMatcher() }

func (m *Matcher) AddConditionsFrom(other graphquery.Builder) {
	o, ok := other.(*Matcher)
	if !ok || o.Empty() {
		return
	}
	if o.isOr {
		m.entries = append(m.entries, o)
		return
	}
	m.entries = append(m.entries, o.entries...)
}

func (m *Matcher) Or(children ...graphquery.Builder) {
	if len(children) == 0 {
		return
	}
	kept := make([]*Matcher, 0, len(children))
	for _, c := range children {
		cm, ok := c.(*Matcher)
		if !ok || cm.Empty() {
			continue
		}
		kept = append(kept, cm)
	}
	if len(kept) == 0 {
		return
	}
	m.isOr = true
	m.orChildren = kept
	m.entries = nil
}

func (m *Matcher) Empty() bool { return !m.isOr && len(m.entries) == 0 }

func (m *Matcher) String() string {
	if m.isOr {
		return "or(...)"
	}
	return "and(...)"
}

func (m *Matcher) matches(attrs map[string]Value) bool { return m.Matches(attrs) }

// Matches evaluates this scope's predicate tree against a vertex's
// attributes: conjunction of entries, or disjunction of orChildren.
func (m *Matcher) Matches(attrs map[string]Value) bool {
	if m.Empty() {
		return true
	}
	if m.isOr {
		for _, c := range m.orChildren {
			if c.matches(attrs) {
				return true
			}
		}
		return false
	}
	for _, e := range m.entries {
		if !e.matches(attrs) {
			return false
		}
	}
	return true
}
