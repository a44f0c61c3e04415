// Package vertexstore is a small in-memory vertex store used by the
// cmd/cli search demo to exercise the Processor Chain end to end: it implements both chain.IndexSearcher (trivially — see Search)
// and chain.GraphRefiner (by evaluating a graphquery.Builder program
// built from its own Matcher against each vertex's attributes). It is
// not a real index or graph engine; the planner itself never executes
// anything.
package vertexstore

import "strconv"

// ValueKind tags which field of Value holds the live value.
type ValueKind int

const (
	IntVal ValueKind = iota
	FloatVal
	StringVal
	BoolVal
)

// Value is a typed vertex attribute value.
type Value struct {
	Kind ValueKind
	I    int64
	F    float64
	S    string
	B    bool
}

// String renders the value in its raw textual form, for comparison
// against a Predicate's raw (always-string) value.
func (v Value) String() string {
	switch v.Kind {
	case IntVal:
		return strconv.FormatInt(v.I, 10)
	case FloatVal:
		return strconv.FormatFloat(v.F, 'g', -1, 64)
	case BoolVal:
		if v.B {
			return "true"
		}
		return "false"
	default:
		return v.S
	}
}
