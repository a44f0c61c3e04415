// Package filterdsl parses a textual filter expression into a
// filterast.Node. The grammar is AND/OR over parenthesized groups and
// leaf comparisons, generalized from the teacher's statement/query
// grammar and from the AIP-160-style filter grammar in the examples:
// OR binds the loosest, AND next, parentheses override both.
package filterdsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(AND|OR|IN|LIKE|STARTS_WITH|ENDS_WITH|CONTAINS)\b`},
	{Name: "Comparator", Pattern: `<=|>=|!=|=|<|>`},
	{Name: "String", Pattern: `"([^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[a-zA-Z0-9_][a-zA-Z0-9_.:\-]*`},
	{Name: "Punct", Pattern: `[(),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// FilterAST is the top-level node.
type FilterAST struct {
	Or *OrAST `parser:"@@"`
}

// OrAST is one or more AndAST joined by OR.
type OrAST struct {
	Ands []*AndAST `parser:"@@ ( \"OR\" @@ )*"`
}

// AndAST is one or more TermAST joined by AND.
type AndAST struct {
	Terms []*TermAST `parser:"@@ ( \"AND\" @@ )*"`
}

// TermAST is either a parenthesized group or a leaf comparison.
type TermAST struct {
	Group *OrAST   `parser:"  \"(\" @@ \")\""`
	Leaf  *LeafAST `parser:"| @@"`
}

// LeafAST: <attribute> <operator> <value>
type LeafAST struct {
	Attribute string    `parser:"@Ident"`
	Op        string    `parser:"@( Comparator | \"IN\" | \"LIKE\" | \"STARTS_WITH\" | \"ENDS_WITH\" | \"CONTAINS\" )"`
	Value     *ValueAST `parser:"@@"`
}

// ValueAST is a string, a bare token, or a parenthesized comma-separated
// list of either (used for IN).
type ValueAST struct {
	Str  *string     `parser:"  @String"`
	List []*ValueAST `parser:"| \"(\" @@ ( \",\" @@ )* \")\""`
	Bare *string     `parser:"| @Ident"`
}

var filterParser = participle.MustBuild[FilterAST](
	participle.Lexer(filterLexer),
	participle.CaseInsensitive("Keyword"),
	participle.Elide("Whitespace"),
)
