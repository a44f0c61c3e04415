package filterdsl

import (
	"fmt"
	"strings"

	"github.com/ritamzico/searchplan/internal/filterast"
)

var opTokens = map[string]filterast.Operator{
	"=":           filterast.EQ,
	"!=":          filterast.NEQ,
	"<":           filterast.LT,
	"<=":          filterast.LTE,
	">":           filterast.GT,
	">=":          filterast.GTE,
	"IN":          filterast.IN,
	"LIKE":        filterast.LIKE,
	"STARTS_WITH": filterast.STARTSWITH,
	"ENDS_WITH":   filterast.ENDSWITH,
	"CONTAINS":    filterast.CONTAINS,
}

// convertOr collapses a single-child OrAST straight through to its one
// AndAST, so a plain leaf or a fully-parenthesized expression never
// picks up a spurious single-child Group wrapper.
func convertOr(ast *OrAST) (filterast.Node, error) {
	if len(ast.Ands) == 1 {
		return convertAnd(ast.Ands[0])
	}
	children := make([]filterast.Node, 0, len(ast.Ands))
	for _, a := range ast.Ands {
		n, err := convertAnd(a)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return filterast.Group{Combinator: filterast.OR, Children: children}, nil
}

func convertAnd(ast *AndAST) (filterast.Node, error) {
	if len(ast.Terms) == 1 {
		return convertTerm(ast.Terms[0])
	}
	children := make([]filterast.Node, 0, len(ast.Terms))
	for _, t := range ast.Terms {
		n, err := convertTerm(t)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return filterast.Group{Combinator: filterast.AND, Children: children}, nil
}

func convertTerm(ast *TermAST) (filterast.Node, error) {
	if ast.Group != nil {
		return convertOr(ast.Group)
	}
	return convertLeaf(ast.Leaf)
}

func convertLeaf(ast *LeafAST) (filterast.Node, error) {
	op, ok := opTokens[strings.ToUpper(ast.Op)]
	if !ok {
		return nil, SyntaxError{Kind: "UnknownOperator", Message: fmt.Sprintf("operator %q is not recognized", ast.Op)}
	}
	return filterast.Leaf{
		AttributeName: ast.Attribute,
		Operator:      op,
		Value:         renderValue(ast.Value),
	}, nil
}

// renderValue flattens a ValueAST into the raw string filterast.Leaf
// stores. A List renders as a comma-separated sequence of bare/quoted
// tokens, matching the IN value shape the index emitter expects.
func renderValue(v *ValueAST) string {
	switch {
	case v.Str != nil:
		return unquote(*v.Str)
	case v.Bare != nil:
		return *v.Bare
	case v.List != nil:
		parts := make([]string, len(v.List))
		for i, item := range v.List {
			parts[i] = listItemText(item)
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

func listItemText(v *ValueAST) string {
	if v.Str != nil {
		return `"` + strings.ReplaceAll(unquote(*v.Str), `"`, `\"`) + `"`
	}
	if v.Bare != nil {
		return *v.Bare
	}
	return ""
}

// unquote strips the surrounding double quotes the String token captures
// and undoes backslash escaping of '"' and '\'.
func unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	var b strings.Builder
	escaped := false
	for _, r := range raw {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
