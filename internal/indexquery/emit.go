// Package indexquery emits the index engine's Lucene-like query string for
// the index-eligible portion of a classified Filter AST (§4.3).
package indexquery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/plan"
)

// reservedTypeNameAttr and assetStateQualifiedName are the index engine's
// own reserved fields: every query is scoped to a type-closure clause and
// an active-state clause regardless of the caller's filter.
const (
	reservedTypeNameAttr    = "__typeName"
	assetStateQualifiedName = "Asset.state"
)

// strayConnector catches "(AND )", "(OR )", "( )" — joins with nothing on
// one side. The join logic in renderGroupNode only ever joins non-empty
// parts, so this should never match; it exists as a cheap structural
// safety net rather than a cleanup step.
var strayConnector = regexp.MustCompile(`\(\s*(AND|OR)?\s*\)`)

// Emit renders the full index query string: the type closure, the active
// state clause, and (if non-empty) the index-eligible filter clause,
// joined with AND. root need not itself be pushdown-eligible — the
// caller is expected to have already decided, via plan.Classify, whether
// to call Emit at all; Emit simply renders whatever leaves are marked
// IndexFiltered in ctx and silently omits the rest.
func Emit(ctx *plan.SearchContext, root filterast.Node) (string, error) {
	typeClause := fmt.Sprintf(`v."%s":%s`, reservedTypeNameAttr, ctx.Schema.SubtypeClosure(ctx.RootType))
	if len(typeClause) > ctx.Limits.MaxQueryStrLengthTypes {
		return "", plan.LimitsExceeded(fmt.Sprintf("type clause length %d exceeds MaxQueryStrLengthTypes %d", len(typeClause), ctx.Limits.MaxQueryStrLengthTypes))
	}

	stateClause := fmt.Sprintf(`v."%s":ACTIVE`, assetStateQualifiedName)

	filterClause, err := renderNode(ctx, root, true)
	if err != nil {
		return "", err
	}
	if len(filterClause) > ctx.Limits.MaxQueryStrLengthTags {
		return "", plan.LimitsExceeded(fmt.Sprintf("filter clause length %d exceeds MaxQueryStrLengthTags %d", len(filterClause), ctx.Limits.MaxQueryStrLengthTags))
	}

	parts := []string{typeClause, stateClause}
	if filterClause != "" {
		parts = append(parts, filterClause)
	}
	final := strings.Join(parts, " AND ")

	if strayConnector.MatchString(final) {
		return "", plan.MalformedEmission("emitted index query contains a stray empty connector")
	}
	return final, nil
}

func renderNode(ctx *plan.SearchContext, node filterast.Node, isRoot bool) (string, error) {
	switch n := node.(type) {
	case filterast.Leaf:
		return renderLeaf(ctx, n)
	case filterast.Group:
		return renderGroupNode(ctx, n, isRoot)
	default:
		return "", nil
	}
}

func renderLeaf(ctx *plan.SearchContext, leaf filterast.Leaf) (string, error) {
	if !ctx.IsIndexFiltered(leaf.AttributeName) {
		return "", nil
	}
	qn, ok := ctx.Schema.Qualify(ctx.RootType, leaf.AttributeName)
	if !ok {
		return "", nil
	}
	tmpl, ok := templates[leaf.Operator]
	if !ok {
		return "", nil
	}

	var value string
	if leaf.Operator == filterast.IN {
		value = renderInList(leaf.Value)
	} else {
		value = escapeValue(leaf.Value)
	}
	return tmpl(qn, value), nil
}

func renderGroupNode(ctx *plan.SearchContext, group filterast.Group, isRoot bool) (string, error) {
	if len(group.Children) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(group.Children))
	for _, child := range group.Children {
		s, err := renderNode(ctx, child, false)
		if err != nil {
			return "", err
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return "", nil
	}

	// A NEQ leaf rendered as "-v.\"attr\": val" at the start of a nested
	// (parenthesized) expression is rejected by the index engine's own
	// parser; at the root it is accepted. This is a known limitation of
	// the index engine, not of this emitter.
	if !isRoot && strings.HasPrefix(parts[0], "-") {
		return "", plan.MalformedEmission("a NEQ leaf at the start of a nested expression would produce a malformed index query")
	}

	joined := strings.Join(parts, " "+string(group.Combinator)+" ")
	if isRoot {
		return joined, nil
	}
	return "(" + joined + ")", nil
}
