package graphquery

import (
	"fmt"

	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/plan"
)

// Emit renders root into a graph query builder program. graphAttributes
// selects which leaves this call is responsible for: when pushdown is
// eligible, pass ctx.GraphFiltered() (the index pass already covers the
// rest); when pushdown is disallowed, pass ctx.AllAttributes() so the
// full AST is re-checked in the graph engine.
func Emit(ctx *plan.SearchContext, root filterast.Node, graphAttributes map[string]struct{}) Builder {
	scope := NewProgram()
	EmitInto(ctx, root, scope, graphAttributes)
	return scope
}

// EmitInto renders root into a caller-supplied scope instead of a fresh
// Program, so an alternate Builder implementation (e.g. one that evaluates
// directly against live data rather than rendering text) can reuse the
// same walk.
func EmitInto(ctx *plan.SearchContext, root filterast.Node, scope Builder, graphAttributes map[string]struct{}) {
	emitNode(ctx, root, scope, graphAttributes)
}

func emitNode(ctx *plan.SearchContext, node filterast.Node, scope Builder, graphAttributes map[string]struct{}) {
	switch n := node.(type) {
	case filterast.Leaf:
		emitLeaf(ctx, n, scope, graphAttributes)
	case filterast.Group:
		emitGroup(ctx, n, scope, graphAttributes)
	}
}

func emitLeaf(ctx *plan.SearchContext, leaf filterast.Leaf, scope Builder, graphAttributes map[string]struct{}) {
	if _, ok := graphAttributes[leaf.AttributeName]; !ok {
		return
	}

	switch leaf.Operator {
	case filterast.LT:
		scope.Has(leaf.AttributeName, OpLT, leaf.Value)
	case filterast.LTE:
		scope.Has(leaf.AttributeName, OpLTE, leaf.Value)
	case filterast.GT:
		scope.Has(leaf.AttributeName, OpGT, leaf.Value)
	case filterast.GTE:
		scope.Has(leaf.AttributeName, OpGTE, leaf.Value)
	case filterast.EQ:
		scope.Has(leaf.AttributeName, OpEQ, leaf.Value)
	case filterast.NEQ:
		scope.Has(leaf.AttributeName, OpNEQ, leaf.Value)
	case filterast.LIKE, filterast.CONTAINS:
		scope.Has(leaf.AttributeName, OpRegex, ".*"+leaf.Value+".*")
	case filterast.ENDSWITH:
		scope.Has(leaf.AttributeName, OpRegex, ".*"+leaf.Value)
	case filterast.STARTSWITH:
		scope.Has(leaf.AttributeName, OpPrefix, leaf.Value)
	default:
		ctx.Diagnose("UnsupportedOperator", leaf.AttributeName,
			fmt.Sprintf("operator %s is not supported by the graph emitter; leaf dropped", leaf.Operator))
	}
}

func emitGroup(ctx *plan.SearchContext, group filterast.Group, scope Builder, graphAttributes map[string]struct{}) {
	if len(group.Children) == 0 {
		return
	}

	if group.Combinator == filterast.OR {
		children := make([]Builder, 0, len(group.Children))
		for _, child := range group.Children {
			childScope := scope.CreateChildQuery()
			emitNode(ctx, child, childScope, graphAttributes)
			children = append(children, childScope)
		}
		scope.Or(children...)
		return
	}

	for _, child := range group.Children {
		childScope := scope.CreateChildQuery()
		emitNode(ctx, child, childScope, graphAttributes)
		scope.AddConditionsFrom(childScope)
	}
}
