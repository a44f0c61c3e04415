package plan

import "github.com/ritamzico/searchplan/internal/filterast"

// Classification is the combined output of the Attribute Classifier
// (§4.1) and the Pushdown Analyzer (§4.2). The design note in §9 folds
// what the source implements as two separate AST walks into a single
// visitor, to avoid the two ever drifting apart; PushdownEligible and the
// SearchContext's attribute sets are therefore always computed together.
type Classification struct {
	// PushdownEligible is true iff no Leaf whose qualified attribute is
	// not in the index catalog appears anywhere under an OR node —
	// equivalently, every non-indexed leaf lies on a pure AND path from
	// the root.
	PushdownEligible bool
}

// Classify walks root once, recording referenced attributes into ctx's
// sets (§4.1) and deciding pushdown eligibility (§4.2). It is idempotent:
// running it again on the same context and AST re-derives the same
// PushdownEligible and leaves the attribute sets unchanged, since
// SearchContext's sets dedupe by first reference.
func Classify(ctx *SearchContext, root filterast.Node) Classification {
	eligible := classify(ctx, root, false)
	return Classification{PushdownEligible: eligible}
}

// classify returns whether the subtree rooted at node still permits
// pushdown, given insideOr (whether an ancestor OR group contains node).
func classify(ctx *SearchContext, node filterast.Node, insideOr bool) bool {
	switch n := node.(type) {
	case filterast.Leaf:
		return classifyLeaf(ctx, n, insideOr)
	case filterast.Group:
		return classifyGroup(ctx, n, insideOr)
	default:
		return true
	}
}

func classifyLeaf(ctx *SearchContext, leaf filterast.Leaf, insideOr bool) bool {
	qn, ok := ctx.Schema.Qualify(ctx.RootType, leaf.AttributeName)
	if !ok {
		ctx.warn("SchemaResolution", leaf.AttributeName, "attribute cannot be qualified against the root type; leaf dropped")
		return true
	}

	indexed := ctx.IndexCatalog.IsIndexed(qn)
	ctx.recordLeaf(leaf.AttributeName, indexed)

	if !indexed && insideOr {
		return false
	}
	return true
}

func classifyGroup(ctx *SearchContext, group filterast.Group, insideOr bool) bool {
	childInsideOr := insideOr || group.Combinator == filterast.OR
	eligible := true
	for _, child := range group.Children {
		if !classify(ctx, child, childInsideOr) {
			eligible = false
		}
	}
	return eligible
}
