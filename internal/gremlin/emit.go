// Package gremlin renders the full Filter AST into a Gremlin-style
// traversal fragment with a parameter bindings map (§4.5). It is an
// alternate backend: unlike the index/graph split, it always sees the
// whole AST and re-qualifies attributes itself.
package gremlin

import (
	"fmt"
	"strings"

	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/plan"
	"github.com/ritamzico/searchplan/internal/schema"
)

// Fragment is the emitted artifact: the traversal step text, plus the
// bindings map consumed alongside it.
type Fragment struct {
	Steps    string
	Bindings map[string]interface{}
}

func (f *Fragment) bind(value interface{}) string {
	name := fmt.Sprintf("__bind_%d", len(f.Bindings))
	f.Bindings[name] = value
	return name
}

// Emit renders root into a Fragment.
func Emit(ctx *plan.SearchContext, root filterast.Node) *Fragment {
	f := &Fragment{Bindings: make(map[string]interface{})}
	f.Steps = emitNode(ctx, f, root)
	return f
}

func emitNode(ctx *plan.SearchContext, f *Fragment, node filterast.Node) string {
	switch n := node.(type) {
	case filterast.Leaf:
		return emitLeaf(ctx, f, n)
	case filterast.Group:
		return emitGroup(ctx, f, n)
	default:
		return ""
	}
}

func emitLeaf(ctx *plan.SearchContext, f *Fragment, leaf filterast.Leaf) string {
	qn, ok := ctx.Schema.Qualify(ctx.RootType, leaf.AttributeName)
	if !ok {
		ctx.Diagnose("SchemaResolution", leaf.AttributeName, "attribute cannot be qualified against the root type; leaf dropped")
		return ""
	}

	tmpl, ok := stepTemplates[leaf.Operator]
	if !ok {
		ctx.Diagnose("UnsupportedOperator", leaf.AttributeName,
			fmt.Sprintf("operator %s is not supported by the Gremlin emitter; leaf dropped", leaf.Operator))
		return ""
	}

	value, err := boundValue(ctx, leaf.AttributeName, leaf.Value)
	if err != nil {
		ctx.Diagnose("ValueNormalization", leaf.AttributeName, err.Error()+"; leaf dropped")
		return ""
	}

	bindRef := f.bind(value)
	return tmpl(qn, bindRef)
}

// boundValue normalizes raw per the attribute's schema value type. Only
// DateType values are converted, to epoch milliseconds, per §4.5; every
// other value type is bound as its raw string.
func boundValue(ctx *plan.SearchContext, attrName, raw string) (interface{}, error) {
	vt, ok := ctx.Schema.AttributeValueType(ctx.RootType, attrName)
	if !ok || vt != schema.DateType {
		return raw, nil
	}
	canonical, err := ctx.Schema.Normalize(vt, raw)
	if err != nil {
		return nil, err
	}
	return schema.EpochMillis(canonical)
}

func emitGroup(ctx *plan.SearchContext, f *Fragment, group filterast.Group) string {
	if len(group.Children) == 0 {
		return ""
	}

	if group.Combinator == filterast.AND {
		var steps string
		for _, child := range group.Children {
			steps += emitNode(ctx, f, child)
		}
		return steps
	}

	parts := make([]string, 0, len(group.Children))
	for _, child := range group.Children {
		parts = append(parts, "__.identity()"+emitNode(ctx, f, child))
	}
	return ".or(" + strings.Join(parts, ", ") + ")"
}
