package gremlin

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/indexcatalog"
	"github.com/ritamzico/searchplan/internal/plan"
	"github.com/ritamzico/searchplan/internal/schema"
)

func fixtureContext() *plan.SearchContext {
	sp := schema.NewStaticPort()
	sp.EntityTypes["Table"] = true
	sp.Attributes["Asset"] = map[string]string{
		"name":      "Asset.name",
		"createdAt": "Asset.createdAt",
	}
	sp.ValueTypes["Asset.createdAt"] = schema.DateType
	ic := indexcatalog.NewSet("Asset.name")
	return plan.New("Table", sp, ic, config.DefaultLimits())
}

func TestEmit_DateLeafBindsEpochMillis(t *testing.T) {
	root := filterast.Leaf{AttributeName: "createdAt", Operator: filterast.GTE, Value: "2024-01-01"}
	ctx := fixtureContext()

	frag := Emit(ctx, root)

	wantBindings := map[string]interface{}{"__bind_0": int64(1704067200000)}
	if diff := cmp.Diff(wantBindings, frag.Bindings); diff != "" {
		t.Errorf("Bindings mismatch (-want +got):\n%s", diff)
	}
	want := `.has('Asset.createdAt', P.gte(__bind_0))`
	if frag.Steps != want {
		t.Errorf("Steps = %q, want %q", frag.Steps, want)
	}
}

func TestEmit_UnknownAttributeDroppedWithDiagnostic(t *testing.T) {
	root := filterast.Leaf{AttributeName: "nope", Operator: filterast.EQ, Value: "x"}
	ctx := fixtureContext()

	frag := Emit(ctx, root)

	if frag.Steps != "" {
		t.Errorf("expected empty steps for unknown attribute, got %q", frag.Steps)
	}
	if len(frag.Bindings) != 0 {
		t.Errorf("expected no bindings, got %v", frag.Bindings)
	}
	diags := ctx.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != "SchemaResolution" {
		t.Fatalf("expected one SchemaResolution diagnostic, got %v", diags)
	}
}

func TestEmit_OrGroupSeedsEachChildWithIdentity(t *testing.T) {
	root := filterast.Group{
		Combinator: filterast.OR,
		Children: []filterast.Node{
			filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "foo"},
			filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "bar"},
		},
	}
	ctx := fixtureContext()

	frag := Emit(ctx, root)

	want := `.or(__.identity().has('Asset.name', __bind_0), __.identity().has('Asset.name', __bind_1))`
	if frag.Steps != want {
		t.Errorf("Steps = %q, want %q", frag.Steps, want)
	}
}
