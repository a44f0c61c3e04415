package indexquery

import (
	"strings"
	"testing"

	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/indexcatalog"
	"github.com/ritamzico/searchplan/internal/plan"
	"github.com/ritamzico/searchplan/internal/schema"
)

func fixtureSchema() *schema.StaticPort {
	sp := schema.NewStaticPort()
	sp.EntityTypes["Table"] = true
	sp.Attributes["Asset"] = map[string]string{
		"name":    "Asset.name",
		"owner":   "Asset.owner",
		"size":    "Asset.size",
		"comment": "Asset.comment",
	}
	sp.Subtypes["Table"] = "(Table OR View)"
	return sp
}

func fixtureCatalog() indexcatalog.Set {
	return indexcatalog.NewSet("Asset.name", "Asset.owner", "Asset.size")
}

func newPlannedContext(t *testing.T, rootType string, root filterast.Node) *plan.SearchContext {
	t.Helper()
	ctx := plan.New(rootType, fixtureSchema(), fixtureCatalog(), config.DefaultLimits())
	plan.Classify(ctx, root)
	return ctx
}

func TestEmit_AndOfTwoIndexedEqualities(t *testing.T) {
	root := filterast.Group{
		Combinator: filterast.AND,
		Children: []filterast.Node{
			filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "foo"},
			filterast.Leaf{AttributeName: "owner", Operator: filterast.EQ, Value: "bob"},
		},
	}
	ctx := newPlannedContext(t, "Table", root)

	got, err := Emit(ctx, root)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	want := `v."__typeName":(Table OR View) AND v."Asset.state":ACTIVE AND v."Asset.name": foo AND v."Asset.owner": bob`
	if got != want {
		t.Errorf("Emit = %q, want %q", got, want)
	}
}

func TestEmit_AndWithNestedOrOfIndexedLeaves(t *testing.T) {
	root := filterast.Group{
		Combinator: filterast.AND,
		Children: []filterast.Node{
			filterast.Leaf{AttributeName: "size", Operator: filterast.GT, Value: "100"},
			filterast.Group{
				Combinator: filterast.OR,
				Children: []filterast.Node{
					filterast.Leaf{AttributeName: "owner", Operator: filterast.EQ, Value: "a"},
					filterast.Leaf{AttributeName: "owner", Operator: filterast.EQ, Value: "b"},
				},
			},
		},
	}
	ctx := newPlannedContext(t, "Table", root)

	got, err := Emit(ctx, root)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	wantFragment := `v."Asset.size": {100 TO *] AND (v."Asset.owner": a OR v."Asset.owner": b)`
	if !strings.Contains(got, wantFragment) {
		t.Errorf("Emit = %q, want it to contain %q", got, wantFragment)
	}
}

func TestEmit_NonIndexedLeafOmitted(t *testing.T) {
	root := filterast.Leaf{AttributeName: "comment", Operator: filterast.CONTAINS, Value: "bar"}
	ctx := newPlannedContext(t, "Table", root)

	got, err := Emit(ctx, root)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if strings.Contains(got, "comment") {
		t.Errorf("Emit = %q, expected non-indexed attribute omitted entirely", got)
	}
}

func TestEmit_NeqAtStartOfNestedExpressionIsMalformed(t *testing.T) {
	root := filterast.Group{
		Combinator: filterast.AND,
		Children: []filterast.Node{
			filterast.Group{
				Combinator: filterast.OR,
				Children: []filterast.Node{
					filterast.Leaf{AttributeName: "name", Operator: filterast.NEQ, Value: "foo"},
					filterast.Leaf{AttributeName: "owner", Operator: filterast.EQ, Value: "bob"},
				},
			},
		},
	}
	ctx := newPlannedContext(t, "Table", root)

	_, err := Emit(ctx, root)
	perr, ok := err.(plan.Error)
	if !ok || perr.Kind != "MalformedEmission" {
		t.Fatalf("expected MalformedEmission error, got %v", err)
	}
}

func TestEmit_TypeClauseExceedsLimit(t *testing.T) {
	root := filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "foo"}
	ctx := plan.New("Table", fixtureSchema(), fixtureCatalog(), config.Limits{MaxQueryStrLengthTypes: 5, MaxQueryStrLengthTags: 512})
	plan.Classify(ctx, root)

	_, err := Emit(ctx, root)
	perr, ok := err.(plan.Error)
	if !ok || perr.Kind != "LimitsExceeded" {
		t.Fatalf("expected LimitsExceeded error, got %v", err)
	}
}
