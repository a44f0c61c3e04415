package plan

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ritamzico/searchplan/internal/config"
	"github.com/ritamzico/searchplan/internal/filterast"
	"github.com/ritamzico/searchplan/internal/indexcatalog"
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
	sp.Attributes["Classification"] = map[string]string{"tag": "Classification.tag"}
	sp.Subtypes["Table"] = "(Table OR View)"
	return sp
}

func fixtureCatalog() indexcatalog.Set {
	return indexcatalog.NewSet("Asset.name", "Asset.owner", "Asset.size", "Classification.tag")
}

func newTestContext(rootType string) *SearchContext {
	return New(rootType, fixtureSchema(), fixtureCatalog(), config.DefaultLimits())
}

func TestClassify_AndOfTwoIndexedLeaves(t *testing.T) {
	ctx := newTestContext("Table")
	root := filterast.Group{
		Combinator: filterast.AND,
		Children: []filterast.Node{
			filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "foo"},
			filterast.Leaf{AttributeName: "owner", Operator: filterast.EQ, Value: "bob"},
		},
	}

	got := Classify(ctx, root)
	if !got.PushdownEligible {
		t.Fatal("expected pushdown eligible for AND of two indexed leaves")
	}
	if len(ctx.GraphFiltered()) != 0 {
		t.Errorf("expected no graph-filtered attributes, got %v", ctx.GraphFiltered())
	}
	want := []string{"name", "owner"}
	if diff := cmp.Diff(want, ctx.IndexFiltered()); diff != "" {
		t.Errorf("IndexFiltered mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_OrWithNonIndexedLeaf(t *testing.T) {
	ctx := newTestContext("Table")
	root := filterast.Group{
		Combinator: filterast.OR,
		Children: []filterast.Node{
			filterast.Leaf{AttributeName: "name", Operator: filterast.EQ, Value: "foo"},
			filterast.Leaf{AttributeName: "comment", Operator: filterast.CONTAINS, Value: "bar"},
		},
	}

	got := Classify(ctx, root)
	if got.PushdownEligible {
		t.Fatal("expected pushdown ineligible when a non-indexed leaf is under OR")
	}
}

func TestClassify_AndWithNestedOrOfIndexedLeaves(t *testing.T) {
	ctx := newTestContext("Table")
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

	got := Classify(ctx, root)
	if !got.PushdownEligible {
		t.Fatal("expected pushdown eligible: both owner leaves under OR are indexed")
	}
}

func TestClassify_SingleLeafUnderClassificationType(t *testing.T) {
	ctx := newTestContext("Classification")
	root := filterast.Leaf{AttributeName: "tag", Operator: filterast.EQ, Value: "PII"}

	Classify(ctx, root)

	if len(ctx.EntityAttributes()) != 0 {
		t.Errorf("expected no entity attributes for a classification root type, got %v", ctx.EntityAttributes())
	}
	if diff := cmp.Diff([]string{"tag"}, ctx.IndexFiltered()); diff != "" {
		t.Errorf("IndexFiltered mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_UnknownAttributeDropped(t *testing.T) {
	ctx := newTestContext("Table")
	root := filterast.Leaf{AttributeName: "doesNotExist", Operator: filterast.EQ, Value: "x"}

	Classify(ctx, root)

	if len(ctx.AllAttributes()) != 0 {
		t.Errorf("expected unknown attribute to be dropped from all sets, got %v", ctx.AllAttributes())
	}
	diags := ctx.Diagnostics()
	if len(diags) != 1 || diags[0].Kind != "SchemaResolution" {
		t.Fatalf("expected one SchemaResolution diagnostic, got %v", diags)
	}
}
