// Package demo provides a small, fixed schema and index catalog for the
// cmd/cli and cmd/server demo surfaces — not a production schema
// integration.
package demo

import (
	"github.com/ritamzico/searchplan/internal/indexcatalog"
	"github.com/ritamzico/searchplan/internal/schema"
)

// Schema returns a StaticPort describing two entity types (Table, View,
// both subtypes of the Table closure), one classification type
// (Classification), and a handful of attributes on the shared Asset
// base type.
func Schema() *schema.StaticPort {
	sp := schema.NewStaticPort()

	sp.EntityTypes["Table"] = true
	sp.EntityTypes["View"] = true

	sp.Attributes["Asset"] = map[string]string{
		"name":      "Asset.name",
		"owner":     "Asset.owner",
		"size":      "Asset.size",
		"comment":   "Asset.comment",
		"state":     "Asset.state",
		"createdAt": "Asset.createdAt",
	}
	sp.Attributes["Classification"] = map[string]string{
		"tag": "Classification.tag",
	}

	sp.ValueTypes["Asset.name"] = schema.StringType
	sp.ValueTypes["Asset.owner"] = schema.StringType
	sp.ValueTypes["Asset.size"] = schema.NumberType
	sp.ValueTypes["Asset.comment"] = schema.StringType
	sp.ValueTypes["Asset.state"] = schema.StringType
	sp.ValueTypes["Asset.createdAt"] = schema.DateType
	sp.ValueTypes["Classification.tag"] = schema.StringType

	sp.Subtypes["Table"] = "(Table OR View)"

	return sp
}

// IndexCatalog returns the Index Catalog Port snapshot matching Schema:
// every Asset attribute except comment is indexed, plus the
// classification tag.
func IndexCatalog() indexcatalog.Set {
	return indexcatalog.NewSet(
		"Asset.name",
		"Asset.owner",
		"Asset.size",
		"Asset.state",
		"Asset.createdAt",
		"Classification.tag",
	)
}
