package demo

import "github.com/ritamzico/searchplan/internal/vertexstore"

// Vertices returns a small fixed set of sample assets matching Schema and
// IndexCatalog, for cmd/cli's "search" subcommand to run an emitted plan
// against via vertexstore.Store.
func Vertices() *vertexstore.Store {
	s := vertexstore.NewStore()

	s.Put(vertexstore.Vertex{
		ID: "asset-1",
		Attributes: map[string]vertexstore.Value{
			"name":    {Kind: vertexstore.StringVal, S: "customer_orders"},
			"owner":   {Kind: vertexstore.StringVal, S: "bob"},
			"size":    {Kind: vertexstore.IntVal, I: 4200},
			"comment": {Kind: vertexstore.StringVal, S: "raw ingestion table"},
		},
	})
	s.Put(vertexstore.Vertex{
		ID: "asset-2",
		Attributes: map[string]vertexstore.Value{
			"name":    {Kind: vertexstore.StringVal, S: "customer_profile"},
			"owner":   {Kind: vertexstore.StringVal, S: "alice"},
			"size":    {Kind: vertexstore.IntVal, I: 150},
			"comment": {Kind: vertexstore.StringVal, S: "contains PII fields"},
		},
	})
	s.Put(vertexstore.Vertex{
		ID: "asset-3",
		Attributes: map[string]vertexstore.Value{
			"name":    {Kind: vertexstore.StringVal, S: "order_summary_view"},
			"owner":   {Kind: vertexstore.StringVal, S: "bob"},
			"size":    {Kind: vertexstore.IntVal, I: 80},
			"comment": {Kind: vertexstore.StringVal, S: "aggregated nightly"},
		},
	})

	return s
}
