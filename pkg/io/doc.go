// Package io provides JSON and TOML import plus JSON export for
// weighted graph documents.
//
// # JSON Format
//
// A graph document has an optional directedness flag (defaults to
// directed) and two arrays:
//
//	{
//	  "directed": true,
//	  "nodes": [
//	    {"id": "app", "weight": "gateway"},
//	    {"id": "db"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "db", "weight": "tcp"}
//	  ]
//	}
//
// Node "id" is required and must be unique; "weight" is an optional
// string (GraphML attributes are string-typed, so documents carry
// string weights). Edges reference node ids and may carry a weight of
// their own.
//
// # TOML Format
//
// The TOML form mirrors the JSON one and is convenient for
// hand-written graph manifests:
//
//	directed = true
//
//	[[nodes]]
//	id = "app"
//	weight = "gateway"
//
//	[[edges]]
//	from = "app"
//	to = "db"
//
// # Import
//
// Use [ReadFile] to load a document choosing the codec from the file
// extension (.json or .toml), or [ReadJSON]/[ReadTOML] for readers.
// All import functions validate structure (duplicate node ids, edges
// referencing unknown nodes) and wrap errors with the offending node
// or edge for context. The returned graph is independent of the input
// and can be modified freely.
//
// # Export
//
// [WriteJSON] and [ExportJSON] write a document that [ReadJSON] can
// re-import identically. There is no TOML export; TOML is an input
// convenience only.
package io
