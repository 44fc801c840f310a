// Package pkg provides the core libraries for graphport.
//
// # Overview
//
// Graphport converts weighted graphs into exchange and visualization
// formats. The pkg directory is organized by concern:
//
//   - [graph] - the weighted graph structure (directed or undirected,
//     insertion-ordered, dense node indexing)
//   - [graphml] - streaming GraphML serialization with dynamic
//     attribute discovery
//   - [xmlwriter] - the low-level XML emitter used by graphml
//   - [io] - JSON and TOML graph documents for tool interchange
//   - [render] - visual output (Graphviz DOT, SVG)
//   - [buildinfo] - build-time version information
//
// # Data Flow
//
// The typical flow through graphport:
//
//	JSON/TOML document
//	         ↓
//	    [io] package (decode + validate)
//	         ↓
//	    [graph] package (weighted graph)
//	         ↓
//	    [graphml] or [render/dot] (serialize)
//	         ↓
//	    GraphML/DOT/SVG output
//
// The [graphml] encoder does not depend on the concrete [graph] type;
// it consumes a small traversal interface, so any graph exposing
// node/edge enumeration and dense indexing can be serialized.
//
// [graph]: github.com/graphport/graphport/pkg/graph
// [graphml]: github.com/graphport/graphport/pkg/graphml
// [xmlwriter]: github.com/graphport/graphport/pkg/xmlwriter
// [io]: github.com/graphport/graphport/pkg/io
// [render]: github.com/graphport/graphport/pkg/render
// [buildinfo]: github.com/graphport/graphport/pkg/buildinfo
package pkg
