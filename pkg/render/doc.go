// Package render groups visual output formats for graphs.
//
// The [dot] subpackage converts graphs to Graphviz DOT text and
// renders them to SVG. Structured exchange formats (GraphML, JSON)
// live outside this tree, in [graphml] and [io].
//
// [dot]: github.com/graphport/graphport/pkg/render/dot
// [graphml]: github.com/graphport/graphport/pkg/graphml
// [io]: github.com/graphport/graphport/pkg/io
package render
