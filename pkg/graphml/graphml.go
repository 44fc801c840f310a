// Package graphml serializes graphs to the GraphML exchange format.
//
// GraphML requires every node or edge attribute appearing in a `<data>`
// element to be declared by a `<key>` element. Attribute names are not
// known statically - they come from user-supplied weight exporters
// invoked while the graph is walked - so the encoder streams the graph
// body in a single pass, records each distinct (name, scope) pair it
// emits, and writes the declarations after the body is complete.
//
// The encoder works against the [Source] interface and never modifies
// the graph. Typical usage:
//
//	g := graph.NewDirected[string, string]()
//	_ = g.AddNode("a", "petgraph")
//	xml := graphml.New[string, string](g).
//		ExportDefaultNodeWeights().
//		String()
//
// All attribute values are emitted as attr.type="string"; typed
// attributes are out of scope.
package graphml

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/graphport/graphport/pkg/xmlwriter"
)

// Namespace is the GraphML XML namespace URI.
const Namespace = "http://graphml.graphdrawing.org/xmlns"

// Source is the graph abstraction consumed by the encoder. It is
// borrowed read-only for the duration of one Encode call.
//
// EachNode and EachEdge enumerate references in the graph's own
// iteration order; the encoder imposes no ordering of its own. Index
// must map every node identifier yielded by EachNode or EachEdge to a
// dense zero-based index, which forms the emitted "n{index}" ids.
type Source[N, E any] interface {
	// Directed reports whether edges are directed. Queried once per
	// Encode, before any element is emitted.
	Directed() bool

	// EachNode calls fn for every node with its stable identifier and
	// weight.
	EachNode(fn func(id string, weight N))

	// EachEdge calls fn for every edge with its endpoint identifiers
	// and weight.
	EachEdge(fn func(source, target string, weight E))

	// Index returns the dense zero-based index of the node with the
	// given identifier.
	Index(id string) int
}

// Attribute is one named string value produced by an exporter.
type Attribute struct {
	Key   string
	Value string
}

// ExportWeights maps a node or edge weight to an ordered list of
// attributes. The list may be empty, and a key may repeat - each
// repetition yields its own <data> element but only one <key>
// declaration. Exporters must not modify the graph and have no way to
// fail; a weight that cannot be represented should be encoded as a
// string (for example the empty string).
type ExportWeights[W any] func(weight W) []Attribute

// DefaultWeights returns an exporter emitting a single attribute named
// "weight" holding the fmt.Sprint rendering of the weight.
func DefaultWeights[W any]() ExportWeights[W] {
	return func(weight W) []Attribute {
		return []Attribute{{Key: "weight", Value: fmt.Sprint(weight)}}
	}
}

// Encoder accumulates serialization settings and performs the
// emission. Configuration methods return the encoder for chaining and
// must not be called concurrently with Encode.
//
// Encode is fully synchronous and keeps no state between calls, so a
// configured Encoder may serve concurrent Encode calls as long as the
// source, the exporters, and the sinks tolerate it.
type Encoder[N, E any] struct {
	src         Source[N, E]
	pretty      bool
	exportNodes ExportWeights[N]
	exportEdges ExportWeights[E]
}

// New creates an encoder for the given graph. Pretty-printing is
// enabled by default and no weights are exported.
func New[N, E any](src Source[N, E]) *Encoder[N, E] {
	return &Encoder[N, E]{src: src, pretty: true}
}

// PrettyPrint toggles indented output. It affects only inter-element
// whitespace, never element content or attribute values.
func (e *Encoder[N, E]) PrettyPrint(on bool) *Encoder[N, E] {
	e.pretty = on
	return e
}

// ExportNodeWeights installs the node weight exporter, replacing any
// previously installed one.
func (e *Encoder[N, E]) ExportNodeWeights(fn ExportWeights[N]) *Encoder[N, E] {
	e.exportNodes = fn
	return e
}

// ExportEdgeWeights installs the edge weight exporter, replacing any
// previously installed one.
func (e *Encoder[N, E]) ExportEdgeWeights(fn ExportWeights[E]) *Encoder[N, E] {
	e.exportEdges = fn
	return e
}

// ExportDefaultNodeWeights installs [DefaultWeights] as the node
// exporter: one attribute named "weight" per node.
func (e *Encoder[N, E]) ExportDefaultNodeWeights() *Encoder[N, E] {
	return e.ExportNodeWeights(DefaultWeights[N]())
}

// ExportDefaultEdgeWeights installs [DefaultWeights] as the edge
// exporter: one attribute named "weight" per edge.
func (e *Encoder[N, E]) ExportDefaultEdgeWeights() *Encoder[N, E] {
	return e.ExportEdgeWeights(DefaultWeights[E]())
}

// Encode serializes the graph to w in a single pass.
//
// The document is emitted strictly in order: XML declaration, the
// <graphml> root, the <graph> body (all nodes, then all edges), one
// <key> declaration per distinct attribute discovered during the body,
// and the root end tag. Key declarations follow the graph body so that
// the body can stream without buffering; they are emitted in
// first-discovery order, making output deterministic.
//
// The only error returned is a write failure from w, which aborts the
// remaining emission and may leave a truncated document in the sink.
func (e *Encoder[N, E]) Encode(w io.Writer) error {
	xw := xmlwriter.New(w, xmlwriter.Options{Indent: e.pretty})
	reg := newRegistry()

	xw.WriteHeader()
	xw.Start("graphml", xmlwriter.Attr{Name: "xmlns", Value: Namespace})
	e.encodeGraph(xw, reg)
	encodeKeys(xw, reg)
	xw.End() // graphml

	return xw.Flush()
}

// String serializes into an in-memory buffer. Buffer writes cannot
// fail, so any error here is an internal invariant violation and
// panics instead of being returned.
func (e *Encoder[N, E]) String() string {
	var buf bytes.Buffer
	if err := e.Encode(&buf); err != nil {
		panic(fmt.Sprintf("graphml: encoding to buffer failed: %v", err))
	}
	return buf.String()
}

// encodeGraph streams the <graph> element, registering every
// attribute emitted along the way.
func (e *Encoder[N, E]) encodeGraph(xw *xmlwriter.Writer, reg *registry) {
	edgedefault := "undirected"
	if e.src.Directed() {
		edgedefault = "directed"
	}
	xw.Start("graph", xmlwriter.Attr{Name: "edgedefault", Value: edgedefault})

	e.src.EachNode(func(id string, weight N) {
		xw.Start("node", xmlwriter.Attr{Name: "id", Value: e.nodeID(id)})
		if e.exportNodes != nil {
			writeData(xw, reg, scopeNode, e.exportNodes(weight))
		}
		xw.End()
	})

	// Edge ids are a plain counter in traversal order, unrelated to
	// any identifier the graph assigns to edges itself.
	k := 0
	e.src.EachEdge(func(source, target string, weight E) {
		xw.Start("edge",
			xmlwriter.Attr{Name: "id", Value: "e" + strconv.Itoa(k)},
			xmlwriter.Attr{Name: "source", Value: e.nodeID(source)},
			xmlwriter.Attr{Name: "target", Value: e.nodeID(target)},
		)
		if e.exportEdges != nil {
			writeData(xw, reg, scopeEdge, e.exportEdges(weight))
		}
		xw.End()
		k++
	})

	xw.End() // graph
}

// writeData emits one <data> element per attribute and records each
// (key, scope) pair for later declaration.
func writeData(xw *xmlwriter.Writer, reg *registry, s scope, attrs []Attribute) {
	for _, a := range attrs {
		reg.add(a.Key, s)
		xw.Start("data", xmlwriter.Attr{Name: "key", Value: a.Key})
		xw.Text(a.Value)
		xw.End()
	}
}

// encodeKeys emits one <key> declaration per registry entry.
func encodeKeys(xw *xmlwriter.Writer, reg *registry) {
	for _, entry := range reg.entries {
		xw.Start("key",
			xmlwriter.Attr{Name: "id", Value: entry.name},
			xmlwriter.Attr{Name: "for", Value: entry.scope.String()},
			xmlwriter.Attr{Name: "attr.name", Value: entry.name},
			xmlwriter.Attr{Name: "attr.type", Value: "string"},
		)
		xw.End()
	}
}

// nodeID renders the graph's dense index for a node as its GraphML id.
func (e *Encoder[N, E]) nodeID(id string) string {
	return "n" + strconv.Itoa(e.src.Index(id))
}
