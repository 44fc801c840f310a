// Package graph provides a generic weighted graph with insertion-ordered
// nodes and edges.
//
// The graph is deliberately permissive: it may be directed or
// undirected, and it allows self-loops and parallel edges. Node
// identifiers are strings and must be unique; each node also gets a
// dense zero-based index equal to its insertion position, which
// serializers use to form compact node ids.
//
// Graph satisfies the traversal interface expected by the graphml
// encoder (directedness query, node/edge enumeration, dense index
// lookup) without importing it.
package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID
	// is empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node
	// with the same ID already exists.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the
	// source node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the
	// target node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node is a vertex with its identifier and weight.
type Node[N any] struct {
	ID     string
	Weight N
}

// Edge is a connection between two nodes. For undirected graphs, From
// and To carry no orientation beyond the order they were given in.
type Edge[E any] struct {
	From   string
	To     string
	Weight E
}

// Graph is a weighted graph parameterized over node and edge weight
// types. The zero value is not usable - use [NewDirected] or
// [NewUndirected].
//
// Graph is not safe for concurrent mutation. Concurrent read-only
// traversal is safe.
type Graph[N, E any] struct {
	directed bool
	nodes    []Node[N]
	edges    []Edge[E]
	index    map[string]int // node ID -> insertion position
}

// NewDirected creates an empty directed graph.
func NewDirected[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{directed: true, index: make(map[string]int)}
}

// NewUndirected creates an empty undirected graph.
func NewUndirected[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{index: make(map[string]int)}
}

// Directed reports whether edges carry direction.
func (g *Graph[N, E]) Directed() bool { return g.directed }

// AddNode adds a node with the given identifier and weight.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if
// the ID is already taken. The node receives the next dense index.
func (g *Graph[N, E]) AddNode(id string, weight N) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.index[id]; exists {
		return ErrDuplicateNodeID
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node[N]{ID: id, Weight: weight})
	return nil
}

// AddEdge adds an edge between two existing nodes. Returns
// ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint is
// missing. Self-loops and parallel edges are allowed.
func (g *Graph[N, E]) AddEdge(from, to string, weight E) error {
	if _, ok := g.index[from]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.index[to]; !ok {
		return ErrUnknownTargetNode
	}
	g.edges = append(g.edges, Edge[E]{From: from, To: to, Weight: weight})
	return nil
}

// Node returns the node with the given ID, if present.
func (g *Graph[N, E]) Node(id string) (Node[N], bool) {
	i, ok := g.index[id]
	if !ok {
		return Node[N]{}, false
	}
	return g.nodes[i], true
}

// Index returns the dense zero-based index of the node with the given
// ID, or -1 if the node does not exist. Indices follow insertion
// order and never change once assigned.
func (g *Graph[N, E]) Index(id string) int {
	i, ok := g.index[id]
	if !ok {
		return -1
	}
	return i
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// Nodes returns all nodes in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph[N, E]) Nodes() []Node[N] { return slices.Clone(g.nodes) }

// Edges returns all edges in insertion order.
// The returned slice is a copy and can be modified freely.
func (g *Graph[N, E]) Edges() []Edge[E] { return slices.Clone(g.edges) }

// EachNode calls fn for every node in insertion order.
func (g *Graph[N, E]) EachNode(fn func(id string, weight N)) {
	for _, n := range g.nodes {
		fn(n.ID, n.Weight)
	}
}

// EachEdge calls fn for every edge in insertion order.
func (g *Graph[N, E]) EachEdge(fn func(source, target string, weight E)) {
	for _, e := range g.edges {
		fn(e.From, e.To, e.Weight)
	}
}
