package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/graphport/graphport/pkg/graph"
)

// WriteJSON encodes a graph as a JSON document and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing; node and edge order is preserved.
func WriteJSON(g *graph.Graph[string, string], w io.Writer) error {
	doc := document{
		Nodes: make([]node, 0, g.NodeCount()),
		Edges: make([]edge, 0, g.EdgeCount()),
	}
	if !g.Directed() {
		directed := false
		doc.Directed = &directed
	}

	g.EachNode(func(id, weight string) {
		doc.Nodes = append(doc.Nodes, node{ID: id, Weight: weight})
	})
	g.EachEdge(func(from, to, weight string) {
		doc.Edges = append(doc.Edges, edge{From: from, To: to, Weight: weight})
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file output.
func ExportJSON(g *graph.Graph[string, string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
