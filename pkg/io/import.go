package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/graphport/graphport/pkg/graph"
)

// document is the wire form shared by the JSON and TOML codecs.
type document struct {
	Directed *bool  `json:"directed,omitempty" toml:"directed"`
	Nodes    []node `json:"nodes" toml:"nodes"`
	Edges    []edge `json:"edges" toml:"edges"`
}

type node struct {
	ID     string `json:"id" toml:"id"`
	Weight string `json:"weight,omitempty" toml:"weight"`
}

type edge struct {
	From   string `json:"from" toml:"from"`
	To     string `json:"to" toml:"to"`
	Weight string `json:"weight,omitempty" toml:"weight"`
}

// ReadJSON decodes a JSON graph document from r.
// Returns an error if the JSON is malformed, a node id repeats, or an
// edge references an unknown node. Errors are wrapped with the node or
// edge that caused them; use errors.Is against the graph package's
// sentinel errors to check for specific conditions.
func ReadJSON(r io.Reader) (*graph.Graph[string, string], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return build(doc)
}

// ReadTOML decodes a TOML graph manifest from r.
// Validation matches [ReadJSON].
func ReadTOML(r io.Reader) (*graph.Graph[string, string], error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return build(doc)
}

// ReadFile loads a graph document from path, selecting the codec from
// the file extension: .json or .toml.
func ReadFile(path string) (*graph.Graph[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ReadJSON(f)
	case ".toml":
		return ReadTOML(f)
	default:
		return nil, fmt.Errorf("unsupported graph document extension %q (want .json or .toml)", ext)
	}
}

// build assembles a validated graph from a decoded document.
// Documents are directed unless they say otherwise.
func build(doc document) (*graph.Graph[string, string], error) {
	directed := doc.Directed == nil || *doc.Directed

	var g *graph.Graph[string, string]
	if directed {
		g = graph.NewDirected[string, string]()
	} else {
		g = graph.NewUndirected[string, string]()
	}

	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Weight); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
