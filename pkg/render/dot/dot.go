// Package dot converts graphs to Graphviz DOT text and renders them
// to SVG.
//
// DOT output is a companion to the GraphML exporter for quick visual
// inspection: node weights become labels, edge weights become edge
// labels. Rendering uses the embedded Graphviz (goccy/go-graphviz),
// so no system Graphviz installation is required.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/graphport/graphport/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// Weights includes node and edge weights as labels.
	// When false, nodes are labeled with their id only and edges are
	// unlabeled.
	Weights bool
}

// ToDOT converts a graph to Graphviz DOT format.
// Directed graphs become a digraph with "->" edges; undirected graphs
// a graph with "--" edges. The resulting string can be rendered with
// [RenderSVG].
func ToDOT[N, E any](g *graph.Graph[N, E], opts Options) string {
	kind, arrow := "digraph", "->"
	if !g.Directed() {
		kind, arrow = "graph", "--"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	g.EachNode(func(id string, weight N) {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, nodeLabel(id, weight, opts.Weights))
	})

	buf.WriteString("\n")
	g.EachEdge(func(source, target string, weight E) {
		if label := weightLabel(weight, opts.Weights); label != "" {
			fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n", source, arrow, target, label)
			return
		}
		fmt.Fprintf(&buf, "  %q %s %q;\n", source, arrow, target)
	})

	buf.WriteString("}\n")
	return buf.String()
}

func nodeLabel[N any](id string, weight N, withWeights bool) string {
	label := weightLabel(weight, withWeights)
	if label == "" || label == id {
		return id
	}
	return id + "\n" + label
}

// weightLabel renders a weight for display, or "" when weights are
// disabled or the weight stringifies to nothing.
func weightLabel[W any](weight W, withWeights bool) string {
	if !withWeights {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(weight))
}

// RenderSVG renders DOT text to SVG bytes using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
