package io_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/graphport/graphport/pkg/graph"
	pkgio "github.com/graphport/graphport/pkg/io"
)

func TestReadJSON(t *testing.T) {
	input := `{
		"nodes": [
			{"id": "a", "weight": "petgraph"},
			{"id": "b"}
		],
		"edges": [
			{"from": "a", "to": "b", "weight": "depends on"}
		]
	}`

	g, err := pkgio.ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if !g.Directed() {
		t.Error("ReadJSON() graph should default to directed")
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("graph has %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}
	n, ok := g.Node("a")
	if !ok || n.Weight != "petgraph" {
		t.Errorf("node a = %+v, %v; want weight petgraph", n, ok)
	}
}

func TestReadJSON_Undirected(t *testing.T) {
	input := `{"directed": false, "nodes": [{"id": "a"}], "edges": []}`

	g, err := pkgio.ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if g.Directed() {
		t.Error("ReadJSON() graph should be undirected")
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "duplicate node",
			input: `{"nodes": [{"id": "a"}, {"id": "a"}], "edges": []}`,
			want:  graph.ErrDuplicateNodeID,
		},
		{
			name:  "empty node id",
			input: `{"nodes": [{"id": ""}], "edges": []}`,
			want:  graph.ErrInvalidNodeID,
		},
		{
			name:  "unknown edge source",
			input: `{"nodes": [{"id": "a"}], "edges": [{"from": "x", "to": "a"}]}`,
			want:  graph.ErrUnknownSourceNode,
		},
		{
			name:  "unknown edge target",
			input: `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "x"}]}`,
			want:  graph.ErrUnknownTargetNode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkgio.ReadJSON(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("ReadJSON() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestReadTOML(t *testing.T) {
	input := `
directed = false

[[nodes]]
id = "a"
weight = "petgraph"

[[nodes]]
id = "b"

[[edges]]
from = "a"
to = "b"
`

	g, err := pkgio.ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if g.Directed() {
		t.Error("ReadTOML() graph should be undirected")
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("graph has %d nodes, %d edges; want 2, 1", g.NodeCount(), g.EdgeCount())
	}
}

func TestRoundTrip(t *testing.T) {
	g := graph.NewUndirected[string, string]()
	for _, id := range []string{"a", "b", "c"} {
		if err := g.AddNode(id, "w-"+id); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge("a", "b", "ab"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge("b", "c", ""); err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := pkgio.WriteJSON(g, &sb); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	got, err := pkgio.ReadJSON(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	if got.Directed() != g.Directed() {
		t.Error("round trip lost directedness")
	}
	if got.NodeCount() != g.NodeCount() || got.EdgeCount() != g.EdgeCount() {
		t.Errorf("round trip changed counts: %d/%d nodes, %d/%d edges",
			got.NodeCount(), g.NodeCount(), got.EdgeCount(), g.EdgeCount())
	}
	n, ok := got.Node("b")
	if !ok || n.Weight != "w-b" {
		t.Errorf("round trip lost node weight: %+v, %v", n, ok)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := dir + "/graph.json"
	if err := writeFile(jsonPath, `{"nodes": [{"id": "a"}], "edges": []}`); err != nil {
		t.Fatal(err)
	}
	if _, err := pkgio.ReadFile(jsonPath); err != nil {
		t.Errorf("ReadFile(json) error = %v", err)
	}

	tomlPath := dir + "/graph.toml"
	if err := writeFile(tomlPath, "[[nodes]]\nid = \"a\"\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := pkgio.ReadFile(tomlPath); err != nil {
		t.Errorf("ReadFile(toml) error = %v", err)
	}

	yamlPath := dir + "/graph.yaml"
	if err := writeFile(yamlPath, "nodes: []\n"); err != nil {
		t.Fatal(err)
	}
	if _, err := pkgio.ReadFile(yamlPath); err == nil {
		t.Error("ReadFile(yaml) expected an unsupported extension error")
	}
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
