package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"graphml", "dot", "svg", "json"} {
		if err := validateFormat(format); err != nil {
			t.Errorf("validateFormat(%q) error = %v", format, err)
		}
	}
	if err := validateFormat("gexf"); err == nil {
		t.Error("validateFormat(\"gexf\") expected an error")
	}
}

func TestWeightExporter(t *testing.T) {
	if attrs := weightExporter(""); attrs != nil {
		t.Errorf("weightExporter(\"\") = %v, want nil", attrs)
	}
	attrs := weightExporter("petgraph")
	if len(attrs) != 1 || attrs[0].Key != "weight" || attrs[0].Value != "petgraph" {
		t.Errorf("weightExporter(\"petgraph\") = %v", attrs)
	}
}

func TestExport_GraphML(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "graph.graphml")

	doc := `{
		"nodes": [{"id": "a", "weight": "petgraph"}, {"id": "b"}],
		"edges": [{"from": "a", "to": "b"}]
	}`
	if err := os.WriteFile(input, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", input, "-o", output); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	for _, want := range []string{
		`<graphml xmlns="http://graphml.graphdrawing.org/xmlns">`,
		`<node id="n0">`,
		`<data key="weight">petgraph</data>`,
		`<node id="n1" />`,
		`<edge id="e0" source="n0" target="n1" />`,
		`<key id="weight" for="node" attr.name="weight" attr.type="string" />`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestExport_Compact(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	output := filepath.Join(dir, "out.graphml")

	if err := os.WriteFile(input, []byte(`{"nodes": [{"id": "a"}], "edges": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", input, "-o", output, "--compact", "--no-weights"); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "\n") {
		t.Errorf("compact output contains newlines:\n%s", data)
	}
}

func TestExport_DOT(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.toml")
	output := filepath.Join(dir, "out.dot")

	manifest := "directed = false\n\n[[nodes]]\nid = \"a\"\n\n[[nodes]]\nid = \"b\"\n\n[[edges]]\nfrom = \"a\"\nto = \"b\"\n"
	if err := os.WriteFile(input, []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", input, "-o", output, "-f", "dot"); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a" -- "b";`) {
		t.Errorf("DOT output missing undirected edge:\n%s", data)
	}
}

func TestExport_BadFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(input, []byte(`{"nodes": [], "edges": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := runCommand(t, "export", input, "-f", "gexf"); err == nil {
		t.Error("export with unknown format expected an error")
	}
}

func TestExport_MissingInput(t *testing.T) {
	if err := runCommand(t, "export", filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("export of missing file expected an error")
	}
}

// runCommand executes the CLI root command with the given arguments,
// discarding log output.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}
