package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/graphml"
	pkgio "github.com/graphport/graphport/pkg/io"
	"github.com/graphport/graphport/pkg/render/dot"
)

// Supported export formats.
const (
	formatGraphML = "graphml"
	formatDOT     = "dot"
	formatSVG     = "svg"
	formatJSON    = "json"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output    string // output file path (stdout if empty)
	format    string // graphml, dot, svg, or json
	compact   bool   // disable pretty-printing of GraphML output
	noWeights bool   // omit node/edge weights from the output
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{}

	cmd := &cobra.Command{
		Use:   "export [graph.json|graph.toml]",
		Short: "Convert a graph document to GraphML, DOT, SVG, or JSON",
		Long: `Convert a graph document to another format.

The input is a graph document in JSON or TOML form (see the pkg/io
documentation for the schema). The output format defaults to GraphML;
use --format to select DOT, SVG (rendered via Graphviz), or JSON.

Node and edge weights are exported by default as string attributes
named "weight"; empty weights are skipped. Use --no-weights to omit
them entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if omitted)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatGraphML, "output format: graphml (default), dot, svg, json")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "emit GraphML without indentation")
	cmd.Flags().BoolVar(&opts.noWeights, "no-weights", false, "omit node and edge weights")

	return cmd
}

// validateFormat checks the --format flag value.
func validateFormat(format string) error {
	switch format {
	case formatGraphML, formatDOT, formatSVG, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want graphml, dot, svg, or json)", format)
	}
}

// runExport loads the input document and writes the converted output.
func (c *CLI) runExport(ctx context.Context, input string, opts exportOpts) error {
	progress := newProgress(c.Logger)

	g, err := pkgio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	c.Logger.Debugf("Loaded %s: %d nodes, %d edges", filepath.Base(input), g.NodeCount(), g.EdgeCount())

	data, err := c.convert(ctx, g, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Print(string(data))
		if !strings.HasSuffix(string(data), "\n") {
			fmt.Println()
		}
		return nil
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	progress.done(fmt.Sprintf("Exported %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))
	printSuccess("Wrote %s", opts.format)
	printFile(opts.output)
	return nil
}

// convert serializes the graph into the requested format.
func (c *CLI) convert(ctx context.Context, g *graph.Graph[string, string], opts exportOpts) ([]byte, error) {
	switch opts.format {
	case formatGraphML:
		enc := graphml.New[string, string](g).PrettyPrint(!opts.compact)
		if !opts.noWeights {
			enc.ExportNodeWeights(weightExporter)
			enc.ExportEdgeWeights(weightExporter)
		}
		return []byte(enc.String()), nil

	case formatDOT:
		return []byte(dot.ToDOT(g, dot.Options{Weights: !opts.noWeights})), nil

	case formatSVG:
		text := dot.ToDOT(g, dot.Options{Weights: !opts.noWeights})
		svg, err := dot.RenderSVG(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("render SVG: %w", err)
		}
		return svg, nil

	case formatJSON:
		var sb strings.Builder
		if err := pkgio.WriteJSON(g, &sb); err != nil {
			return nil, err
		}
		return []byte(sb.String()), nil

	default:
		return nil, fmt.Errorf("unsupported format %q", opts.format)
	}
}

// weightExporter maps a string weight to a single "weight" attribute,
// skipping empty weights so that unweighted elements stay childless.
func weightExporter(weight string) []graphml.Attribute {
	if weight == "" {
		return nil
	}
	return []graphml.Attribute{{Key: "weight", Value: weight}}
}
