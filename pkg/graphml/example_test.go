package graphml_test

import (
	"fmt"
	"strings"

	"github.com/graphport/graphport/pkg/graph"
	"github.com/graphport/graphport/pkg/graphml"
)

func ExampleEncoder() {
	g := graph.NewDirected[string, string]()
	_ = g.AddNode("pg", "petgraph")
	_ = g.AddNode("fb", "fixedbitset")
	_ = g.AddEdge("pg", "fb", "depends on")

	xml := graphml.New[string, string](g).
		ExportDefaultNodeWeights().
		String()

	fmt.Println(xml)
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <graphml xmlns="http://graphml.graphdrawing.org/xmlns">
	//   <graph edgedefault="directed">
	//     <node id="n0">
	//       <data key="weight">petgraph</data>
	//     </node>
	//     <node id="n1">
	//       <data key="weight">fixedbitset</data>
	//     </node>
	//     <edge id="e0" source="n0" target="n1" />
	//   </graph>
	//   <key id="weight" for="node" attr.name="weight" attr.type="string" />
	// </graphml>
}

func ExampleEncoder_customExporter() {
	type service struct {
		Name string
		Tier int
	}

	g := graph.NewDirected[service, string]()
	_ = g.AddNode("api", service{Name: "api-gateway", Tier: 0})
	_ = g.AddNode("db", service{Name: "postgres", Tier: 2})
	_ = g.AddEdge("api", "db", "")

	xml := graphml.New[service, string](g).
		PrettyPrint(false).
		ExportNodeWeights(func(s service) []graphml.Attribute {
			return []graphml.Attribute{
				{Key: "name", Value: s.Name},
				{Key: "tier", Value: fmt.Sprint(s.Tier)},
			}
		}).
		String()

	fmt.Println(strings.Count(xml, "<key "), "keys declared")
	// Output:
	// 2 keys declared
}
