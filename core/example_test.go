package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/core"
)

// ExampleGraph demonstrates basic creation, labelling, and queries.
func ExampleGraph() {
	g := core.NewGraph()

	// Adding an edge auto-adds both samples.
	_, _ = g.AddEdge("s1", "s2", 5)
	_, _ = g.AddEdge("s2", "s3", 5)
	_ = g.SetLabels("s1", "", "A001")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge s2-s1 exists?", g.HasEdge("s2", "s1"))

	v, _ := g.Vertex("s1")
	fmt.Println("s1 final label:", v.Final)

	// Output:
	// Vertices: [s1 s2 s3]
	// Edge s2-s1 exists? true
	// s1 final label: A001
}
