package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/bfs"
	"github.com/katalvlaran/lvcluster/core"
)

// ExampleComponents shows the deterministic component partition.
func ExampleComponents() {
	g := core.NewGraph()
	g.AddEdge("s2", "s1", 5)
	g.AddEdge("s2", "s3", 5)
	g.AddVertex("s4")

	comps, _ := bfs.Components(g)
	for _, c := range comps {
		fmt.Println(c)
	}
	// Output:
	// [s1 s2 s3]
	// [s4]
}
