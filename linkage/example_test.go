// SPDX-License-Identifier: MIT

package linkage_test

import (
	"fmt"

	"github.com/katalvlaran/lvcluster/core"
	"github.com/katalvlaran/lvcluster/linkage"
)

// ExampleHeights shows the threshold each cluster needs to stay whole.
func ExampleHeights() {
	g := core.NewGraph()
	g.AddEdge("s1", "s2", 3)
	g.AddEdge("s2", "s3", 9)
	g.AddEdge("s1", "s3", 10)
	g.AddVertex("s4")

	h, _ := linkage.Heights(g)
	fmt.Println(h["s1"], h["s4"])
	// Output:
	// 9 0
}
