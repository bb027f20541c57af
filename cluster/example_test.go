// SPDX-License-Identifier: MIT

package cluster_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/dataset"
)

// ExampleResolver_Resolve labels a chain and an isolated sample.
func ExampleResolver_Resolve() {
	d := []dataset.Distance{
		{Sample1: "s1", Sample2: "s2", Value: 5},
		{Sample1: "s2", Sample2: "s3", Value: 5},
		{Sample1: "s3", Sample2: "s4", Value: 50},
	}
	g, _, err := cluster.BuildGraph(d, nil, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, _ := cluster.NewResolver()
	res, err := r.Resolve(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, o := range res.Outcomes {
		fmt.Println(o.Label, o.Kind, o.Members)
	}
	// Output:
	// A001 new [s1 s2 s3]
	// A002 new [s4]
}

// ExampleMergeNames shows that merged names are order independent.
func ExampleMergeNames() {
	fmt.Println(cluster.MergeNames([]string{"A003", "A001|A002"}, "|"))
	// Output:
	// A001|A002|A003
}
