// SPDX-License-Identifier: MIT

package cluster_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/dataset"
)

// BenchmarkResolve_Pairs measures graph building and resolution on N
// disjoint pairs, half of them carrying a previous final label.
func BenchmarkResolve_Pairs(b *testing.B) {
	const N = 2000
	d := make([]dataset.Distance, 0, N)
	records := make([]dataset.Record, 0, N/2)
	for i := 0; i < N; i++ {
		a, c := fmt.Sprintf("s%05d", 2*i), fmt.Sprintf("s%05d", 2*i+1)
		d = append(d, dataset.Distance{Sample1: a, Sample2: c, Value: 1})
		if i%2 == 0 {
			records = append(records, dataset.Record{Sample: a, Final: cluster.FormatName('A'+byte(i/999%26), i%999+1)})
		}
	}
	prev := dataset.NewClustering(records...)
	r, _ := cluster.NewResolver()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _, err := cluster.BuildGraph(d, prev, 10)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := r.Resolve(context.Background(), g, prev.Labels()...); err != nil {
			b.Fatal(err)
		}
	}
}
