// SPDX-License-Identifier: MIT

// Command lvcluster assigns stable cluster names to samples from a pairwise
// distance table, honoring the curated and final clusters of a previous run.
//
//	lvcluster cluster --distances distances.tsv --previous-clustering clusters.csv --output clusters.csv
//	lvcluster curate  --input clusters.csv --sample S1 --cluster A004 --output clusters.csv
//	lvcluster presets
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
