// Package lvcluster infers stable, human-readable cluster names for
// biological samples from a table of pairwise genetic distances.
//
// 🚀 What does it do?
//
//	Given distances between samples and the clustering of a previous run,
//	lvcluster links every pair within a threshold, finds the connected
//	components (single linkage) and names each component:
//		• a curated name wins over anything else
//		• otherwise the previous run's final name is kept
//		• components that join previously distinct clusters get a merged
//		  name ("A001|A002") and a line in the warnings file
//		• brand-new components get the next free name (A001 … Z999)
//
// ✨ Guarantees
//
//   - Deterministic: the same inputs always give the same names
//   - Stable: names are never reused and never renumbered
//   - Loud merges: every merge is logged at error level and recorded
//
// Layout:
//
//	core/           thread-safe sample graph (vertices carry prior labels)
//	bfs/            breadth-first traversal and connected components
//	linkage/        minimum spanning forest and per-cluster linkage height
//	dataset/        distance, clustering and exclusion tables; CSV output
//	cluster/        graph building, label precedence and name allocation
//	config/         YAML presets and validated run parameters
//	logging/        zap logger construction
//	metrics/        Prometheus registry and textfile export
//	pipeline/       end-to-end run and curation edit
//	cmd/lvcluster   the command-line interface
//
// Quick start:
//
//	go install github.com/katalvlaran/lvcluster/cmd/lvcluster@latest
//	lvcluster cluster --distances distances.tsv --previous-clustering clusters.csv \
//	    --clustering-preset mycobacterium_tuberculosis --output clusters.csv
package lvcluster
