// SPDX-License-Identifier: MIT

// Package dataset reads and writes the tabular files around a clustering run.
//
// Inputs:
//
//	distances            TSV, no header: sample1, sample2, distance
//	previous clustering  CSV with header: sample, curated_cluster, final_cluster (optional file)
//	exclusion list       TSV with header containing a "sample" column (optional file)
//
// Output:
//
//	clustering           CSV with header: sample, inferred_cluster, curated_cluster, final_cluster
//
// Missing labels are represented by the empty string. Cells holding the usual
// missing-value spellings ("nan", "NA", "None", ...) are read as missing, so a
// label is never the literal text "nan".
//
// Errors:
//
//	ErrMalformedRow   – wrong column count, non-numeric or negative distance
//	ErrMissingColumn  – a required header column is absent
//	ErrEmptySample    – a row with an empty sample identifier
package dataset
