// SPDX-License-Identifier: MIT

// Package cluster turns a pairwise distance table into stable cluster labels.
//
// A run has two steps:
//
//  1. BuildGraph links every pair of samples whose distance is within the
//     threshold and joins the previous run's labels onto the samples.
//  2. Resolver.Resolve walks the connected components (single linkage) and
//     labels each one by precedence:
//
//     several curated labels → merged curated name ("A001|A002"), logged as an error
//     one curated label      → that label
//     several final labels   → merged final name, logged as an error
//     one final label        → that label
//     no label               → the next free simple name
//
// Simple names run A001..A999, B001..B999, … Z999. New names always follow
// the greatest simple name seen in the previous run or assigned earlier in
// the current one, so a name is never reused. Merged names list their parts
// sorted and joined with the separator, whatever the order they met in.
//
// Merge events are also written, one line each, to a Sink (usually a
// FileSink on the warnings file, which is only created by the first merge).
//
// Errors:
//
//	ErrNamesExhausted – a new name would have to follow Z999
//	ErrBadName        – not a simple name
//	ErrEmptySeparator – zero-length merged-name separator
//	ErrBadThreshold   – negative or NaN threshold
//	ErrGraphNil       – nil graph passed to Resolve
package cluster
