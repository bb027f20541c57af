// SPDX-License-Identifier: MIT

// Package pipeline wires one clustering run end to end:
//
//	load distances → load previous clustering → exclude samples →
//	build graph → resolve components → write output (+ warnings, metrics)
//
// It also carries the curation edit used to set a sample's curated cluster
// in an existing clustering table.
package pipeline
