// SPDX-License-Identifier: MIT

package cluster

import "errors"

// Sentinel errors for cluster resolution.
var (
	// ErrNamesExhausted is returned when a new name would have to follow Z999.
	ErrNamesExhausted = errors.New("cluster: cluster names exhausted after Z999")

	// ErrBadName indicates a string that is not a simple cluster name.
	ErrBadName = errors.New("cluster: malformed cluster name")

	// ErrEmptySeparator indicates a merged-name separator of length zero.
	ErrEmptySeparator = errors.New("cluster: merged-name separator is empty")

	// ErrBadThreshold indicates a negative or NaN threshold.
	ErrBadThreshold = errors.New("cluster: threshold must be a non-negative number")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("cluster: graph is nil")
)
