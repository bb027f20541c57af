// SPDX-License-Identifier: MIT

// File: types.go
// Role: sentinel errors and functional options for component search.

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal via functional arguments.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the context checked before every dequeue; a cancelled
// context aborts the traversal with ctx.Err(). A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
