// SPDX-License-Identifier: MIT
//
// File: resolver.go
// Role: assigns one label to every connected component.
// Determinism:
//   - Components are visited in ascending order of their smallest sample.
//   - Labelled components are resolved first; new names are then allocated
//     in the same component order, so allocation never races a prior label.

package cluster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcluster/bfs"
	"github.com/katalvlaran/lvcluster/core"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithSeparator sets the merged-name separator (default "|").
func WithSeparator(sep string) Option {
	return func(r *Resolver) { r.sep = sep }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSink sets the destination for merge warnings; nil discards them.
func WithSink(s Sink) Option {
	return func(r *Resolver) {
		if s != nil {
			r.sink = s
		}
	}
}

// Resolver turns connected components into cluster labels.
type Resolver struct {
	sep    string
	logger *zap.Logger
	sink   Sink
}

// NewResolver builds a Resolver. It fails with ErrEmptySeparator when the
// separator is empty.
func NewResolver(opts ...Option) (*Resolver, error) {
	r := &Resolver{sep: DefaultSeparator, logger: zap.NewNop(), sink: nopSink{}}
	for _, opt := range opts {
		opt(r)
	}
	if r.sep == "" {
		return nil, ErrEmptySeparator
	}

	return r, nil
}

// Separator returns the merged-name separator in use.
func (r *Resolver) Separator() string { return r.sep }

// Outcome is the decision taken for one component.
type Outcome struct {
	Decision

	// Members are the component's samples, sorted.
	Members []string
}

// Result holds the labels inferred for every vertex.
type Result struct {
	// Inferred maps every sample in the graph to its inferred label.
	Inferred map[string]string

	// Outcomes lists one entry per component, in component order.
	Outcomes []Outcome

	// Ledger is the name ledger after the last allocation.
	Ledger Ledger
}

// Count returns how many components resolved to kind k.
func (res *Result) Count(k Kind) int {
	n := 0
	for _, o := range res.Outcomes {
		if o.Kind == k {
			n++
		}
	}

	return n
}

// Resolve labels every connected component of g.
//
// reserved lists names that new allocations must stay above, typically every
// label of the previous run; labels assigned during the run are added as
// they are decided.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ctx.Err() when ctx is cancelled during the component search.
//   - ErrNamesExhausted when a new name would follow Z999.
//   - Sink write errors.
func (r *Resolver) Resolve(ctx context.Context, g *core.Graph, reserved ...string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	start := time.Now()

	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("cluster: components: %w", err)
	}
	r.logger.Info("starting analysis per component", zap.Int("components", len(comps)))

	res := &Result{
		Inferred: make(map[string]string, g.VertexCount()),
		Outcomes: make([]Outcome, 0, len(comps)),
	}
	for _, members := range comps {
		d, err := r.decide(g, members)
		if err != nil {
			return nil, err
		}
		res.Outcomes = append(res.Outcomes, Outcome{Decision: d, Members: members})
	}

	ledger := NewLedger(r.sep).Observe(reserved...)
	for i := range res.Outcomes {
		if res.Outcomes[i].Kind == KindNew {
			continue
		}
		if ledger, err = r.assign(ledger, &res.Outcomes[i], res.Inferred); err != nil {
			return nil, err
		}
	}
	for i := range res.Outcomes {
		if res.Outcomes[i].Kind != KindNew {
			continue
		}
		if ledger, err = r.assign(ledger, &res.Outcomes[i], res.Inferred); err != nil {
			return nil, err
		}
	}
	res.Ledger = ledger

	r.logger.Debug("resolved components",
		zap.Int("components", len(comps)),
		zap.Int("samples", len(res.Inferred)),
		zap.Duration("took", time.Since(start)))

	return res, nil
}

// decide collects the component's labels and applies the precedence rule.
func (r *Resolver) decide(g *core.Graph, members []string) (Decision, error) {
	curated := make([]string, 0, len(members))
	final := make([]string, 0, len(members))
	for _, id := range members {
		v, err := g.Vertex(id)
		if err != nil {
			return Decision{}, fmt.Errorf("cluster: vertex %q: %w", id, err)
		}
		curated = append(curated, v.Curated)
		final = append(final, v.Final)
	}

	return Decide(curated, final, r.sep), nil
}

// assign completes o (allocating a name for KindNew), reports it, writes the
// label to every member and returns the ledger that has observed the label.
func (r *Resolver) assign(l Ledger, o *Outcome, inferred map[string]string) (Ledger, error) {
	if o.Kind == KindNew {
		name, next, err := l.Next()
		if err != nil {
			return l, err
		}
		o.Label, l = name, next
	} else {
		l = l.Observe(o.Label)
	}

	if err := r.report(o); err != nil {
		return l, err
	}
	for _, id := range o.Members {
		inferred[id] = o.Label
	}
	r.logger.Debug("assigning cluster", zap.String("cluster", o.Label), zap.Strings("samples", o.Members))

	return l, nil
}

// report logs the outcome and records merges in the sink.
func (r *Resolver) report(o *Outcome) error {
	fields := []zap.Field{zap.String("cluster", o.Label), zap.Int("samples", len(o.Members))}

	switch o.Kind {
	case KindCuratedMerge:
		r.logger.Error("curated clusters have merged", append(fields, zap.Strings("merged", o.Sources))...)
		return r.sink.Record(mergeLine("Curated", o))
	case KindCuratedReuse:
		r.logger.Warn("cluster is curated and not merged with others", fields...)
	case KindFinalMerge:
		r.logger.Error("final clusters have merged", append(fields, zap.Strings("merged", o.Sources))...)
		return r.sink.Record(mergeLine("Final", o))
	case KindFinalReuse:
		r.logger.Info("cluster is known and not merged with others", fields...)
	case KindNew:
		r.logger.Info("created new cluster name", append(fields, zap.Strings("members", o.Members))...)
	}

	return nil
}

// mergeLine renders the warnings-file line for a merge.
func mergeLine(what string, o *Outcome) string {
	return fmt.Sprintf("WARNING: %s clusters %s have merged into %s!",
		what, strings.Join(o.Sources, ", "), o.Label)
}
