// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/config"
	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/linkage"
	"github.com/katalvlaran/lvcluster/logging"
	"github.com/katalvlaran/lvcluster/metrics"
)

// StdoutPath selects standard output as the output destination.
const StdoutPath = "-"

// ErrNoDistances is returned when no distances path is given.
var ErrNoDistances = errors.New("pipeline: distances path is required")

// Options describe one clustering run.
type Options struct {
	DistancesPath string
	PreviousPath  string // optional; missing file means first run
	ExcludePath   string // optional
	OutputPath    string // "" or "-" writes to Stdout
	WarningsPath  string // "" derives it from OutputPath
	MetricsPath   string // optional Prometheus textfile

	Params   config.Params
	Isolated cluster.IsolatedPolicy

	// RunID tags every log entry of the run as run_id; generated when empty.
	RunID string

	// Stdout receives the output table when writing to standard output.
	Stdout io.Writer
}

// Report summarizes a finished run.
type Report struct {
	RunID        string
	Rows         []dataset.Row
	Build        cluster.BuildStats
	Excluded     int // distance pairs removed by the exclusion list
	Components   int
	Outcomes     map[cluster.Kind]int
	WarningsPath string
	Merges       int

	// Linkage maps each component's smallest sample to its linkage height:
	// the smallest threshold at which the component is still connected.
	// Merged components can share a label, so the label cannot be the key.
	Linkage map[string]float64
}

// WarningsPath returns the default warnings file for an output path:
// the output with its extension replaced by ".WARNINGS.txt", or
// "WARNINGS.txt" when writing to standard output.
func WarningsPath(output string) string {
	if output == "" || output == StdoutPath {
		return "WARNINGS.txt"
	}

	return strings.TrimSuffix(output, filepath.Ext(output)) + ".WARNINGS.txt"
}

// Run executes one clustering run. logger and m may be nil.
//
// Errors:
//   - ErrNoDistances, config.ErrInvalidParams.
//   - dataset errors for unreadable or malformed inputs.
//   - cluster.ErrNamesExhausted, warnings-file write errors.
//   - ctx.Err() when cancelled between steps.
func Run(ctx context.Context, opts Options, logger *zap.Logger, m *metrics.Collector) (*Report, error) {
	logger = logging.OrNop(logger)
	if m == nil {
		m = metrics.NewCollector()
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	logger = logger.With(zap.String("run_id", opts.RunID))
	if opts.DistancesPath == "" {
		return nil, ErrNoDistances
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}
	if opts.WarningsPath == "" {
		opts.WarningsPath = WarningsPath(opts.OutputPath)
	}
	rep := &Report{RunID: opts.RunID, WarningsPath: opts.WarningsPath}

	logger.Info("starting clustering run",
		zap.String("preset", opts.Params.Preset),
		zap.Float64("threshold", opts.Params.Threshold),
		zap.Float64p("max_distance", opts.Params.MaxDistance),
		zap.String("separator", opts.Params.Separator),
		zap.Stringer("isolated", opts.Isolated))

	// Load.
	start := time.Now()
	logger.Info("reading distances", zap.String("path", opts.DistancesPath))
	distances, err := dataset.LoadDistances(opts.DistancesPath)
	if err != nil {
		return nil, err
	}
	m.Pairs.WithLabelValues("read").Set(float64(len(distances)))
	m.Samples.WithLabelValues("read").Set(float64(len(dataset.Samples(distances))))

	prev, found, err := dataset.LoadClustering(opts.PreviousPath)
	if err != nil {
		return nil, err
	}
	if found {
		logger.Info("reading previous clustering", zap.String("path", opts.PreviousPath), zap.Int("samples", prev.Len()))
	} else {
		logger.Info("no previous clustering found")
	}
	if len(prev.Duplicates) > 0 {
		logger.Warn("previous clustering repeats samples, keeping the last row", zap.Strings("samples", prev.Duplicates))
	}

	excluded, err := dataset.LoadExclusions(opts.ExcludePath)
	if err != nil {
		return nil, err
	}
	if len(excluded) > 0 {
		logger.Info("excluding samples", zap.Int("samples", len(excluded)))
		distances, rep.Excluded = dataset.Exclude(distances, excluded)
		logger.Debug("excluded distance pairs", zap.Int("pairs", rep.Excluded))
	}
	m.Samples.WithLabelValues("excluded").Set(float64(len(excluded)))
	m.ObserveStep("load", start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Build.
	start = time.Now()
	logger.Info("filtering graph using threshold", zap.Float64("threshold", opts.Params.Threshold))
	g, stats, err := cluster.BuildGraph(distances, prev, opts.Params.Threshold, cluster.WithIsolated(opts.Isolated))
	if err != nil {
		return nil, err
	}
	rep.Build = stats
	gs := g.Stats()
	logger.Info("graph built",
		zap.Int("samples", gs.VertexCount),
		zap.Int("edges", gs.EdgeCount),
		zap.Int("isolated", gs.IsolatedCount),
		zap.Int("curated", gs.CuratedCount),
		zap.Int("final", gs.FinalCount))
	if len(stats.Dropped) > 0 {
		logger.Warn("dropping samples without any distance within threshold", zap.Strings("samples", stats.Dropped))
	}
	m.Pairs.WithLabelValues("kept").Set(float64(stats.Kept))
	m.Pairs.WithLabelValues("duplicate").Set(float64(stats.Duplicates))
	m.Pairs.WithLabelValues("self").Set(float64(stats.SelfPairs))
	m.Samples.WithLabelValues("dropped").Set(float64(len(stats.Dropped)))
	m.ObserveStep("build", start)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Resolve.
	start = time.Now()
	sink := cluster.NewFileSink(opts.WarningsPath)
	defer sink.Close()
	r, err := cluster.NewResolver(
		cluster.WithSeparator(opts.Params.Separator),
		cluster.WithLogger(logger),
		cluster.WithSink(sink))
	if err != nil {
		return nil, err
	}
	res, err := r.Resolve(ctx, g, prev.Labels()...)
	if err != nil {
		return nil, err
	}
	rep.Components = len(res.Outcomes)
	rep.Merges = sink.Count()
	heights, err := linkage.Heights(g)
	if err != nil {
		return nil, err
	}
	rep.Outcomes = make(map[cluster.Kind]int)
	rep.Linkage = make(map[string]float64, len(res.Outcomes))
	for _, o := range res.Outcomes {
		rep.Outcomes[o.Kind]++
		m.Outcome(o.Kind.String())
		h := heights[o.Members[0]]
		rep.Linkage[o.Members[0]] = h
		m.Linkage.Observe(h)
		logger.Debug("cluster linkage",
			zap.String("cluster", o.Label),
			zap.String("first_sample", o.Members[0]),
			zap.Stringer("kind", o.Kind),
			zap.Int("samples", len(o.Members)),
			zap.Float64("linkage", h))
	}
	m.Components.Set(float64(rep.Components))
	m.Samples.WithLabelValues("clustered").Set(float64(len(res.Inferred)))
	m.ObserveStep("resolve", start)
	if rep.Merges > 0 {
		logger.Warn("cluster merges recorded", zap.Int("merges", rep.Merges), zap.String("path", opts.WarningsPath))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Write.
	start = time.Now()
	logger.Info("creating output")
	rep.Rows = dataset.BuildRows(res.Inferred, prev)
	if err := writeOutput(opts, rep.Rows); err != nil {
		return nil, err
	}
	m.ObserveStep("write", start)
	logger.Info("output written", zap.String("path", outputName(opts.OutputPath)), zap.Int("rows", len(rep.Rows)))

	m.Finish(time.Now())
	if opts.MetricsPath != "" {
		if err := m.WriteTextfile(opts.MetricsPath); err != nil {
			return nil, err
		}
	}

	return rep, nil
}

func writeOutput(opts Options, rows []dataset.Row) error {
	if opts.OutputPath == "" || opts.OutputPath == StdoutPath {
		w := opts.Stdout
		if w == nil {
			w = os.Stdout
		}
		if err := dataset.WriteRows(w, rows); err != nil {
			return fmt.Errorf("pipeline: write output: %w", err)
		}

		return nil
	}

	return dataset.WriteFileAtomic(opts.OutputPath, func(w io.Writer) error {
		return dataset.WriteRows(w, rows)
	})
}

func outputName(path string) string {
	if path == "" || path == StdoutPath {
		return "stdout"
	}

	return path
}
