// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvcluster/dataset"
	"github.com/katalvlaran/lvcluster/logging"
)

// ErrCurateArgs is returned when a curation request misses a field.
var ErrCurateArgs = errors.New("pipeline: input, output, sample and cluster are required")

// CurateOptions describe one curation edit.
type CurateOptions struct {
	InputPath  string
	OutputPath string
	Sample     string
	Cluster    string
}

// Curate sets the curated cluster of one sample in a clustering table and
// writes the edited table. A sample matched zero or several times, or one
// that already had a curated cluster, is logged as a warning; the edit is
// written regardless.
func Curate(opts CurateOptions, logger *zap.Logger) (dataset.CurateReport, error) {
	logger = logging.OrNop(logger)
	if opts.InputPath == "" || opts.OutputPath == "" || opts.Sample == "" || opts.Cluster == "" {
		return dataset.CurateReport{}, ErrCurateArgs
	}

	f, err := os.Open(opts.InputPath)
	if err != nil {
		return dataset.CurateReport{}, fmt.Errorf("pipeline: open clustering: %w", err)
	}
	t, err := dataset.ReadTable(f)
	f.Close()
	if err != nil {
		return dataset.CurateReport{}, fmt.Errorf("pipeline: %s: %w", opts.InputPath, err)
	}

	rep, err := dataset.SetCurated(t, opts.Sample, opts.Cluster)
	if err != nil {
		return rep, err
	}
	switch {
	case rep.Matches == 0:
		logger.Warn("sample not found in clustering", zap.String("sample", opts.Sample))
	case rep.Matches > 1:
		logger.Warn("sample found more than once in clustering", zap.String("sample", opts.Sample), zap.Int("matches", rep.Matches))
	}
	if len(rep.Replaced) > 0 {
		logger.Warn("sample already had a curated cluster",
			zap.String("sample", opts.Sample), zap.Strings("replaced", rep.Replaced), zap.String("cluster", opts.Cluster))
	}

	if err := dataset.WriteFileAtomic(opts.OutputPath, func(w io.Writer) error { return t.Write(w) }); err != nil {
		return rep, err
	}
	logger.Info("curated cluster set", zap.String("sample", opts.Sample), zap.String("cluster", opts.Cluster))

	return rep, nil
}
