// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/config"
	"github.com/katalvlaran/lvcluster/logging"
	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/katalvlaran/lvcluster/pipeline"
)

// clusterFlags holds the flags of the cluster command.
type clusterFlags struct {
	distances    string
	previous     string
	exclude      string
	output       string
	threshold    float64
	preset       string
	presetsPath  string
	separator    string
	warnings     string
	logPath      string
	verbose      bool
	dropIsolated bool
	metricsFile  string
}

type curateFlags struct {
	input   string
	output  string
	sample  string
	cluster string
	logPath string
	verbose bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lvcluster",
		Short:         "Infer stable cluster names from pairwise sample distances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClusterCmd(), newCurateCmd(), newPresetsCmd())

	return root
}

func newClusterCmd() *cobra.Command {
	var f clusterFlags
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Cluster samples and reconcile with a previous clustering",
		Long: `Links samples whose distance is within the threshold, labels every
connected component (reusing curated and previous names, merging them when
components join) and writes sample,inferred_cluster,curated_cluster,final_cluster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCluster(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.distances, "distances", "", "tab-separated distance table (sample1, sample2, distance)")
	fl.StringVar(&f.previous, "previous-clustering", "", "clustering CSV of the previous run")
	fl.StringVar(&f.exclude, "exclude-list", "", "TSV with a sample column listing samples to exclude")
	fl.StringVarP(&f.output, "output", "o", pipeline.StdoutPath, "output CSV, - for stdout")
	fl.Float64Var(&f.threshold, "threshold", config.DefaultThreshold, "maximum distance linking two samples")
	fl.StringVar(&f.preset, "clustering-preset", "", "preset supplying threshold and max distance")
	fl.StringVar(&f.presetsPath, "presets-path", "", "custom presets YAML (default: built-in presets)")
	fl.StringVar(&f.separator, "merged-cluster-separator", config.DefaultSeparator, "separator for merged cluster names")
	fl.StringVar(&f.warnings, "warnings-path", "", "file collecting merge warnings (default: derived from --output)")
	fl.StringVar(&f.logPath, "log", logging.DefaultPath, "log file")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages")
	fl.BoolVar(&f.dropIsolated, "drop-isolated", false, "drop samples without any distance within threshold instead of naming them")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write run metrics in Prometheus textfile format")
	_ = cmd.MarkFlagRequired("distances")

	return cmd
}

func runCluster(cmd *cobra.Command, f clusterFlags) error {
	base, err := logging.New(logging.Options{Verbose: f.verbose, Path: f.logPath})
	if err != nil {
		return err
	}
	defer func() { _ = base.Sync() }()
	// pipeline.Run adds run_id itself; logger covers entries written here.
	runID := uuid.NewString()
	logger := base.With(zap.String("run_id", runID))

	if f.separator == "" {
		return fmt.Errorf("%w: merged-cluster-separator must not be empty", config.ErrInvalidParams)
	}
	presets, err := config.LoadPresets(f.presetsPath)
	if err != nil {
		return err
	}
	o := config.Overrides{Preset: f.preset, Separator: f.separator}
	if cmd.Flags().Changed("threshold") {
		o.Threshold = &f.threshold
	}
	params, notices, err := config.Resolve(presets, o)
	if err != nil {
		return err
	}
	for _, n := range notices {
		logger.Warn(n)
	}

	isolated := cluster.IsolatedSingleton
	if f.dropIsolated {
		isolated = cluster.IsolatedDrop
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := pipeline.Run(ctx, pipeline.Options{
		DistancesPath: f.distances,
		PreviousPath:  f.previous,
		ExcludePath:   f.exclude,
		OutputPath:    f.output,
		WarningsPath:  f.warnings,
		MetricsPath:   f.metricsFile,
		Params:        params,
		Isolated:      isolated,
		RunID:         runID,
		Stdout:        cmd.OutOrStdout(),
	}, base, metrics.NewCollector())
	if err != nil {
		logger.Error("clustering failed", zap.Error(err))
		return err
	}
	if rep.Merges > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d cluster merge(s) recorded in %s\n", rep.Merges, rep.WarningsPath)
	}

	return nil
}

func newCurateCmd() *cobra.Command {
	var f curateFlags
	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Set the curated cluster of one sample in a clustering CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(logging.Options{Verbose: f.verbose, Path: f.logPath})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			_, err = pipeline.Curate(pipeline.CurateOptions{
				InputPath:  f.input,
				OutputPath: f.output,
				Sample:     f.sample,
				Cluster:    f.cluster,
			}, logger)

			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.input, "input", "", "clustering CSV to edit")
	fl.StringVar(&f.output, "output", "", "where to write the edited CSV (may equal --input)")
	fl.StringVar(&f.sample, "sample", "", "sample to curate")
	fl.StringVar(&f.cluster, "cluster", "", "curated cluster to assign")
	fl.StringVar(&f.logPath, "log", "", "log file (default: stderr only)")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug messages")
	for _, name := range []string{"input", "output", "sample", "cluster"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newPresetsCmd() *cobra.Command {
	var presetsPath string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List clustering presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := config.LoadPresets(presetsPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range ps.Names() {
				p := ps[name]
				fmt.Fprintf(out, "%s\tcluster_threshold=%s\tmax_distance=%s\tclustering_type=%s\n",
					name, optional(p.ClusterThreshold), optional(p.MaxDistance), p.ClusteringType)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&presetsPath, "presets-path", "", "custom presets YAML (default: built-in presets)")

	return cmd
}

// optional formats an unset preset value as "-".
func optional(v *float64) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprintf("%g", *v)
}
