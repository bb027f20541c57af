// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/config"
	"github.com/katalvlaran/lvcluster/metrics"
	"github.com/katalvlaran/lvcluster/pipeline"
)

const chainTSV = "s1\ts2\t5\ns2\ts3\t5\ns3\ts4\t50\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func params() config.Params {
	return config.Params{Threshold: 10, Separator: "|"}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestWarningsPath(t *testing.T) {
	assert.Equal(t, "WARNINGS.txt", pipeline.WarningsPath(""))
	assert.Equal(t, "WARNINGS.txt", pipeline.WarningsPath("-"))
	assert.Equal(t, "out/clusters.WARNINGS.txt", pipeline.WarningsPath("out/clusters.csv"))
	assert.Equal(t, "clusters.WARNINGS.txt", pipeline.WarningsPath("clusters"))
}

func TestRun_FirstRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "clusters.csv")
	opts := pipeline.Options{
		DistancesPath: writeFile(t, dir, "d.tsv", chainTSV),
		PreviousPath:  filepath.Join(dir, "missing.csv"),
		OutputPath:    out,
		Params:        params(),
	}

	rep, err := pipeline.Run(context.Background(), opts, nil, nil)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 2, rep.Components)
	assert.Equal(t, 2, rep.Outcomes[cluster.KindNew])
	assert.Equal(t, map[string]float64{"s1": 5, "s4": 0}, rep.Linkage)
	assert.Equal(t, []string{
		"sample,inferred_cluster,curated_cluster,final_cluster",
		"s1,A001,,A001",
		"s2,A001,,A001",
		"s3,A001,,A001",
		"s4,A002,,A002",
	}, readLines(t, out))

	_, err = os.Stat(rep.WarningsPath)
	assert.True(t, os.IsNotExist(err), "no merge, no warnings file")
}

func TestRun_DropIsolated(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	opts := pipeline.Options{
		DistancesPath: writeFile(t, dir, "d.tsv", chainTSV),
		OutputPath:    pipeline.StdoutPath,
		WarningsPath:  filepath.Join(dir, "W.txt"),
		Params:        params(),
		Isolated:      cluster.IsolatedDrop,
		Stdout:        &stdout,
	}

	rep, err := pipeline.Run(context.Background(), opts, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"s4"}, rep.Build.Dropped)
	assert.Equal(t,
		"sample,inferred_cluster,curated_cluster,final_cluster\ns1,A001,,A001\ns2,A001,,A001\ns3,A001,,A001\n",
		stdout.String())
}

func TestRun_PreviousClusteringAndMerges(t *testing.T) {
	dir := t.TempDir()
	prev := writeFile(t, dir, "prev.csv", strings.Join([]string{
		"sample,inferred_cluster,curated_cluster,final_cluster",
		"s1,A001,A001,A001",
		"s3,A002,A002,A002",
		"s5,A003,,A003",
		"s9,A004,NA,A004",
	}, "\n")+"\n")
	excl := writeFile(t, dir, "excl.tsv", "sample\treason\ns6\tcontaminated\n")
	dist := writeFile(t, dir, "d.tsv", chainTSV+"s5\ts7\t2\ns6\ts7\t1\n")
	out := filepath.Join(dir, "clusters.csv")
	metricsPath := filepath.Join(dir, "lvcluster.prom")

	zc, logs := observer.New(zapcore.DebugLevel)
	m := metrics.NewCollector()
	rep, err := pipeline.Run(context.Background(), pipeline.Options{
		DistancesPath: dist,
		PreviousPath:  prev,
		ExcludePath:   excl,
		OutputPath:    out,
		MetricsPath:   metricsPath,
		Params:        params(),
		RunID:         "run-42",
	}, zap.New(zc), m)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"sample,inferred_cluster,curated_cluster,final_cluster",
		"s1,A001|A002,A001,A001",
		"s2,A001|A002,,A001|A002",
		"s3,A001|A002,A002,A002",
		"s4,A005,,A005",
		"s5,A003,,A003",
		"s7,A003,,A003",
	}, readLines(t, out))

	assert.Equal(t, 1, rep.Merges)
	assert.Equal(t, 1, rep.Excluded)
	assert.Equal(t,
		[]string{"WARNING: Curated clusters A001, A002 have merged into A001|A002!"},
		readLines(t, pipeline.WarningsPath(out)))

	assert.Equal(t, 1, logs.FilterMessage("curated clusters have merged").Len())
	assert.Equal(t, 1, logs.FilterMessage("reading previous clustering").Len())
	require.NotZero(t, logs.Len())
	for _, e := range logs.All() {
		assert.Equal(t, "run-42", e.ContextMap()["run_id"], e.Message)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Outcomes.WithLabelValues("curated_merge")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Components))
	assert.FileExists(t, metricsPath)
}

func TestRun_LinkagePerComponentWithSharedLabel(t *testing.T) {
	// Two components both carry final label A001 from the previous run.
	dir := t.TempDir()
	prev := writeFile(t, dir, "prev.csv", "sample,curated_cluster,final_cluster\ns1,,A001\ns3,,A001\n")
	rep, err := pipeline.Run(context.Background(), pipeline.Options{
		DistancesPath: writeFile(t, dir, "d.tsv", "s1\ts2\t4\ns3\ts4\t7\ns2\ts3\t90\n"),
		PreviousPath:  prev,
		Params:        params(),
		Stdout:        &bytes.Buffer{},
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Components)
	assert.Equal(t, map[string]float64{"s1": 4, "s3": 7}, rep.Linkage)
}

func TestRun_GeneratedRunIDIsLogged(t *testing.T) {
	dir := t.TempDir()
	zc, logs := observer.New(zapcore.InfoLevel)
	rep, err := pipeline.Run(context.Background(), pipeline.Options{
		DistancesPath: writeFile(t, dir, "d.tsv", chainTSV),
		Params:        params(),
		Stdout:        &bytes.Buffer{},
	}, zap.New(zc), nil)
	require.NoError(t, err)

	require.NotEmpty(t, rep.RunID)
	for _, e := range logs.All() {
		assert.Equal(t, rep.RunID, e.ContextMap()["run_id"], e.Message)
	}
}

func TestRun_WarningsAppendAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	prev := writeFile(t, dir, "prev.csv", "sample,curated_cluster,final_cluster\ns1,,B001\ns2,,B002\n")
	opts := pipeline.Options{
		DistancesPath: writeFile(t, dir, "d.tsv", "s1\ts2\t1\n"),
		PreviousPath:  prev,
		OutputPath:    filepath.Join(dir, "out.csv"),
		Params:        params(),
	}

	for i := 0; i < 2; i++ {
		_, err := pipeline.Run(context.Background(), opts, nil, nil)
		require.NoError(t, err)
	}
	assert.Len(t, readLines(t, filepath.Join(dir, "out.WARNINGS.txt")), 2)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	dist := writeFile(t, dir, "d.tsv", chainTSV)

	_, err := pipeline.Run(context.Background(), pipeline.Options{Params: params()}, nil, nil)
	assert.ErrorIs(t, err, pipeline.ErrNoDistances)

	_, err = pipeline.Run(context.Background(), pipeline.Options{DistancesPath: dist}, nil, nil)
	assert.ErrorIs(t, err, config.ErrInvalidParams)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Run(ctx, pipeline.Options{DistancesPath: dist, Params: params(), Stdout: &bytes.Buffer{}}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = pipeline.Run(context.Background(), pipeline.Options{
		DistancesPath: dist, ExcludePath: filepath.Join(dir, "typo.tsv"), Params: params(), Stdout: &bytes.Buffer{},
	}, nil, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	prev := writeFile(t, dir, "prev.csv", "sample,curated_cluster,final_cluster\nx,Z999,\n")
	_, err = pipeline.Run(context.Background(), pipeline.Options{
		DistancesPath: dist, PreviousPath: prev, Params: params(), Stdout: &bytes.Buffer{},
	}, nil, nil)
	assert.ErrorIs(t, err, cluster.ErrNamesExhausted)
}
