// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvcluster/pipeline"
)

const clusteringCSV = "sample,inferred_cluster,curated_cluster,final_cluster\ns1,A001,,A001\ns2,A001,A004,A004\n"

func TestCurate(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "clusters.csv", clusteringCSV)
	out := filepath.Join(dir, "curated.csv")

	rep, err := pipeline.Curate(pipeline.CurateOptions{InputPath: in, OutputPath: out, Sample: "s1", Cluster: "B007"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Matches)
	assert.Empty(t, rep.Replaced)
	assert.Equal(t, []string{
		"sample,inferred_cluster,curated_cluster,final_cluster",
		"s1,A001,B007,A001",
		"s2,A001,A004,A004",
	}, readLines(t, out))
}

func TestCurate_Warnings(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "clusters.csv", clusteringCSV)
	zc, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(zc)

	rep, err := pipeline.Curate(pipeline.CurateOptions{InputPath: in, OutputPath: in, Sample: "s2", Cluster: "B001"}, logger)
	require.NoError(t, err)
	assert.Equal(t, []string{"A004"}, rep.Replaced)
	assert.Equal(t, 1, logs.FilterMessage("sample already had a curated cluster").Len())

	_, err = pipeline.Curate(pipeline.CurateOptions{InputPath: in, OutputPath: in, Sample: "s9", Cluster: "B001"}, logger)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("sample not found in clustering").Len())
}

func TestCurate_Errors(t *testing.T) {
	_, err := pipeline.Curate(pipeline.CurateOptions{Sample: "s1"}, nil)
	assert.ErrorIs(t, err, pipeline.ErrCurateArgs)

	_, err = pipeline.Curate(pipeline.CurateOptions{
		InputPath: filepath.Join(t.TempDir(), "missing.csv"), OutputPath: "x.csv", Sample: "s1", Cluster: "A001",
	}, nil)
	assert.Error(t, err)
}
