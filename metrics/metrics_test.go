// SPDX-License-Identifier: MIT

package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/metrics"
)

func TestCollector_Counts(t *testing.T) {
	c := metrics.NewCollector()
	c.Samples.WithLabelValues("read").Set(4)
	c.Components.Set(2)
	c.Outcome("new")
	c.Outcome("new")
	c.Outcome("curated_merge")

	assert.Equal(t, 4.0, testutil.ToFloat64(c.Samples.WithLabelValues("read")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Components))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Outcomes.WithLabelValues("new")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Outcomes.WithLabelValues("curated_merge")))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector()
	c.ObserveStep("resolve", time.Now())
	c.Outcome("final_reuse")
	c.Finish(time.Unix(1700000000, 0))

	path := filepath.Join(t.TempDir(), "lvcluster.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `lvcluster_cluster_outcomes_total{kind="final_reuse"} 1`)
	assert.Contains(t, text, `lvcluster_step_duration_seconds_count{step="resolve"} 1`)
	assert.Contains(t, text, "lvcluster_last_run_timestamp_seconds 1.7e+09")
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := metrics.NewCollector(), metrics.NewCollector()
	a.Outcome("new")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Outcomes.WithLabelValues("new")))
	assert.NotSame(t, a.Registry(), b.Registry())
}
