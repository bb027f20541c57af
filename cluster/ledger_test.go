// SPDX-License-Identifier: MIT

package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/cluster"
)

func TestLedger_Sequential(t *testing.T) {
	l := cluster.NewLedger("|")
	assert.Empty(t, l.Greatest())

	var got []string
	for i := 0; i < 3; i++ {
		name, next, err := l.Next()
		require.NoError(t, err)
		got = append(got, name)
		l = next
	}
	assert.Equal(t, []string{"A001", "A002", "A003"}, got)
	assert.Equal(t, "A003", l.Greatest())
}

func TestLedger_Rollover(t *testing.T) {
	name, _, err := cluster.NewLedger("|").Observe("A999").Next()
	require.NoError(t, err)
	assert.Equal(t, "B001", name)

	name, _, err = cluster.NewLedger("|").Observe("Y999").Next()
	require.NoError(t, err)
	assert.Equal(t, "Z001", name)
}

func TestLedger_Exhausted(t *testing.T) {
	l := cluster.NewLedger("|").Observe("Z999")
	_, same, err := l.Next()
	assert.ErrorIs(t, err, cluster.ErrNamesExhausted)
	assert.Equal(t, "Z999", same.Greatest())
}

func TestLedger_ObserveSplitsAndIgnoresMalformed(t *testing.T) {
	l := cluster.NewLedger("|").Observe("A005|C002", "B100", "", "custom", "zz99", "D000")
	assert.Equal(t, "C002", l.Greatest())

	name, _, err := l.Next()
	require.NoError(t, err)
	assert.Equal(t, "C003", name)
}

func TestLedger_ValueSemantics(t *testing.T) {
	base := cluster.NewLedger("|").Observe("A010")
	_, advanced, err := base.Next()
	require.NoError(t, err)

	assert.Equal(t, "A010", base.Greatest())
	assert.Equal(t, "A011", advanced.Greatest())
}
