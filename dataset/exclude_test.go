package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/dataset"
)

func TestReadExclusions(t *testing.T) {
	in := "sample\treason\tdate\ns3\tlow_coverage\t2024-01-01 10:00:00\ns9\tnot_NLA\t2024-01-01 10:00:00\n"
	set, err := dataset.ReadExclusions(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"s3", "s9"}, set.Sorted())

	set, err = dataset.ReadExclusions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set)

	_, err = dataset.ReadExclusions(strings.NewReader("id\treason\ns1\tx\n"))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestLoadExclusions(t *testing.T) {
	set, err := dataset.LoadExclusions("")
	require.NoError(t, err)
	assert.Empty(t, set)

	path := filepath.Join(t.TempDir(), "excluded.tsv")
	require.NoError(t, os.WriteFile(path, []byte("sample\treason\ns2\tx\n"), 0o644))
	set, err = dataset.LoadExclusions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"s2"}, set.Sorted())
}

func TestLoadExclusions_MissingFile(t *testing.T) {
	set, err := dataset.LoadExclusions(filepath.Join(t.TempDir(), "typo.tsv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, set)
}

func TestExclude(t *testing.T) {
	in := []dataset.Distance{
		{Sample1: "s1", Sample2: "s2", Value: 1},
		{Sample1: "s2", Sample2: "s3", Value: 1},
		{Sample1: "s3", Sample2: "s4", Value: 1},
	}
	kept, dropped := dataset.Exclude(in, dataset.NewSampleSet("s3"))
	assert.Equal(t, 2, dropped)
	assert.Equal(t, in[:1], kept)
	assert.Len(t, in, 3, "input must not be modified")

	kept, dropped = dataset.Exclude(in, nil)
	assert.Zero(t, dropped)
	assert.Equal(t, in, kept)
}
