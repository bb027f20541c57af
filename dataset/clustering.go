// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
)

// Record is one sample's labels from a previous run. Empty means absent.
type Record struct {
	Sample  string
	Curated string
	Final   string
}

// Clustering is the previous-run table indexed by sample.
// The zero value is not usable; use NewClustering.
type Clustering struct {
	records map[string]Record

	// Duplicates lists samples that occurred more than once; the last row won.
	Duplicates []string
}

// NewClustering builds a Clustering from records. Later records replace
// earlier ones for the same sample.
func NewClustering(records ...Record) *Clustering {
	c := &Clustering{records: make(map[string]Record, len(records))}
	for _, r := range records {
		c.put(r)
	}

	return c
}

func (c *Clustering) put(r Record) {
	if _, dup := c.records[r.Sample]; dup {
		c.Duplicates = append(c.Duplicates, r.Sample)
	}
	c.records[r.Sample] = r
}

// Lookup returns the record for sample.
func (c *Clustering) Lookup(sample string) (Record, bool) {
	r, ok := c.records[sample]

	return r, ok
}

// Curated returns the curated label for sample, or "".
func (c *Clustering) Curated(sample string) string { return c.records[sample].Curated }

// Len returns the number of distinct samples.
func (c *Clustering) Len() int { return len(c.records) }

// Samples returns all samples sorted ascending.
func (c *Clustering) Samples() []string {
	out := make([]string, 0, len(c.records))
	for s := range c.records {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Labels returns every distinct non-empty curated or final label, sorted.
// Merged labels are returned as-is.
func (c *Clustering) Labels() []string {
	seen := make(map[string]struct{})
	for _, r := range c.records {
		if r.Curated != "" {
			seen[r.Curated] = struct{}{}
		}
		if r.Final != "" {
			seen[r.Final] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// ReadClustering parses a previous-clustering CSV. The header must contain
// sample, curated_cluster and final_cluster; other columns are ignored.
func ReadClustering(r io.Reader) (*Clustering, error) {
	t, err := ReadTable(r)
	if err != nil {
		return nil, err
	}
	iSample, err := t.Column(ColSample)
	if err != nil {
		return nil, err
	}
	iCurated, err := t.Column(ColCurated)
	if err != nil {
		return nil, err
	}
	iFinal, err := t.Column(ColFinal)
	if err != nil {
		return nil, err
	}

	c := NewClustering()
	for n, row := range t.Rows {
		sample := trimSpace(row[iSample])
		if sample == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptySample, n+2)
		}
		c.put(Record{Sample: sample, Curated: cleanLabel(row[iCurated]), Final: cleanLabel(row[iFinal])})
	}

	return c, nil
}

// LoadClustering reads the previous clustering at path. An empty path or a
// file that does not exist yields an empty Clustering; found reports which.
func LoadClustering(path string) (c *Clustering, found bool, err error) {
	if path == "" {
		return NewClustering(), false, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewClustering(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dataset: open previous clustering: %w", err)
	}
	defer f.Close()

	c, err = ReadClustering(f)
	if err != nil {
		return nil, false, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return c, true, nil
}
