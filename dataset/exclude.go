// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// SampleSet is a set of sample identifiers.
type SampleSet map[string]struct{}

// NewSampleSet returns a set holding samples.
func NewSampleSet(samples ...string) SampleSet {
	s := make(SampleSet, len(samples))
	for _, id := range samples {
		s[id] = struct{}{}
	}

	return s
}

// Has reports membership.
func (s SampleSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Sorted returns the members in ascending order.
func (s SampleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// ReadExclusions parses a tab-separated exclusion list whose header holds a
// "sample" column (typically sample, reason, date). An empty input excludes
// nothing.
func ReadExclusions(r io.Reader) (SampleSet, error) {
	t, err := readTable(r, '\t')
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return SampleSet{}, nil
	}
	i, err := t.Column(ColSample)
	if err != nil {
		return nil, err
	}
	set := make(SampleSet, len(t.Rows))
	for _, row := range t.Rows {
		if id := trimSpace(row[i]); id != "" {
			set[id] = struct{}{}
		}
	}

	return set, nil
}

// LoadExclusions reads the exclusion list at path. An empty path excludes
// nothing; a named file that cannot be opened is an error (fs.ErrNotExist
// when it is missing).
func LoadExclusions(path string) (SampleSet, error) {
	if path == "" {
		return SampleSet{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open exclusion list: %w", err)
	}
	defer f.Close()

	set, err := ReadExclusions(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return set, nil
}

// Exclude drops every pair that touches an excluded sample. The input slice
// is not modified.
func Exclude(distances []Distance, excluded SampleSet) (kept []Distance, dropped int) {
	if len(excluded) == 0 {
		return distances, 0
	}
	kept = make([]Distance, 0, len(distances))
	for _, d := range distances {
		if excluded.Has(d.Sample1) || excluded.Has(d.Sample2) {
			dropped++
			continue
		}
		kept = append(kept, d)
	}

	return kept, dropped
}
