// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Distance is one unordered pair of samples and their genetic distance.
type Distance struct {
	Sample1 string
	Sample2 string
	Value   float64
}

// ReadDistances parses a headerless, tab-separated distance table with
// exactly three columns. Blank lines are skipped.
//
// Errors:
//   - ErrMalformedRow (wrapped with the line number) for a wrong column count,
//     a non-numeric, NaN or negative distance.
//   - ErrEmptySample for an empty sample identifier.
func ReadDistances(r io.Reader) ([]Distance, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var out []Distance
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 columns, got %d", ErrMalformedRow, line, len(rec))
		}
		s1, s2 := trimSpace(rec[0]), trimSpace(rec[1])
		if s1 == "" || s2 == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptySample, line)
		}
		v, err := strconv.ParseFloat(trimSpace(rec[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: distance %q is not a number", ErrMalformedRow, line, rec[2])
		}
		if v < 0 || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: line %d: distance %q must be non-negative", ErrMalformedRow, line, rec[2])
		}
		out = append(out, Distance{Sample1: s1, Sample2: s2, Value: v})
	}

	return out, nil
}

// LoadDistances reads the distance table at path.
// A missing file is an error.
func LoadDistances(path string) ([]Distance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open distances: %w", err)
	}
	defer f.Close()

	d, err := ReadDistances(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return d, nil
}

// Samples returns the distinct samples named in distances, sorted ascending.
func Samples(distances []Distance) []string {
	seen := make(map[string]struct{}, len(distances))
	for _, d := range distances {
		seen[d.Sample1] = struct{}{}
		seen[d.Sample2] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

func trimSpace(s string) string { return strings.TrimSpace(s) }
