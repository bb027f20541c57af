// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Row is one line of the clustering output.
type Row struct {
	Sample   string
	Inferred string
	Curated  string
	Final    string
}

// OutputHeader is the header of the clustering output.
var OutputHeader = []string{ColSample, ColInferred, ColCurated, ColFinal}

// BuildRows joins inferred labels with the curated column of prev.
// Final is Curated when present, Inferred otherwise. Samples without a
// previous record get an empty Curated. Rows are sorted by sample.
func BuildRows(inferred map[string]string, prev *Clustering) []Row {
	rows := make([]Row, 0, len(inferred))
	for sample, label := range inferred {
		row := Row{Sample: sample, Inferred: label, Final: label}
		if prev != nil {
			if c := prev.Curated(sample); c != "" {
				row.Curated = c
				row.Final = c
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Sample < rows[j].Sample })

	return rows
}

// WriteRows serializes rows as CSV with OutputHeader.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OutputHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Sample, r.Inferred, r.Curated, r.Final}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteFileAtomic writes through fn into a temporary file next to path and
// renames it into place, so a failed write never leaves a partial file.
func WriteFileAtomic(path string, fn func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("dataset: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := fn(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("dataset: close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("dataset: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("dataset: rename into %s: %w", path, err)
	}

	return nil
}
