// SPDX-License-Identifier: MIT

package dataset

// CurateReport describes what SetCurated changed.
type CurateReport struct {
	// Matches is the number of rows whose sample equals the target.
	Matches int

	// Replaced holds the non-empty curated labels that were overwritten.
	Replaced []string
}

// SetCurated assigns cluster as the curated label of every row whose sample
// matches. All other columns are preserved. The caller decides whether
// Matches != 1 or a non-empty Replaced deserves a warning.
func SetCurated(t *Table, sample, cluster string) (CurateReport, error) {
	var rep CurateReport
	iSample, err := t.Column(ColSample)
	if err != nil {
		return rep, err
	}
	iCurated, err := t.Column(ColCurated)
	if err != nil {
		return rep, err
	}

	for _, row := range t.Rows {
		if trimSpace(row[iSample]) != sample {
			continue
		}
		rep.Matches++
		if prev := cleanLabel(row[iCurated]); prev != "" {
			rep.Replaced = append(rep.Replaced, prev)
		}
		row[iCurated] = cluster
	}

	return rep, nil
}
