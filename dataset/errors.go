// SPDX-License-Identifier: MIT

package dataset

import "errors"

// Sentinel errors for dataset parsing.
var (
	// ErrMalformedRow indicates a row that cannot be parsed.
	ErrMalformedRow = errors.New("dataset: malformed row")

	// ErrMissingColumn indicates a required header column is absent.
	ErrMissingColumn = errors.New("dataset: missing column")

	// ErrEmptySample indicates a row whose sample identifier is empty.
	ErrEmptySample = errors.New("dataset: empty sample identifier")
)

// Column names shared by the clustering tables.
const (
	ColSample   = "sample"
	ColInferred = "inferred_cluster"
	ColCurated  = "curated_cluster"
	ColFinal    = "final_cluster"
)

// missingTokens are the cell spellings read as "no value".
var missingTokens = map[string]struct{}{
	"": {}, "nan": {}, "NaN": {}, "-nan": {}, "-NaN": {}, "NA": {}, "N/A": {}, "n/a": {},
	"<NA>": {}, "#N/A": {}, "#NA": {}, "NULL": {}, "null": {}, "None": {},
}

// cleanLabel trims a label cell and maps missing-value spellings to "".
func cleanLabel(s string) string {
	s = trimSpace(s)
	if _, ok := missingTokens[s]; ok {
		return ""
	}

	return s
}
