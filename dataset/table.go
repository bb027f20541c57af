// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Table is a generic CSV table with a header row. Every row has exactly
// len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable parses a comma-separated table with a header. Short rows are
// padded with empty cells; long rows are an error.
func ReadTable(r io.Reader) (*Table, error) {
	return readTable(r, ',')
}

func readTable(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRow, err)
	}
	for i := range header {
		header[i] = trimSpace(header[i])
	}

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %d cells for %d columns", ErrMalformedRow, line, len(rec), len(header))
		}
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		t.Rows = append(t.Rows, rec)
	}

	return t, nil
}

// Column returns the index of the named header column.
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

// Write serializes the table as CSV.
func (t *Table) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}

	return cw.Error()
}
