package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Table is a labeled matrix of metric values.
// Rows are metric labels such as "classic mean decode time", columns are
// codec variants such as "FLACmax".
type Table struct {
	rows    []string
	columns []string
	rowIdx  map[string]int
	colIdx  map[string]int
	data    *mat.Dense // nil when the table has no rows or no columns
}

// NewTable builds a table from row-major values. values must have one
// slice per row, each with one value per column.
func NewTable(rows, columns []string, values [][]float64) (*Table, error) {
	if len(values) != len(rows) {
		return nil, fmt.Errorf("%w: %d rows labeled, %d rows of values", ErrMalformedTable, len(rows), len(values))
	}

	rowIdx, err := indexLabels("row", rows)
	if err != nil {
		return nil, err
	}
	colIdx, err := indexLabels("column", columns)
	if err != nil {
		return nil, err
	}

	t := &Table{
		rows:    append([]string(nil), rows...),
		columns: append([]string(nil), columns...),
		rowIdx:  rowIdx,
		colIdx:  colIdx,
	}

	// mat.Dense does not allow zero dimensions
	if len(rows) == 0 || len(columns) == 0 {
		return t, nil
	}

	flat := make([]float64, 0, len(rows)*len(columns))
	for i, v := range values {
		if len(v) != len(columns) {
			return nil, fmt.Errorf("%w: row %q has %d values, want %d",
				ErrMalformedTable, rows[i], len(v), len(columns))
		}
		flat = append(flat, v...)
	}
	t.data = mat.NewDense(len(rows), len(columns), flat)

	return t, nil
}

func indexLabels(kind string, labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, ok := idx[l]; ok {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateLabel, kind, l)
		}
		idx[l] = i
	}
	return idx, nil
}

// LoadCSV reads a metrics table from a CSV file
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metrics file %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read metrics file %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a CSV table whose first column holds the row labels and
// whose header row holds the column labels. The header's first cell names
// the index and is ignored. Empty cells read as NaN.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedTable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: empty header row", ErrMalformedTable)
	}
	columns := header[1:]

	var rows []string
	var values [][]float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
		}

		row := make([]float64, len(columns))
		for j, cell := range record[1:] {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: row %q column %q: %v", ErrMalformedTable, record[0], columns[j], err)
			}
			row[j] = v
		}
		rows = append(rows, record[0])
		values = append(values, row)
	}

	return NewTable(rows, columns, values)
}

func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

// Rows returns the row labels in table order
func (t *Table) Rows() []string {
	return append([]string(nil), t.rows...)
}

// Columns returns the column labels in table order
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Dims returns the number of rows and columns
func (t *Table) Dims() (int, int) {
	return len(t.rows), len(t.columns)
}

// HasRow reports whether the table has a row with the given label
func (t *Table) HasRow(row string) bool {
	_, ok := t.rowIdx[row]
	return ok
}

// At returns the value at the given row and column labels
func (t *Table) At(row, column string) (float64, error) {
	i, ok := t.rowIdx[row]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrRowNotFound, row)
	}
	j, ok := t.colIdx[column]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return t.data.At(i, j), nil
}

// Row returns a copy of the named row, one value per column
func (t *Table) Row(row string) ([]float64, error) {
	i, ok := t.rowIdx[row]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRowNotFound, row)
	}
	out := make([]float64, len(t.columns))
	if t.data != nil {
		mat.Row(out, i, t.data)
	}
	return out, nil
}
