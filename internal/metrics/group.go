package metrics

import (
	"fmt"
	"strings"
)

// Family is a codec product line. A table column belongs to the family
// iff its label starts with Prefix.
type Family struct {
	Prefix string
	Color  string
}

// Metric names a measured quantity as it appears in row labels
type Metric struct {
	Name  string // Row label fragment, e.g. "decode time"
	Slug  string // File name fragment, e.g. "decodespeed"
	Label string // Human readable name, e.g. "decoding speed"
}

// MetricPair selects the metric plotted on each axis
type MetricPair struct {
	X Metric
	Y Metric
}

var (
	DecodeTime      = Metric{Name: "decode time", Slug: "decodespeed", Label: "decoding speed"}
	EncodeTime      = Metric{Name: "encode time", Slug: "encodespeed", Label: "encoding speed"}
	CompressionRate = Metric{Name: "compression rate", Slug: "compressionrate", Label: "compression rate"}
)

// Series is the data plotted for one family within one category and
// metric pair. X, Y and Labels always have equal length.
type Series struct {
	Family Family
	X      []float64
	Y      []float64
	Labels []string
}

// Len returns the number of points in the series
func (s Series) Len() int {
	return len(s.X)
}

// RowLabel returns the table row label for a metric within a category
func RowLabel(category, metric string) string {
	return fmt.Sprintf("%s mean %s", category, metric)
}

// ValidateFamilies checks that prefixes are non-empty and that no prefix
// is a prefix of another, so every column belongs to at most one family.
func ValidateFamilies(families []Family) error {
	for i, a := range families {
		if a.Prefix == "" {
			return fmt.Errorf("%w: family %d has an empty prefix", ErrInvalidFamilies, i+1)
		}
		for _, b := range families[i+1:] {
			switch {
			case a.Prefix == b.Prefix:
				return fmt.Errorf("%w: duplicate prefix %q", ErrInvalidFamilies, a.Prefix)
			case strings.HasPrefix(b.Prefix, a.Prefix), strings.HasPrefix(a.Prefix, b.Prefix):
				return fmt.Errorf("%w: prefixes %q and %q overlap", ErrInvalidFamilies, a.Prefix, b.Prefix)
			}
		}
	}
	return nil
}

// Group pivots the table into one series per family for the given
// category and metric pair. Families keep their configured order and
// points keep the table's column order. A family without matching columns
// yields an empty series. Missing metric rows are an error.
func Group(t *Table, families []Family, category string, pair MetricPair) ([]Series, error) {
	xRow := RowLabel(category, pair.X.Name)
	yRow := RowLabel(category, pair.Y.Name)
	for _, row := range []string{xRow, yRow} {
		if !t.HasRow(row) {
			return nil, fmt.Errorf("%w: %q", ErrRowNotFound, row)
		}
	}

	series := make([]Series, 0, len(families))
	for _, fam := range families {
		s := Series{Family: fam}
		for _, col := range t.columns {
			if !strings.HasPrefix(col, fam.Prefix) {
				continue
			}

			x, err := t.At(xRow, col)
			if err != nil {
				return nil, err
			}
			y, err := t.At(yRow, col)
			if err != nil {
				return nil, err
			}

			s.X = append(s.X, x)
			s.Y = append(s.Y, y)
			s.Labels = append(s.Labels, col[len(fam.Prefix):])
		}
		series = append(series, s)
	}

	return series, nil
}
