package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePair() MetricPair {
	return MetricPair{X: DecodeTime, Y: CompressionRate}
}

func TestGroup_PrefixScenario(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	families := []Family{{Prefix: "FLAC", Color: "r"}, {Prefix: "TTA", Color: "b"}}
	series, err := Group(table, families, "total", decodePair())
	require.NoError(t, err)
	require.Len(t, series, 2)

	flac := series[0]
	assert.Equal(t, "FLAC", flac.Family.Prefix)
	assert.Equal(t, 2, flac.Len())
	assert.Equal(t, []string{"max", "fast"}, flac.Labels)
	assert.Equal(t, []float64{1, 2}, flac.X)
	assert.Equal(t, []float64{50, 55}, flac.Y)

	tta := series[1]
	assert.Equal(t, []string{"1"}, tta.Labels)
	assert.Equal(t, []float64{3}, tta.X)
	assert.Equal(t, []float64{60}, tta.Y)
}

func TestGroup_EncodePair(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	series, err := Group(table, []Family{{Prefix: "FLAC"}}, "total", MetricPair{X: EncodeTime, Y: CompressionRate})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, series[0].X)
	assert.Equal(t, []float64{50, 55}, series[0].Y)
}

func TestGroup_FamilyWithoutColumns(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	series, err := Group(table, []Family{{Prefix: "LINNE"}, {Prefix: "TTA"}}, "total", decodePair())
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 0, series[0].Len())
	assert.Empty(t, series[0].Labels)
	assert.Equal(t, 1, series[1].Len())
}

func TestGroup_NoFamilies(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	series, err := Group(table, nil, "total", decodePair())
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestGroup_MissingRow(t *testing.T) {
	table, err := ReadCSV(strings.NewReader(summaryCSV))
	require.NoError(t, err)

	_, err = Group(table, []Family{{Prefix: "FLAC"}}, "jazz", decodePair())
	assert.ErrorIs(t, err, ErrRowNotFound)
	assert.Contains(t, err.Error(), "jazz mean decode time")
}

func TestGroup_SeriesLengthMatchesColumns(t *testing.T) {
	input := `,NARU1,NARU2,NARU3,LINNEa,other
classic mean decode time,1,2,3,4,5
classic mean compression rate,6,7,8,9,10
`
	table, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	series, err := Group(table, []Family{{Prefix: "NARU"}, {Prefix: "LINNE"}}, "classic", decodePair())
	require.NoError(t, err)
	for _, s := range series {
		assert.Equal(t, len(s.X), len(s.Y))
		assert.Equal(t, len(s.X), len(s.Labels))
	}
	assert.Equal(t, []string{"1", "2", "3"}, series[0].Labels)
	assert.Equal(t, []string{"a"}, series[1].Labels)
}

func TestValidateFamilies(t *testing.T) {
	for _, tt := range []struct {
		name     string
		prefixes []string
		wantErr  bool
	}{
		{"distinct", []string{"FLAC", "WavPack", "TTA", "Monkey's Audio", "MPEG4-ALS", "NARU", "LINNE"}, false},
		{"empty list", nil, false},
		{"empty prefix", []string{"FLAC", ""}, true},
		{"duplicate", []string{"TTA", "TTA"}, true},
		{"overlap forward", []string{"FLAC", "FLACx"}, true},
		{"overlap backward", []string{"FLACx", "FLAC"}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			families := make([]Family, len(tt.prefixes))
			for i, p := range tt.prefixes {
				families[i] = Family{Prefix: p}
			}
			err := ValidateFamilies(families)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFamilies)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRowLabel(t *testing.T) {
	assert.Equal(t, "classic mean decode time", RowLabel("classic", "decode time"))
	assert.Equal(t, "Total mean compression rate", RowLabel("Total", CompressionRate.Name))
}
