package plot

import (
	"errors"
	"strings"
	"testing"

	"github.com/shidetake/codeceval/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

const perCategoryCSV = `,FLACmax,FLACfast,TTA1,WavPackhigh
classic mean decode time,1,2,3,4
classic mean encode time,5,6,7,8
classic mean compression rate,50,55,60,52
jazz mean decode time,1.5,2.5,3.5,4.5
jazz mean encode time,5.5,6.5,7.5,8.5
jazz mean compression rate,51,56,61,53
`

const totalCSV = `,FLACmax,TTA1
Total mean decode time,1,3
Total mean encode time,2,4
Total mean compression rate,50,60
`

type recordingSink struct {
	names  []string
	charts []chart.Chart
	err    error
}

func (s *recordingSink) Emit(name string, c chart.Chart) error {
	if s.err != nil {
		return s.err
	}
	s.names = append(s.names, name)
	s.charts = append(s.charts, c)
	return nil
}

func readTable(t *testing.T, input string) *metrics.Table {
	t.Helper()
	table, err := metrics.ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	return table
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Families = []metrics.Family{{Prefix: "FLAC"}, {Prefix: "TTA"}, {Prefix: "LINNE"}}
	cfg.Categories = []string{"classic", "jazz"}
	return cfg
}

func TestPlotter_RunPerCategory(t *testing.T) {
	sink := &recordingSink{}
	p, err := NewPlotter(testConfig(), sink)
	require.NoError(t, err)

	names, err := p.Run(readTable(t, perCategoryCSV))
	require.NoError(t, err)

	want := []string{
		"decodespeed_vs_compressionrate_classic",
		"decodespeed_vs_compressionrate_jazz",
		"encodespeed_vs_compressionrate_classic",
		"encodespeed_vs_compressionrate_jazz",
	}
	assert.Equal(t, want, names)
	assert.Equal(t, want, sink.names)
	assert.Equal(t, "Decoding speed v.s. compression rate comparison for classic", sink.charts[0].Title)
	assert.Equal(t, "Encoding speed v.s. compression rate comparison for jazz", sink.charts[3].Title)
	assert.Equal(t, "Average decoding speed (%)", sink.charts[0].XAxis.Name)
	assert.Equal(t, "Average compression rate (%)", sink.charts[0].YAxis.Name)
}

func TestPlotter_Figures(t *testing.T) {
	p, err := NewPlotter(testConfig(), &recordingSink{})
	require.NoError(t, err)

	figures, err := p.Figures(readTable(t, perCategoryCSV))
	require.NoError(t, err)
	require.Len(t, figures, 4)

	fig := figures[1]
	require.Len(t, fig.Series, 3)
	assert.Equal(t, []string{"max", "fast"}, fig.Series[0].Labels)
	assert.Equal(t, []float64{1.5, 2.5}, fig.Series[0].X)
	assert.Equal(t, []float64{51, 56}, fig.Series[0].Y)
	assert.Equal(t, []string{"1"}, fig.Series[1].Labels)
	assert.Equal(t, 0, fig.Series[2].Len())
}

func TestPlotter_RunTotal(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = ModeTotal
	sink := &recordingSink{}
	p, err := NewPlotter(cfg, sink)
	require.NoError(t, err)

	names, err := p.Run(readTable(t, totalCSV))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"codec_comparison_decodespeed_vs_compressionrate",
		"codec_comparison_encodespeed_vs_compressionrate",
	}, names)
	assert.Equal(t, "Decoding speed v.s. compression rate comparison", sink.charts[0].Title)
	assert.Equal(t, "Total average decoding speed (%)", sink.charts[0].XAxis.Name)
}

func TestPlotter_MissingRowIsFatal(t *testing.T) {
	cfg := testConfig()
	cfg.Categories = []string{"classic", "popular"}
	sink := &recordingSink{}
	p, err := NewPlotter(cfg, sink)
	require.NoError(t, err)

	_, err = p.Run(readTable(t, perCategoryCSV))
	assert.ErrorIs(t, err, metrics.ErrRowNotFound)
	assert.Empty(t, sink.names)
}

func TestPlotter_SinkError(t *testing.T) {
	boom := errors.New("disk full")
	p, err := NewPlotter(testConfig(), &recordingSink{err: boom})
	require.NoError(t, err)

	_, err = p.Run(readTable(t, perCategoryCSV))
	assert.ErrorIs(t, err, boom)
}

func TestPlotter_EmptyConfiguration(t *testing.T) {
	cfg := testConfig()
	cfg.Families = nil
	cfg.Categories = nil
	sink := &recordingSink{}
	p, err := NewPlotter(cfg, sink)
	require.NoError(t, err)

	names, err := p.Run(readTable(t, perCategoryCSV))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewPlotter_Validation(t *testing.T) {
	cfg := testConfig()
	cfg.Families = []metrics.Family{{Prefix: "FLAC"}, {Prefix: "FLACx"}}
	_, err := NewPlotter(cfg, &recordingSink{})
	assert.ErrorIs(t, err, metrics.ErrInvalidFamilies)

	cfg = testConfig()
	cfg.Families[0].Color = "mauve"
	_, err = NewPlotter(cfg, &recordingSink{})
	assert.ErrorIs(t, err, ErrUnknownColor)

	_, err = NewPlotter(testConfig(), nil)
	assert.Error(t, err)
}

func TestFigureName(t *testing.T) {
	pair := metrics.MetricPair{X: metrics.EncodeTime, Y: metrics.CompressionRate}
	assert.Equal(t, "encodespeed_vs_compressionrate_classic", FigureName(pair, "classic"))
	assert.Equal(t, "encodespeed_vs_compressionrate_hi_res", FigureName(pair, "hi res"))
	assert.Equal(t, "codec_comparison_encodespeed_vs_compressionrate", FigureName(pair, ""))
}
