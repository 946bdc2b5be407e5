package plot

import (
	"fmt"
	"math"

	"github.com/shidetake/codeceval/internal/metrics"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"
)

// rangePadding is the fraction of the data span added on each side of an axis
const rangePadding = 0.05

// Figure is one comparison chart: every family's series for a single
// category and metric pair.
type Figure struct {
	Name   string // Output name without extension
	Title  string
	XName  string
	YName  string
	Series []metrics.Series // One per configured family, in family order
}

// scatterStyle renders points only (no connecting line)
func scatterStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    6,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
		DotWidth:    4,
		DotColor:    col,
	}
}

// BuildChart lays out a figure as a go-chart chart. Points with a NaN or
// infinite coordinate are dropped. Families without points draw nothing
// but keep their legend entry.
func BuildChart(cfg Config, fig Figure) (chart.Chart, error) {
	plotted := make([]metrics.Series, len(fig.Series))
	var xs, ys []float64
	for i, s := range fig.Series {
		plotted[i] = finitePoints(s)
		xs = append(xs, plotted[i].X...)
		ys = append(ys, plotted[i].Y...)
	}
	xr := axisRange(xs)
	yr := axisRange(ys)

	var lines, overlays, legend []chart.Series
	var points []Point
	var texts []string
	var labelStyles []chart.Style

	for i, s := range plotted {
		col, err := familyColor(cfg, i, s.Family)
		if err != nil {
			return chart.Chart{}, err
		}

		line := chart.ContinuousSeries{
			Name:    s.Family.Prefix,
			Style:   lineStyle(col),
			XValues: s.X,
			YValues: s.Y,
		}
		legend = append(legend, line)
		if s.Len() == 0 {
			continue
		}

		lines = append(lines, line)
		if cfg.Scatter {
			overlays = append(overlays, chart.ContinuousSeries{
				Name:    s.Family.Prefix,
				Style:   scatterStyle(col),
				XValues: s.X,
				YValues: s.Y,
			})
		}

		for j := range s.X {
			points = append(points, Point{X: xr.normalize(s.X[j]), Y: yr.normalize(s.Y[j])})
			texts = append(texts, s.Labels[j])
			labelStyles = append(labelStyles, chart.Style{
				FontSize:    cfg.LabelFontSize,
				StrokeColor: col,
				FillColor:   drawing.ColorWhite,
			})
		}
	}

	// go-chart refuses to render without any series
	if len(lines) == 0 {
		lines = append(lines, chart.ContinuousSeries{
			Style:   chart.Style{Hidden: true},
			XValues: []float64{xr.min, xr.max},
			YValues: []float64{yr.min, yr.max},
		})
	}

	series := append(append([]chart.Series(nil), lines...), overlays...)

	if len(points) > 0 {
		placed := points
		if cfg.Placer != nil {
			placed = cfg.Placer.Place(points, texts)
		}
		annotations := make([]chart.Value2, len(placed))
		for i, p := range placed {
			annotations[i] = chart.Value2{
				Style:  labelStyles[i],
				Label:  texts[i],
				XValue: xr.denormalize(p.X),
				YValue: yr.denormalize(p.Y),
			}
		}
		series = append(series, chart.AnnotationSeries{Annotations: annotations})
	}

	grid := chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1}
	c := chart.Chart{
		Title:      fig.Title,
		TitleStyle: chart.Style{FontSize: cfg.FontSize + 2},
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           fig.XName,
			NameStyle:      chart.Style{FontSize: cfg.FontSize},
			Range:          &chart.ContinuousRange{Min: xr.min, Max: xr.max},
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Name:           fig.YName,
			NameStyle:      chart.Style{FontSize: cfg.FontSize},
			Range:          &chart.ContinuousRange{Min: yr.min, Max: yr.max},
			GridMajorStyle: grid,
		},
		Series: series,
	}

	// The legend lists each family once, even with the scatter overlay.
	// It only reads names and styles, so empty families can appear in it.
	legendSource := c
	legendSource.Series = legend
	c.Elements = []chart.Renderable{chart.Legend(&legendSource)}

	return c, nil
}

// finitePoints returns s without the points that cannot be drawn
func finitePoints(s metrics.Series) metrics.Series {
	out := metrics.Series{Family: s.Family}
	for i := range s.X {
		if !isFinite(s.X[i]) || !isFinite(s.Y[i]) {
			continue
		}
		out.X = append(out.X, s.X[i])
		out.Y = append(out.Y, s.Y[i])
		out.Labels = append(out.Labels, s.Labels[i])
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func familyColor(cfg Config, i int, fam metrics.Family) (drawing.Color, error) {
	name := fam.Color
	if name == "" {
		name = Palette[i%len(Palette)]
	}
	col, err := ParseColor(name)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("family %q: %w", fam.Prefix, err)
	}
	return col, nil
}

type span struct {
	min, max float64
}

func (s span) normalize(v float64) float64 {
	return (v - s.min) / (s.max - s.min)
}

func (s span) denormalize(v float64) float64 {
	return s.min + v*(s.max-s.min)
}

// axisRange returns a padded, non-degenerate range covering the finite values
func axisRange(values []float64) span {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return span{min: 0, max: 1}
	}

	lo, hi := floats.Min(finite), floats.Max(finite)
	pad := (hi - lo) * rangePadding
	if pad == 0 {
		pad = math.Max(math.Abs(lo)*rangePadding, 1)
	}
	return span{min: lo - pad, max: hi + pad}
}
