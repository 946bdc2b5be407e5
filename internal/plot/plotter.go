package plot

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/gommon/log"
	"github.com/shidetake/codeceval/internal/metrics"
)

// Plotter renders comparison figures from a metrics table
type Plotter struct {
	cfg  Config
	sink Sink
}

// NewPlotter validates cfg and returns a plotter emitting into sink
func NewPlotter(cfg Config, sink Sink) (*Plotter, error) {
	if err := metrics.ValidateFamilies(cfg.Families); err != nil {
		return nil, err
	}
	for i, fam := range cfg.Families {
		if _, err := familyColor(cfg, i, fam); err != nil {
			return nil, err
		}
	}
	if sink == nil {
		return nil, fmt.Errorf("plotter requires a sink")
	}
	return &Plotter{cfg: cfg, sink: sink}, nil
}

// Figures groups the table into one figure per metric pair and category,
// in that order. Missing metric rows fail the whole run.
func (p *Plotter) Figures(table *metrics.Table) ([]Figure, error) {
	var figures []Figure
	for _, pair := range p.cfg.Pairs {
		for _, category := range p.cfg.categories() {
			series, err := metrics.Group(table, p.cfg.Families, category, pair)
			if err != nil {
				return nil, fmt.Errorf("failed to group %s: %w", category, err)
			}
			figures = append(figures, p.figure(category, pair, series))
		}
	}
	return figures, nil
}

// Run builds and emits every figure, returning their names
func (p *Plotter) Run(table *metrics.Table) ([]string, error) {
	figures, err := p.Figures(table)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(figures))
	for _, fig := range figures {
		// Each figure gets a fresh chart
		c, err := BuildChart(p.cfg, fig)
		if err != nil {
			return names, fmt.Errorf("failed to build %s: %w", fig.Name, err)
		}
		if err := p.sink.Emit(fig.Name, c); err != nil {
			return names, err
		}
		log.Debugf("emitted %s (%d families)", fig.Name, len(fig.Series))
		names = append(names, fig.Name)
	}
	return names, nil
}

func (p *Plotter) figure(category string, pair metrics.MetricPair, series []metrics.Series) Figure {
	title := fmt.Sprintf("%s v.s. %s comparison", capitalize(pair.X.Label), pair.Y.Label)

	if p.cfg.Mode == ModeTotal {
		return Figure{
			Name:   FigureName(pair, ""),
			Title:  title,
			XName:  "Total average " + pair.X.Label + " (%)",
			YName:  "Total average " + pair.Y.Label + " (%)",
			Series: series,
		}
	}

	return Figure{
		Name:   FigureName(pair, category),
		Title:  title + " for " + category,
		XName:  "Average " + pair.X.Label + " (%)",
		YName:  "Average " + pair.Y.Label + " (%)",
		Series: series,
	}
}

// FigureName returns the output name of a figure. An empty category names
// the total-only figure.
func FigureName(pair metrics.MetricPair, category string) string {
	base := pair.X.Slug + "_vs_" + pair.Y.Slug
	if category == "" {
		return "codec_comparison_" + base
	}
	return base + "_" + strings.ReplaceAll(category, " ", "_")
}

func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[n:]
}
