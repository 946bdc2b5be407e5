package plot

import (
	"fmt"
	"strings"

	"github.com/shidetake/codeceval/internal/metrics"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Mode selects how categories map to figures
type Mode int

const (
	// ModePerCategory draws one figure per category and metric pair
	ModePerCategory Mode = iota
	// ModeTotal draws one figure per metric pair for the Total category
	ModeTotal
)

// TotalCategory is the synthetic category used by ModeTotal
const TotalCategory = "Total"

// Config holds everything needed to render a set of comparison figures
type Config struct {
	Mode       Mode
	Families   []metrics.Family // Draw order; colors default to Palette
	Categories []string         // Ignored in ModeTotal
	Pairs      []metrics.MetricPair

	Scatter bool // Overlay dot markers in each family's color

	Width         int
	Height        int
	FontSize      float64
	LabelFontSize float64

	Placer LabelPlacer // nil disables label decluttering
}

var (
	// DefaultFamilies are the codec families compared in the evaluation
	DefaultFamilies = []string{"FLAC", "WavPack", "TTA", "Monkey's Audio", "MPEG4-ALS", "NARU", "LINNE"}

	// DefaultCategories are the signal categories of the evaluation corpus
	DefaultCategories = []string{"classic", "genre", "jazz", "popular", "right", "total"}

	// DefaultPairs plots decoding then encoding speed against compression rate
	DefaultPairs = []metrics.MetricPair{
		{X: metrics.DecodeTime, Y: metrics.CompressionRate},
		{X: metrics.EncodeTime, Y: metrics.CompressionRate},
	}

	// Palette assigns colors to families without an explicit color
	Palette = []string{"r", "g", "b", "c", "m", "y", "k", "w"}
)

// DefaultConfig returns the per-category configuration
func DefaultConfig() Config {
	families := make([]metrics.Family, len(DefaultFamilies))
	for i, name := range DefaultFamilies {
		families[i] = metrics.Family{Prefix: name}
	}

	return Config{
		Mode:          ModePerCategory,
		Families:      families,
		Categories:    append([]string(nil), DefaultCategories...),
		Pairs:         append([]metrics.MetricPair(nil), DefaultPairs...),
		Width:         1024,
		Height:        768,
		FontSize:      12,
		LabelFontSize: 10,
		Placer:        NewRepelPlacer(),
	}
}

// categories returns the categories a run iterates over
func (c Config) categories() []string {
	if c.Mode == ModeTotal {
		return []string{TotalCategory}
	}
	return c.Categories
}

var namedColors = map[string]string{
	"r": "ff0000", "red": "ff0000",
	"g": "008000", "green": "008000",
	"b": "0000ff", "blue": "0000ff",
	"c": "00bfbf", "cyan": "00bfbf",
	"m": "bf00bf", "magenta": "bf00bf",
	"y": "bfbf00", "yellow": "bfbf00",
	"k": "000000", "black": "000000",
	"w": "ffffff", "white": "ffffff",
	"gray": "808080", "orange": "ffa500",
}

// ParseColor accepts single-letter color codes (r g b c m y k w), a few
// color names, and #rrggbb hex strings.
func ParseColor(s string) (drawing.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		return drawing.ColorFromHex(hex), nil
	}

	hex := strings.TrimPrefix(key, "#")
	if len(hex) != 6 || strings.Trim(hex, "0123456789abcdef") != "" {
		return drawing.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return drawing.ColorFromHex(hex), nil
}

// ParseFamily parses "Prefix" or "Prefix=color"
func ParseFamily(s string) (metrics.Family, error) {
	prefix, color, found := strings.Cut(s, "=")
	fam := metrics.Family{Prefix: prefix}
	if found {
		if _, err := ParseColor(color); err != nil {
			return metrics.Family{}, err
		}
		fam.Color = color
	}
	return fam, nil
}
