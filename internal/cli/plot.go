package cli

import (
	"fmt"
	"path/filepath"

	"github.com/labstack/gommon/log"
	"github.com/shidetake/codeceval/internal/metrics"
	"github.com/shidetake/codeceval/internal/plot"
	"github.com/spf13/cobra"
)

var (
	plotInput       string
	plotOutputDir   string
	plotFamilies    []string
	plotCategories  []string
	plotTotal       bool
	plotScatter     bool
	plotShow        bool
	plotFormat      string
	plotWidth       int
	plotHeight      int
	plotNoDeclutter bool
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw codec speed v.s. compression rate charts",
	Long: `Draw codec speed v.s. compression rate charts from a summary CSV.

Each codec family is one line; every variant column whose name starts
with the family name is one point, labeled with the rest of its name.

Example:
  codeceval plot -i codec_comparison_summery.csv -o figures
  codeceval plot --total --family FLAC=r --family TTA=#0000ff
  codeceval plot --scatter --show --category jazz

Output:
  decodespeed_vs_compressionrate_<category>.svg
  encodespeed_vs_compressionrate_<category>.svg
  codec_comparison_<x>_vs_<y>.svg with --total`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateFile(plotInput, ".csv"); err != nil {
			return fmt.Errorf("input file error: %w", err)
		}

		format, err := plot.ParseFormat(plotFormat)
		if err != nil {
			return err
		}

		if plotWidth <= 0 || plotHeight <= 0 {
			return fmt.Errorf("figure size must be positive, got %dx%d", plotWidth, plotHeight)
		}

		cfg, err := buildPlotConfig()
		if err != nil {
			return err
		}

		var sink plot.Sink = plot.FileSink{Dir: plotOutputDir, Format: format}
		if plotShow {
			sink = plot.NewDisplaySink()
		}

		return runPlot(cmd, cfg, sink)
	},
}

func init() {
	plotCmd.Flags().StringVarP(&plotInput, "input", "i", "codec_comparison_summery.csv", "Summary CSV with metric rows and codec variant columns")
	plotCmd.Flags().StringVarP(&plotOutputDir, "output-dir", "o", ".", "Directory for rendered figures")
	plotCmd.Flags().StringArrayVar(&plotFamilies, "family", nil, "Codec family prefix, optionally with a color (Name or Name=color); repeatable, order sets draw order")
	plotCmd.Flags().StringSliceVar(&plotCategories, "category", nil, "Signal category to plot; repeatable")
	plotCmd.Flags().BoolVar(&plotTotal, "total", false, "Plot only the synthetic Total category")
	plotCmd.Flags().BoolVar(&plotScatter, "scatter", false, "Overlay scatter markers on each family's line")
	plotCmd.Flags().BoolVar(&plotShow, "show", false, "Open figures in a viewer instead of writing files")
	plotCmd.Flags().StringVar(&plotFormat, "format", string(plot.FormatSVG), "Figure file format (svg or png)")
	plotCmd.Flags().IntVar(&plotWidth, "width", 1024, "Figure width in pixels")
	plotCmd.Flags().IntVar(&plotHeight, "height", 768, "Figure height in pixels")
	plotCmd.Flags().BoolVar(&plotNoDeclutter, "no-declutter", false, "Draw point labels on their points without moving them apart")
}

// buildPlotConfig turns the plot flags into a plot.Config
func buildPlotConfig() (plot.Config, error) {
	cfg := plot.DefaultConfig()

	if len(plotFamilies) > 0 {
		cfg.Families = make([]metrics.Family, 0, len(plotFamilies))
		for _, s := range plotFamilies {
			fam, err := plot.ParseFamily(s)
			if err != nil {
				return plot.Config{}, fmt.Errorf("--family %q: %w", s, err)
			}
			cfg.Families = append(cfg.Families, fam)
		}
	}
	if err := metrics.ValidateFamilies(cfg.Families); err != nil {
		return plot.Config{}, err
	}

	if len(plotCategories) > 0 {
		cfg.Categories = plotCategories
	}
	if plotTotal {
		cfg.Mode = plot.ModeTotal
	}
	cfg.Scatter = plotScatter
	cfg.Width = plotWidth
	cfg.Height = plotHeight
	if plotNoDeclutter {
		cfg.Placer = nil
	}

	return cfg, nil
}

// runPlot loads the summary table and renders every figure
func runPlot(cmd *cobra.Command, cfg plot.Config, sink plot.Sink) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Loading summary...")
	table, err := metrics.LoadCSV(plotInput)
	if err != nil {
		return err
	}
	rows, cols := table.Dims()
	fmt.Fprintf(out, "  ✓ %s (%d metrics, %d codec variants)\n", filepath.Base(plotInput), rows, cols)
	log.Debugf("families: %v", cfg.Families)

	plotter, err := plot.NewPlotter(cfg, sink)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Rendering figures...")
	names, err := plotter.Run(table)
	for _, name := range names {
		if fs, ok := sink.(plot.FileSink); ok {
			fmt.Fprintf(out, "  ✓ %s\n", fs.Path(name))
		} else {
			fmt.Fprintf(out, "  ✓ %s\n", name)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Done: %d figures.\n", len(names))
	return nil
}
