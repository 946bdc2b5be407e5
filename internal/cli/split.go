package cli

import (
	"fmt"

	"github.com/shidetake/codeceval/internal/slicer"
	"github.com/spf13/cobra"
)

var (
	splitPatterns  []string
	splitOutput    string
	splitBase      string
	splitSeconds   float64
	splitKeepGoing bool
)

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Cut audio files into fixed-length WAV clips",
	Long: `Cut every audio file matched by the search patterns into consecutive
clips of a fixed duration. The input directory tree is mirrored under the
output directory and a trailing clip shorter than the duration is dropped.

Inputs may be WAV, AIFF or FLAC; clips are always WAV with the source's
sample rate, channel count and bit depth.

Example:
  codeceval split
  codeceval split -p './data/**/*.wav' -p './extra/**/*.flac' -o ./output -s 10

Output:
  data/jazz/take.wav (35s) with -s 10 becomes
    output/data/jazz/take_000.wav
    output/data/jazz/take_001.wav
    output/data/jazz/take_002.wav`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate window duration
		if splitSeconds <= 0 {
			return fmt.Errorf("window duration must be positive, got %v", splitSeconds)
		}

		if splitOutput == "" {
			return fmt.Errorf("--output must not be empty")
		}

		s, err := slicer.New(slicer.Config{
			Patterns:  splitPatterns,
			OutputDir: splitOutput,
			BaseDir:   splitBase,
			Seconds:   splitSeconds,
			KeepGoing: splitKeepGoing,
		}, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		return runSplit(cmd, s)
	},
}

func init() {
	splitCmd.Flags().StringArrayVarP(&splitPatterns, "pattern", "p", []string{"./data/**/*.wav"}, "Recursive glob selecting input files; repeatable")
	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "./output", "Root of the mirrored output tree")
	splitCmd.Flags().StringVar(&splitBase, "base", ".", "Directory input paths are mirrored relative to")
	splitCmd.Flags().Float64VarP(&splitSeconds, "seconds", "s", 10, "Clip duration in seconds")
	splitCmd.Flags().BoolVar(&splitKeepGoing, "keep-going", false, "Report files that fail to decode and continue with the rest")
}

// runSplit runs the slicer and prints a summary
func runSplit(cmd *cobra.Command, s *slicer.Slicer) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Splitting files...")
	report, err := s.Run()
	if report != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Wrote %d clips from %d files", report.Windows, report.Files)
		if n := len(report.Failures); n > 0 {
			fmt.Fprintf(out, " (%d failed)", n)
		}
		fmt.Fprintln(out, ".")
	}
	return err
}
