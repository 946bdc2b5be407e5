package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "codeceval",
	Short: "Codec evaluation utilities",
	Long: `codeceval - Codec Evaluation Utilities

Tools for the lossless audio codec benchmark:

  plot   Draw speed v.s. compression rate charts from a summary CSV
  split  Cut a WAV corpus into fixed-length test clips

Example:
  codeceval split -p './data/**/*.wav' -o ./output -s 10
  codeceval plot -i codec_comparison_summery.csv -o figures`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
	SilenceUsage: true, // Don't show usage on errors during execution
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(splitCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(w io.Writer, debug bool) {
	log.SetOutput(w)
	log.SetHeader("${time_rfc3339} ${level}")
	if debug {
		log.SetLevel(log.DEBUG)
	} else {
		log.SetLevel(log.INFO)
	}
}

// validateFile checks if a file exists and has one of the given extensions
func validateFile(path string, exts ...string) error {
	// Check if file exists
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("cannot access file: %w", err)
	}

	// Check if it's a regular file
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range exts {
		if ext == want {
			return nil
		}
	}
	return fmt.Errorf("file must be one of %s (got %q): %s", strings.Join(exts, ", "), ext, path)
}
