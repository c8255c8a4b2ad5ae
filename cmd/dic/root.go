package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neel3004/DIC/version"
)

var (
	cfgFile string
	homeDir string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dic",
	Short: "Caption dataset builder for image captioning bias analysis",
	Long: `dic reshapes paired captioning annotations into tables for bias analysis.

It ingests two pickled annotation files (human-written and model-generated
captions keyed by image id, with detected objects and gender labels) and
produces:
  - Flattened per-caption tables joined with gender attributes
  - A 0/1 object presence matrix over the detected-object vocabulary
  - A combined human/model caption table joined on image id
  - Masked caption tables with per-source vocabularies and id encodings
  - Lemma-based label presence tables for word lists`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.dic/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "dic home directory (default: ~/.dic)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(maskCmd)
	rootCmd.AddCommand(labelsCmd)
}

// newLogger builds the CLI logger honoring the --verbose flag.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
