package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neel3004/DIC/internal/config"
	"github.com/Neel3004/DIC/internal/dataset"
	"github.com/Neel3004/DIC/internal/export"
	"github.com/Neel3004/DIC/internal/home"
	"github.com/Neel3004/DIC/internal/manifest"
)

var (
	buildHumanPath    string
	buildModelPath    string
	buildManifestPath string
	buildOutDir       string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the bias-analysis tables from two annotation files",
	Long: `Build loads the human and model annotation pickles, flattens them into
per-caption tables, encodes the object presence matrix, and exports
everything as CSV plus a YAML run summary.

Input resolution order: --manifest, then --human/--model flags, then
the annotation paths from config.

Examples:
  dic build --human human.pkl --model model.pkl
  dic build --manifest bias_data/manifest.yaml --out ./tables
  dic build                  # paths from config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		humanPath := buildHumanPath
		modelPath := buildModelPath
		maleToken := cfg.Gender.MaleToken

		if buildManifestPath != "" {
			m, err := manifest.Load(buildManifestPath)
			if err != nil {
				return err
			}
			humanPath = m.Annotations.Human
			modelPath = m.Annotations.Model
			if m.MaleToken != "" {
				maleToken = m.MaleToken
			}
		}
		if humanPath == "" {
			humanPath = cfg.HumanPath()
		}
		if modelPath == "" {
			modelPath = cfg.ModelPath()
		}

		outDir := buildOutDir
		if outDir == "" {
			outDir = cfg.Output.Dir
		}
		if outDir == "" {
			h, err := home.New(homeDir)
			if err != nil {
				return err
			}
			if err := h.EnsureExists(); err != nil {
				return err
			}
			outDir = h.OutPath()
		}

		builder, err := dataset.New(dataset.Request{
			HumanPath: humanPath,
			ModelPath: modelPath,
			MaleToken: maleToken,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		summary, err := export.Write(export.Request{
			OutDir:  outDir,
			Builder: builder,
			Logger:  logger,
		})
		if err != nil {
			return err
		}

		fmt.Printf("run %s: %d images, %d objects, %d human / %d model caption rows -> %s\n",
			summary.RunID, summary.Images, summary.Objects,
			summary.HumanRows, summary.ModelRows, outDir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&buildHumanPath, "human", "", "path to the human annotation pickle")
	buildCmd.Flags().StringVar(&buildModelPath, "model", "", "path to the model annotation pickle")
	buildCmd.Flags().StringVar(&buildManifestPath, "manifest", "", "path to a dataset manifest (overrides --human/--model)")
	buildCmd.Flags().StringVar(&buildOutDir, "out", "", "output directory (default: {home}/out)")
}
