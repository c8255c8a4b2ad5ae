package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Neel3004/DIC/internal/config"
	"github.com/Neel3004/DIC/internal/dataset"
	"github.com/Neel3004/DIC/internal/export"
	"github.com/Neel3004/DIC/internal/home"
	"github.com/Neel3004/DIC/internal/textproc"
)

var (
	maskHumanPath string
	maskModelPath string
	maskOutDir    string
	maskMode      string
)

var maskCmd = &cobra.Command{
	Use:   "mask",
	Short: "Mask gendered or object words in captions and encode them",
	Long: `Mask rewrites the combined caption table with masked words replaced by
a placeholder token, then builds a vocabulary per caption source and
encodes each caption as padded token id sequences.

Modes:
  gender  mask the configured masculine/feminine word list with mask_token
  object  mask the detected-object vocabulary with object_token

Examples:
  dic mask --human human.pkl --model model.pkl
  dic mask --mode object --out ./tables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		humanPath := maskHumanPath
		if humanPath == "" {
			humanPath = cfg.HumanPath()
		}
		modelPath := maskModelPath
		if modelPath == "" {
			modelPath = cfg.ModelPath()
		}

		outDir := maskOutDir
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
			MaleToken: cfg.Gender.MaleToken,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		var words []string
		var token string
		switch maskMode {
		case "gender":
			words = cfg.Gender.Words()
			token = cfg.Gender.MaskToken
		case "object":
			words = builder.ObjectVocabulary()
			token = cfg.Gender.ObjectToken
		default:
			return fmt.Errorf("unknown mask mode %q (want gender or object)", maskMode)
		}

		proc, err := textproc.NewProcessor()
		if err != nil {
			return err
		}

		summary, err := export.WriteMasked(export.MaskedRequest{
			OutDir:    outDir,
			Builder:   builder,
			Processor: proc,
			Words:     words,
			Token:     token,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		fmt.Printf("masked %d caption rows (%s mode), vocab %d human / %d model -> %s\n",
			summary.Rows, maskMode, summary.HumanVocabSize, summary.ModelVocabSize, outDir)
		return nil
	},
}

func init() {
	maskCmd.Flags().StringVar(&maskHumanPath, "human", "", "path to the human annotation pickle")
	maskCmd.Flags().StringVar(&maskModelPath, "model", "", "path to the model annotation pickle")
	maskCmd.Flags().StringVar(&maskOutDir, "out", "", "output directory (default: {home}/out)")
	maskCmd.Flags().StringVar(&maskMode, "mode", "gender", "which word list to mask: gender or object")
}
