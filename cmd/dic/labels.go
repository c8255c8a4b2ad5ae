package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neel3004/DIC/internal/config"
	"github.com/Neel3004/DIC/internal/dataset"
	"github.com/Neel3004/DIC/internal/textproc"
)

var (
	labelsHumanPath string
	labelsOutPath   string
	labelsUseModel  bool
)

var labelsCmd = &cobra.Command{
	Use:   "labels <word,word,...>",
	Short: "Check lemma-based label presence against the captions",
	Long: `Labels lemmatizes each given word and every caption token, then emits a
table with one boolean column per word marking whether its lemma appears
as a whole token in each caption. "dog" matches "two dogs" but never
"hotdog".

Examples:
  dic labels dog,cat --human human.pkl
  dic labels man,woman --human human.pkl --model model.pkl --from-model`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		words := strings.Split(args[0], ",")
		for i := range words {
			words[i] = strings.TrimSpace(words[i])
		}

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		humanPath := labelsHumanPath
		if humanPath == "" {
			humanPath = cfg.HumanPath()
		}
		modelPath := cfg.ModelPath()

		builder, err := dataset.New(dataset.Request{
			HumanPath: humanPath,
			ModelPath: modelPath,
			MaleToken: cfg.Gender.MaleToken,
			Logger:    logger,
		})
		if err != nil {
			return err
		}

		captionTable := builder.HumanCaptions()
		if labelsUseModel {
			captionTable = builder.ModelCaptions()
		}
		captions := captionTable.Col(dataset.ColCaption).Records()

		proc, err := textproc.NewProcessor()
		if err != nil {
			return err
		}
		table := proc.LabelPresence(words, captions)

		out := os.Stdout
		if labelsOutPath != "" {
			f, err := os.Create(labelsOutPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", labelsOutPath, err)
			}
			defer f.Close()
			out = f
		}
		return table.WriteCSV(out)
	},
}

func init() {
	labelsCmd.Flags().StringVar(&labelsHumanPath, "human", "", "path to the human annotation pickle")
	labelsCmd.Flags().StringVar(&labelsOutPath, "out", "", "write CSV here instead of stdout")
	labelsCmd.Flags().BoolVar(&labelsUseModel, "from-model", false, "check model captions instead of human captions")
}
