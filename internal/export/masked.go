package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Neel3004/DIC/internal/dataset"
	"github.com/Neel3004/DIC/internal/textproc"
)

// Output file names for the masked caption export.
const (
	MaskedCaptionsFile = "masked_captions.csv"
	HumanVocabFile     = "vocab_human.csv"
	ModelVocabFile     = "vocab_model.csv"
	HumanEncodedFile   = "encoded_human.csv"
	ModelEncodedFile   = "encoded_model.csv"
)

// MaskedRequest contains the parameters for the masked caption export.
type MaskedRequest struct {
	OutDir    string
	Builder   *dataset.Builder
	Processor *textproc.Processor
	Words     []string // words to mask, matched by lemma
	Token     string   // placeholder written over masked words
	Logger    *slog.Logger
}

// MaskedSummary records what a masking run produced.
type MaskedSummary struct {
	Rows           int
	HumanVocabSize int
	ModelVocabSize int
}

// WriteMasked rewrites the combined caption table with the given words
// masked, builds a vocabulary per caption source over the masked text,
// and writes the masked table, both vocabularies, and each side's
// encoded id sequences.
func WriteMasked(req MaskedRequest) (*MaskedSummary, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	combined := req.Builder.Combined()
	ids := combined.Col(dataset.ColImageID).Records()
	genders := combined.Col(dataset.ColGender).Records()

	human := req.Processor.MaskWords(combined.Col(dataset.ColCaptionHuman).Records(), req.Words, req.Token)
	model := req.Processor.MaskWords(combined.Col(dataset.ColCaptionModel).Records(), req.Words, req.Token)

	masked := dataframe.New(
		series.New(ids, series.String, dataset.ColImageID),
		series.New(human, series.String, dataset.ColCaptionHuman),
		series.New(model, series.String, dataset.ColCaptionModel),
		series.New(genders, series.String, dataset.ColGender),
	)
	if err := writeCSV(filepath.Join(req.OutDir, MaskedCaptionsFile), masked); err != nil {
		return nil, err
	}

	humanVocab := req.Processor.BuildVocab(human)
	modelVocab := req.Processor.BuildVocab(model)

	sides := []struct {
		vocabFile   string
		encodedFile string
		vocab       map[string]int
		captions    []string
	}{
		{HumanVocabFile, HumanEncodedFile, humanVocab, human},
		{ModelVocabFile, ModelEncodedFile, modelVocab, model},
	}
	for _, side := range sides {
		if err := writeCSV(filepath.Join(req.OutDir, side.vocabFile), vocabFrame(side.vocab)); err != nil {
			return nil, err
		}
		encoded := req.Processor.Encode(side.vocab, side.captions, 0)
		if err := writeCSV(filepath.Join(req.OutDir, side.encodedFile), encodedFrame(ids, encoded)); err != nil {
			return nil, err
		}
	}

	log.Info("masked export complete",
		"out", req.OutDir,
		"rows", masked.Nrow(),
		"human_vocab", len(humanVocab),
		"model_vocab", len(modelVocab),
	)
	return &MaskedSummary{
		Rows:           masked.Nrow(),
		HumanVocabSize: len(humanVocab),
		ModelVocabSize: len(modelVocab),
	}, nil
}

// vocabFrame lays a vocabulary out as {token, id} rows ordered by id.
// Indices are contiguous from 0 by construction.
func vocabFrame(vocab map[string]int) dataframe.DataFrame {
	tokens := make([]string, len(vocab))
	ids := make([]int, len(vocab))
	for tok, id := range vocab {
		tokens[id] = tok
		ids[id] = id
	}

	return dataframe.New(
		series.New(tokens, series.String, "token"),
		series.New(ids, series.Int, "id"),
	)
}

// encodedFrame lays encoded captions out as {img_id, token_ids} rows,
// with each id sequence space-joined.
func encodedFrame(ids []string, encoded [][]int) dataframe.DataFrame {
	seqs := make([]string, len(encoded))
	for i, row := range encoded {
		parts := make([]string, len(row))
		for j, id := range row {
			parts[j] = strconv.Itoa(id)
		}
		seqs[i] = strings.Join(parts, " ")
	}

	return dataframe.New(
		series.New(ids, series.String, dataset.ColImageID),
		series.New(seqs, series.String, "token_ids"),
	)
}
