// Package dataset builds the bias-analysis tables from paired caption
// annotation files.
//
// All tables are derived once at construction time and held immutable:
// a per-caption human table, a per-caption model table, a per-image
// gender attribute table, and a 0/1 object presence matrix. img_id is
// the join key everywhere, and the presence matrix only ever contains
// images from the human annotation source.
package dataset

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/Neel3004/DIC/internal/annotations"
)

// Column names shared across tables.
const (
	ColImageID      = "img_id"
	ColGender       = "gender"
	ColCaption      = "caption"
	ColCaptionHuman = "caption_human"
	ColCaptionModel = "caption_model"
)

// MaleLabel is the default label encoded as gender code 0.
const MaleLabel = "Male"

// Request contains the parameters for building the dataset tables.
type Request struct {
	HumanPath string       // pickled human annotation entries
	ModelPath string       // pickled model annotation entries
	MaleToken string       // label encoded as 0 (default "Male")
	Logger    *slog.Logger // optional logger for progress updates
}

// Builder holds the derived tables. Construct with New or FromRecords;
// the tables never change afterwards.
type Builder struct {
	humanCaps dataframe.DataFrame // img_id, caption: one row per human caption
	modelCaps dataframe.DataFrame // img_id, caption: one row per image
	attrs     dataframe.DataFrame // img_id, gender code
	presence  dataframe.DataFrame // img_id + one 0/1 column per object
	objects   []string            // sorted object vocabulary
}

// New loads both annotation files and builds all derived tables.
// Both paths are checked before any processing happens, so a missing
// file never leaves partial state behind.
func New(req Request) (*Builder, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	for _, path := range []string{req.HumanPath, req.ModelPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("annotation file not found: %s", path)
		}
	}

	human, err := annotations.LoadHuman(req.HumanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load human annotations: %w", err)
	}
	model, err := annotations.LoadModel(req.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load model annotations: %w", err)
	}

	log.Info("annotations loaded",
		"human_images", len(human),
		"model_images", len(model),
	)

	b, err := FromRecords(human, model, req.MaleToken)
	if err != nil {
		return nil, err
	}

	log.Debug("tables built",
		"human_captions", b.humanCaps.Nrow(),
		"objects", len(b.objects),
	)
	return b, nil
}

// FromRecords builds the tables from already-loaded records.
// maleToken defaults to MaleLabel when empty.
func FromRecords(human []annotations.HumanRecord, model []annotations.ModelRecord, maleToken string) (*Builder, error) {
	if maleToken == "" {
		maleToken = MaleLabel
	}

	b := &Builder{}
	b.attrs = buildAttributes(human, maleToken)
	b.humanCaps = buildHumanCaptions(human)
	b.modelCaps = buildModelCaptions(model)
	b.presence, b.objects = buildPresence(human)

	for _, df := range []dataframe.DataFrame{b.attrs, b.humanCaps, b.modelCaps, b.presence} {
		if df.Err != nil {
			return nil, fmt.Errorf("failed to build tables: %w", df.Err)
		}
	}
	return b, nil
}

// EncodeGender maps a gender label to its binary code: the male token
// yields 0 and anything else, including a missing label, yields 1.
// The mapping is deliberately this blunt: it mirrors the upstream
// annotation format, and downstream consumers depend on it.
func EncodeGender(label, maleToken string) int {
	if label == maleToken {
		return 0
	}
	return 1
}

// buildAttributes flattens human records into the per-image attribute
// table {img_id, gender code}. The object lists feed the presence
// matrix instead and are deliberately not carried here, so joins
// against this table never duplicate the object column.
func buildAttributes(records []annotations.HumanRecord, maleToken string) dataframe.DataFrame {
	ids := make([]string, len(records))
	genders := make([]int, len(records))
	for i, rec := range records {
		ids[i] = rec.ImageID
		genders[i] = EncodeGender(rec.Gender, maleToken)
	}

	return dataframe.New(
		series.New(ids, series.String, ColImageID),
		series.New(genders, series.Int, ColGender),
	)
}

// buildHumanCaptions expands human records into one row per caption.
func buildHumanCaptions(records []annotations.HumanRecord) dataframe.DataFrame {
	var ids, captions []string
	for _, rec := range records {
		for _, caption := range rec.Captions {
			ids = append(ids, rec.ImageID)
			captions = append(captions, caption)
		}
	}

	return dataframe.New(
		series.New(ids, series.String, ColImageID),
		series.New(captions, series.String, ColCaption),
	)
}

// buildModelCaptions flattens model records into {img_id, caption} rows.
func buildModelCaptions(records []annotations.ModelRecord) dataframe.DataFrame {
	ids := make([]string, len(records))
	captions := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ImageID
		captions[i] = rec.Caption
	}

	return dataframe.New(
		series.New(ids, series.String, ColImageID),
		series.New(captions, series.String, ColCaption),
	)
}

// buildPresence multi-label encodes the object lists: the column set is
// the sorted vocabulary of distinct object tokens across all human
// records, and each cell is 1 when the image's list contains the
// object, 0 otherwise (including images with no object list at all).
func buildPresence(records []annotations.HumanRecord) (dataframe.DataFrame, []string) {
	seen := make(map[string]bool)
	objSets := make([]map[string]bool, len(records))
	for i, rec := range records {
		objSets[i] = make(map[string]bool, len(rec.Objects))
		for _, obj := range rec.Objects {
			seen[obj] = true
			objSets[i][obj] = true
		}
	}

	vocab := make([]string, 0, len(seen))
	for obj := range seen {
		vocab = append(vocab, obj)
	}
	sort.Strings(vocab)

	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i] = rec.ImageID
	}

	cols := make([]series.Series, 0, len(vocab)+1)
	cols = append(cols, series.New(ids, series.String, ColImageID))
	for _, obj := range vocab {
		indicator := make([]int, len(records))
		for i := range records {
			if objSets[i][obj] {
				indicator[i] = 1
			}
		}
		cols = append(cols, series.New(indicator, series.Int, obj))
	}

	return dataframe.New(cols...), vocab
}
