// Package export writes built tables and a run summary to disk.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Neel3004/DIC/internal/dataset"
)

// Output file names within the export directory.
const (
	HumanCaptionsFile  = "human_captions.csv"
	ModelCaptionsFile  = "model_captions.csv"
	CombinedFile       = "combined.csv"
	ObjectPresenceFile = "object_presence.csv"
	SummaryFile        = "summary.yaml"
)

// Request contains the parameters for exporting dataset tables.
type Request struct {
	OutDir  string
	Builder *dataset.Builder
	Logger  *slog.Logger // optional logger for progress updates
}

// Summary records what a build run produced.
type Summary struct {
	RunID        string `yaml:"run_id"`
	CreatedAt    string `yaml:"created_at"`
	Images       int    `yaml:"images"`
	Objects      int    `yaml:"objects"`
	HumanRows    int    `yaml:"human_rows"`
	ModelRows    int    `yaml:"model_rows"`
	CombinedRows int    `yaml:"combined_rows"`
	JoinType     string `yaml:"join_type"` // combined table join semantics
}

// Write exports all four tables as CSV plus a YAML run summary.
func Write(req Request) (*Summary, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if err := os.MkdirAll(req.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	human := req.Builder.HumanCaptions()
	model := req.Builder.ModelCaptions()
	combined := req.Builder.Combined()
	presence := req.Builder.ObjectPresence()

	tables := []struct {
		name string
		df   dataframe.DataFrame
	}{
		{HumanCaptionsFile, human},
		{ModelCaptionsFile, model},
		{CombinedFile, combined},
		{ObjectPresenceFile, presence},
	}
	for _, table := range tables {
		if err := writeCSV(filepath.Join(req.OutDir, table.name), table.df); err != nil {
			return nil, err
		}
		log.Debug("table written", "file", table.name, "rows", table.df.Nrow())
	}

	summary := &Summary{
		RunID:        uuid.New().String(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Images:       req.Builder.Images(),
		Objects:      len(req.Builder.ObjectVocabulary()),
		HumanRows:    human.Nrow(),
		ModelRows:    model.Nrow(),
		CombinedRows: combined.Nrow(),
		JoinType:     "inner",
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(req.OutDir, SummaryFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}

	log.Info("export complete",
		"run_id", summary.RunID,
		"out", req.OutDir,
		"human_rows", summary.HumanRows,
		"model_rows", summary.ModelRows,
	)
	return summary, nil
}

func writeCSV(path string, df dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := df.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
