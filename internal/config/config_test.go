package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Gender.MaleToken != "Male" {
		t.Errorf("expected male token %q, got %q", "Male", cfg.Gender.MaleToken)
	}
	if cfg.Gender.MaskToken != "<unk>" {
		t.Errorf("expected mask token %q, got %q", "<unk>", cfg.Gender.MaskToken)
	}
	if len(cfg.Gender.Masculine) == 0 || len(cfg.Gender.Feminine) == 0 {
		t.Error("expected default gendered word lists")
	}
	if cfg.Annotations.HumanPath == "" || cfg.Annotations.ModelPath == "" {
		t.Error("expected default annotation paths")
	}
}

func TestGenderCfg_Words(t *testing.T) {
	g := GenderCfg{
		Masculine: []string{"man", "boy"},
		Feminine:  []string{"woman", "girl"},
	}

	words := g.Words()
	expected := []string{"man", "boy", "woman", "girl"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i := range expected {
		if words[i] != expected[i] {
			t.Errorf("index %d: got %q, want %q", i, words[i], expected[i])
		}
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_DATA_DIR", "/data/bias")
		defer os.Unsetenv("TEST_DATA_DIR")

		result := ResolveEnvVars("${TEST_DATA_DIR}/human.pkl")
		if result != "/data/bias/human.pkl" {
			t.Errorf("expected /data/bias/human.pkl, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal/path.pkl")
		if result != "literal/path.pkl" {
			t.Errorf("expected literal/path.pkl, got %s", result)
		}
	})
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}

	content := string(data)
	if !strings.HasPrefix(content, "# dic configuration") {
		t.Error("expected header comment")
	}
	if !strings.Contains(content, "male_token: Male") {
		t.Error("expected male_token in written config")
	}
	if !strings.Contains(content, "waitress") {
		t.Error("expected feminine word list in written config")
	}
}
