package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
annotations:
  human: human.pkl
  model: /data/model.pkl
male_token: Male
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	t.Run("relative paths resolve against manifest dir", func(t *testing.T) {
		expected := filepath.Join(dir, "human.pkl")
		if m.Annotations.Human != expected {
			t.Errorf("expected %s, got %s", expected, m.Annotations.Human)
		}
	})

	t.Run("absolute paths pass through", func(t *testing.T) {
		if m.Annotations.Model != "/data/model.pkl" {
			t.Errorf("expected /data/model.pkl, got %s", m.Annotations.Model)
		}
	})

	if m.MaleToken != "Male" {
		t.Errorf("expected male token Male, got %q", m.MaleToken)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing model path",
			content: `
annotations:
  human: human.pkl
`,
		},
		{
			name:    "missing annotations block",
			content: `male_token: Male`,
		},
		{
			name: "empty human path",
			content: `
annotations:
  human: ""
  model: model.pkl
`,
		},
		{
			name:    "not valid yaml",
			content: "annotations: [unclosed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing manifest")
	}
}
