// Package manifest describes a dataset build input set.
//
// A manifest is a small YAML file naming the two annotation pickles,
// so a build can be pinned to a directory of inputs instead of loose
// flags. Manifests are validated against an embedded JSON schema
// before anything is loaded.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Manifest names the inputs of a dataset build.
type Manifest struct {
	Annotations struct {
		Human string `yaml:"human" json:"human"`
		Model string `yaml:"model" json:"model"`
	} `yaml:"annotations" json:"annotations"`

	// MaleToken optionally overrides the label encoded as 0.
	MaleToken string `yaml:"male_token,omitempty" json:"male_token,omitempty"`
}

const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["annotations"],
  "properties": {
    "annotations": {
      "type": "object",
      "required": ["human", "model"],
      "properties": {
        "human": {"type": "string", "minLength": 1},
        "model": {"type": "string", "minLength": 1}
      }
    },
    "male_token": {"type": "string", "minLength": 1}
  }
}`

// Load reads, validates, and parses the manifest at path. Relative
// annotation paths are resolved against the manifest's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid manifest YAML: %w", err)
	}

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("manifest does not match schema: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	dir := filepath.Dir(path)
	m.Annotations.Human = resolve(dir, m.Annotations.Human)
	m.Annotations.Model = resolve(dir, m.Annotations.Model)

	return &m, nil
}

func validate(doc any) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("manifest.schema.json", bytes.NewReader([]byte(schemaJSON))); err != nil {
		return fmt.Errorf("failed to load manifest schema: %w", err)
	}
	schema, err := compiler.Compile("manifest.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile manifest schema: %w", err)
	}
	return schema.Validate(doc)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
