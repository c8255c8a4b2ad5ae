package config

// Config holds dic configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Annotations AnnotationsCfg `mapstructure:"annotations" yaml:"annotations"`
	Gender      GenderCfg      `mapstructure:"gender" yaml:"gender"`
	Output      OutputCfg      `mapstructure:"output" yaml:"output"`
}

// AnnotationsCfg names the two pickled annotation files.
type AnnotationsCfg struct {
	HumanPath string `mapstructure:"human_path" yaml:"human_path"` // human-written caption entries (supports ${ENV_VAR} syntax)
	ModelPath string `mapstructure:"model_path" yaml:"model_path"` // model-generated caption entries (supports ${ENV_VAR} syntax)
}

// GenderCfg controls gender encoding and caption masking.
type GenderCfg struct {
	// MaleToken is the only label encoded as 0. Every other label,
	// including a missing one, encodes as 1. This mirrors the upstream
	// annotation writer and is intentionally not configurable per-record.
	MaleToken string `mapstructure:"male_token" yaml:"male_token"`

	// MaskToken replaces gendered words when masking captions.
	MaskToken string `mapstructure:"mask_token" yaml:"mask_token"`

	// ObjectToken replaces object words when masking captions.
	ObjectToken string `mapstructure:"object_token" yaml:"object_token"`

	Masculine []string `mapstructure:"masculine" yaml:"masculine"`
	Feminine  []string `mapstructure:"feminine" yaml:"feminine"`
}

// Words returns the full gendered word list (masculine then feminine).
func (g GenderCfg) Words() []string {
	words := make([]string, 0, len(g.Masculine)+len(g.Feminine))
	words = append(words, g.Masculine...)
	words = append(words, g.Feminine...)
	return words
}

// OutputCfg controls where exported tables are written.
type OutputCfg struct {
	Dir string `mapstructure:"dir" yaml:"dir"` // defaults to {home}/out when empty
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Annotations: AnnotationsCfg{
			HumanPath: "bias_data/Human_Ann/gender_obj_cap_mw_entries.pkl",
			ModelPath: "bias_data/Transformer/gender_val_transformer_cap_mw_entries.pkl",
		},
		Gender: GenderCfg{
			MaleToken:   "Male",
			MaskToken:   "<unk>",
			ObjectToken: "<obj>",
			Masculine: []string{
				"man", "men", "male", "father", "gentleman", "boy", "uncle",
				"husband", "actor", "prince", "waiter", "he", "his", "him",
			},
			Feminine: []string{
				"woman", "women", "female", "mother", "lady", "girl", "aunt",
				"wife", "actress", "princess", "waitress", "she", "her", "hers",
			},
		},
		Output: OutputCfg{},
	}
}
