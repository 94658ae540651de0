package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alanchen34/stratify"
)

// Config is the run configuration for the pipeline.
//
// All sampling fields mirror stratify.Config; the pipeline adds the year
// filter, the category inputs, and the output locations.
type Config struct {
	// TargetYear filters every category to reviews of one calendar year.
	TargetYear int `yaml:"targetYear"`

	// TargetSamples is the sample count drawn per category.
	TargetSamples int `yaml:"targetSamples"`

	// Seed drives all sampling and the final merge shuffle.
	Seed uint64 `yaml:"seed"`

	// MinWords is the minimum review body word count for eligibility.
	MinWords int `yaml:"minWords"`

	// StratifyByRating adds the star rating to the stratum key.
	StratifyByRating bool `yaml:"stratifyByRating"`

	// Buckets overrides the length bucket partition (empty = default).
	Buckets stratify.Buckets `yaml:"buckets"`

	// Categories maps category names to review file paths.
	Categories map[string]string `yaml:"categories"`

	// OutputDir receives one <category>.csv per processed category.
	OutputDir string `yaml:"outputDir"`

	// MergedOutput is the path of the merged, reshuffled dataset.
	MergedOutput string `yaml:"mergedOutput"`
}

// DefaultConfig returns a pipeline configuration with the standard
// processing parameters: year 2012, 400 samples per category, seed 42.
func DefaultConfig() Config {
	return Config{
		TargetYear:    2012,
		TargetSamples: 400,
		Seed:          42,
		MinWords:      5,
		OutputDir:     "processed_data",
		MergedOutput:  "final_dataset.csv",
	}
}

// SetDefaults fills in missing configuration values.
func (cfg *Config) SetDefaults() {
	defaults := DefaultConfig()

	if cfg.TargetYear == 0 {
		cfg.TargetYear = defaults.TargetYear
	}
	if cfg.TargetSamples == 0 {
		cfg.TargetSamples = defaults.TargetSamples
	}
	if cfg.MinWords == 0 {
		cfg.MinWords = defaults.MinWords
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaults.OutputDir
	}
	if cfg.MergedOutput == "" {
		cfg.MergedOutput = defaults.MergedOutput
	}
}

// Validate checks the run configuration.
//
// Returns:
//   - error: Description of the first violation, nil if valid
func (cfg *Config) Validate() error {
	if len(cfg.Categories) == 0 {
		return ErrNoCategories
	}
	if cfg.TargetYear < 0 {
		return fmt.Errorf("targetYear must be non-negative, got %d", cfg.TargetYear)
	}

	sc := cfg.samplerConfig()

	return sc.Validate()
}

// samplerConfig projects the pipeline configuration onto the sampler's.
func (cfg *Config) samplerConfig() stratify.Config {
	sc := stratify.Config{
		TargetSamples:    cfg.TargetSamples,
		Seed:             cfg.Seed,
		MinWords:         cfg.MinWords,
		StratifyByRating: cfg.StratifyByRating,
		Buckets:          cfg.Buckets,
	}
	if len(sc.Buckets) == 0 {
		sc.Buckets = stratify.DefaultBuckets()
	}

	return sc
}

// LoadConfig reads a yaml run configuration from path, applies defaults,
// and validates it.
//
// Parameters:
//   - path: Path to the yaml file
//
// Returns:
//   - *Config: Parsed and validated configuration
//   - error: Read, parse, or validation failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
