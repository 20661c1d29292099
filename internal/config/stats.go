package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GeneratorConfig holds the system prompt and model parameters used for
// stats generation. The baked-in defaults are complete; a YAML file can
// override any part without a rebuild.
type GeneratorConfig struct {
	SystemPrompt string      `yaml:"system_prompt"`
	Model        ModelConfig `yaml:"model"`
}

// ModelConfig contains per-call model parameters.
type ModelConfig struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

const defaultSystemPrompt = `You are a "Chemical Stats" generator for a game. A user will provide a
chemical element symbol (like 'Fe') or a formula (like 'H2O').
Your task is to return a JSON object with "gamified" stats for it.

RULES:
1. Query Type: Determine if the query is a single 'element' or a 'molecule'.
2. Stats: Provide ratings from 0 to 10 for each stat.
   - stability: 0 = falls apart, 10 = extremely stable (like N2).
   - reactivity: 0 = inert (like He), 10 = extremely reactive (like Fluorine or Sodium).
   - explosiveness: 0 = not explosive (like H2O), 10 = highly explosive (like TNT or Nitroglycerin).
3. Description: Write a short, engaging description (1-2 sentences).
4. Fun Fact: Provide a one-sentence fun fact.

Respond *only* with the JSON object.`

const (
	defaultMaxTokens   = 512
	defaultTemperature = 0.4
)

// LoadGeneratorConfig reads the YAML file at STATS_CONFIG_PATH (default
// configs/stats.yaml). A missing file is not an error: the defaults are
// used as-is.
func LoadGeneratorConfig() (*GeneratorConfig, error) {
	path := os.Getenv("STATS_CONFIG_PATH")
	if path == "" {
		path = "configs/stats.yaml"
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := &GeneratorConfig{}
		applyGeneratorDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg GeneratorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyGeneratorDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyGeneratorDefaults(cfg *GeneratorConfig) {
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = defaultSystemPrompt
	}
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = defaultMaxTokens
	}
	if cfg.Model.Temperature == 0 {
		cfg.Model.Temperature = defaultTemperature
	}
}

// Validate rejects parameter values the model APIs would refuse.
func (g *GeneratorConfig) Validate() error {
	if g.Model.MaxTokens < 0 {
		return fmt.Errorf("negative max_tokens: %d", g.Model.MaxTokens)
	}
	if g.Model.Temperature < 0.0 || g.Model.Temperature > 2.0 {
		return fmt.Errorf("invalid temperature: %f", g.Model.Temperature)
	}
	return nil
}
