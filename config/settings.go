package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML overlay for model and language tuning.
// Environment variables provide the defaults; only fields present in the
// file are applied.
type Settings struct {
	Summary struct {
		Model         string  `yaml:"model"`
		MaxTokens     int     `yaml:"max_tokens"`
		Temperature   float64 `yaml:"temperature"`
		MaxInputChars int     `yaml:"max_input_chars"`
	} `yaml:"summary"`
	Transcript struct {
		Languages []string `yaml:"languages"`
	} `yaml:"transcript"`
}

// applySettings overlays the settings file at path onto cfg. A missing
// file is not an error; an unreadable or malformed one is.
func applySettings(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if settings.Summary.Model != "" {
		cfg.Summary.Model = settings.Summary.Model
	}
	if settings.Summary.MaxTokens > 0 {
		cfg.Summary.MaxTokens = settings.Summary.MaxTokens
	}
	if settings.Summary.Temperature > 0 {
		cfg.Summary.Temperature = settings.Summary.Temperature
	}
	if settings.Summary.MaxInputChars > 0 {
		cfg.Summary.MaxInputChars = settings.Summary.MaxInputChars
	}
	if len(settings.Transcript.Languages) > 0 {
		cfg.Transcript.Languages = settings.Transcript.Languages
	}

	return nil
}
