package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Bhavyaa-T/Quiz-result-analysis/internal/perplexity"
)

// Run holds the resolved settings for one invocation. Flags are
// applied on top by the CLI; nothing here is global.
type Run struct {
	Quizzes        string `yaml:"quizzes"`
	Results        string `yaml:"results"`
	OutputDir      string `yaml:"output_dir"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UI             string `yaml:"ui"`
}

// Default returns the built-in settings.
func Default() Run {
	return Run{
		Quizzes:        "quizzes.csv",
		Results:        "results.csv",
		OutputDir:      "analyses",
		Model:          "sonar-pro",
		TimeoutSeconds: int(perplexity.DefaultTimeout / time.Second),
		UI:             "auto",
	}
}

// Load reads, parses, and validates a run config file. File values
// overlay the built-in defaults.
func Load(path string) (Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Run{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Run{}, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults with unknown fields rejected.
func Parse(data []byte) (Run, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Run{}, fmt.Errorf("parse config: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Run{}, fmt.Errorf("parse config: multiple YAML documents are not supported")
		}
		return Run{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
