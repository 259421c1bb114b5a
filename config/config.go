package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLogName is the conversation log looked up in the working directory.
const DefaultLogName = "llm_log.jsonl"

// FileName is the config file looked up in the working directory.
const FileName = "consistency.yaml"

// Config holds all configuration for the consistency tool.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Score    ScoreConfig    `yaml:"score"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// InputConfig holds ingestion configuration.
type InputConfig struct {
	Path string `yaml:"path"` // relative to the working directory; may be a ** glob
}

// AnalyzerConfig holds tokenizer configuration.
type AnalyzerConfig struct {
	ExtraStopwords []string `yaml:"extra_stopwords"`
}

// ScoreConfig holds scoring configuration.
type ScoreConfig struct {
	DiffSeed int `yaml:"diff_seed"` // smoothing counter for the diff average
	SameSeed int `yaml:"same_seed"` // smoothing counter for the overlap average
	Workers  int `yaml:"workers"`
}

// ReportConfig holds output configuration.
type ReportConfig struct {
	Format        string  `yaml:"format"` // "text" or "json"
	PassThreshold float64 `yaml:"pass_threshold"`
	WarnThreshold float64 `yaml:"warn_threshold"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level       string   `yaml:"level"`
	Format      string   `yaml:"format"`
	TraceModels []string `yaml:"trace_models"` // models whose pair comparisons are logged
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Path: DefaultLogName,
		},
		Score: ScoreConfig{
			DiffSeed: 1,
			SameSeed: 1,
			Workers:  1,
		},
		Report: ReportConfig{
			Format:        "text",
			PassThreshold: 0.5,
			WarnThreshold: 0.3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for consistency.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".consistency", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the scorer or reporters cannot work with.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input.path must not be empty")
	}
	if c.Score.DiffSeed < 1 || c.Score.SameSeed < 1 {
		return fmt.Errorf("score seeds must be at least 1 (diff_seed=%d, same_seed=%d)", c.Score.DiffSeed, c.Score.SameSeed)
	}
	if c.Score.Workers < 1 {
		return fmt.Errorf("score.workers must be at least 1, got %d", c.Score.Workers)
	}
	switch c.Report.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown report.format %q", c.Report.Format)
	}
	if c.Report.WarnThreshold > c.Report.PassThreshold {
		return fmt.Errorf("report.warn_threshold (%g) is above report.pass_threshold (%g)", c.Report.WarnThreshold, c.Report.PassThreshold)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// Traced reports whether pair comparisons for model should be logged.
func (c *Config) Traced(model string) bool {
	for _, m := range c.Logging.TraceModels {
		if m == model {
			return true
		}
	}
	return false
}
