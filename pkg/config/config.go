// Package config loads the optional YAML file that supplies defaults for
// every CLI flag. Flags and NTX_* environment variables override it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultInput             = "ta.csv"
	DefaultCommonWordsOutput = "common_words.csv"
	DefaultSentimentOutput   = "sentiment_analysis.csv"
	DefaultTop               = 10
	DefaultMinEnglish        = 0.5
	DefaultLanguageSample    = 200
)

// Config is the root configuration.
type Config struct {
	Input       string            `yaml:"input"`
	StripMarkup bool              `yaml:"strip_markup"`
	CommonWords CommonWordsConfig `yaml:"common_words"`
	Sentiment   SentimentConfig   `yaml:"sentiment"`
	Language    LanguageConfig    `yaml:"language"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// CommonWordsConfig configures the frequency report.
type CommonWordsConfig struct {
	Output   string `yaml:"output"`
	Top      int    `yaml:"top"`
	FoldCase bool   `yaml:"fold_case"`
}

// SentimentConfig configures the sentiment report.
type SentimentConfig struct {
	Output  string `yaml:"output"`
	Lexicon string `yaml:"lexicon"`
}

// LanguageConfig controls the English check run before analysis.
type LanguageConfig struct {
	Skip       bool    `yaml:"skip"`
	MinEnglish float64 `yaml:"min_english"`
	SampleSize int     `yaml:"sample_size"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file if path is non-empty and fills in defaults
// for anything it leaves unset.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		applyDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if c.CommonWords.Top <= 0 {
		return fmt.Errorf("common_words.top must be positive, got %d", c.CommonWords.Top)
	}
	if c.Language.MinEnglish < 0 || c.Language.MinEnglish > 1 {
		return fmt.Errorf("language.min_english must be within [0, 1], got %v", c.Language.MinEnglish)
	}
	if c.Language.SampleSize < 0 {
		return fmt.Errorf("language.sample_size cannot be negative")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format must be json or text, got %q", c.Logging.Format)
	}
	return nil
}

func defaultConfig() *Config {
	return &Config{
		Input: DefaultInput,
		CommonWords: CommonWordsConfig{
			Output: DefaultCommonWordsOutput,
			Top:    DefaultTop,
		},
		Sentiment: SentimentConfig{
			Output: DefaultSentimentOutput,
		},
		Language: LanguageConfig{
			MinEnglish: DefaultMinEnglish,
			SampleSize: DefaultLanguageSample,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// applyDefaults restores defaults for fields a file explicitly blanked.
func applyDefaults(cfg *Config) {
	d := defaultConfig()
	if cfg.Input == "" {
		cfg.Input = d.Input
	}
	if cfg.CommonWords.Output == "" {
		cfg.CommonWords.Output = d.CommonWords.Output
	}
	if cfg.Sentiment.Output == "" {
		cfg.Sentiment.Output = d.Sentiment.Output
	}
	if cfg.Language.SampleSize == 0 {
		cfg.Language.SampleSize = d.Language.SampleSize
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
}
