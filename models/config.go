// Package models defines data structures shared by the loaders, pipelines and writers.
package models

// CommonWordsConfig holds runtime configuration for the common-words command.
// Values come from the YAML config file, the environment and CLI flags.
type CommonWordsConfig struct {
	InputPath   string
	OutputPath  string
	Top         int
	FoldCase    bool
	StripMarkup bool
}

// SentimentConfig holds runtime configuration for the sentiment command.
type SentimentConfig struct {
	InputPath   string
	OutputPath  string
	LexiconPath string
	StripMarkup bool
}
