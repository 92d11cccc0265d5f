package manifest

import "github.com/dtnitsch/netflix-text-analytics/pkg/detector"

// Summary describes one pipeline run. It is printed to stdout as YAML so a
// caller can see what was produced without opening the output file.
type Summary struct {
	Command     string `yaml:"command"`
	RunID       string `yaml:"run_id"`
	GeneratedAt string `yaml:"generated_at"`
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Rows        int    `yaml:"rows"`

	// common-words
	Tokens         int      `yaml:"tokens,omitempty"`
	FilteredTokens int      `yaml:"filtered_tokens,omitempty"`
	DistinctTokens int      `yaml:"distinct_tokens,omitempty"`
	TopKeywords    []string `yaml:"top_keywords,omitempty"`

	// sentiment
	MeanPolarity     *float64 `yaml:"mean_polarity,omitempty"`
	MeanSubjectivity *float64 `yaml:"mean_subjectivity,omitempty"`

	Language     *detector.Report `yaml:"language,omitempty"`
	OutputBytes  int              `yaml:"output_bytes"`
	OutputSHA256 string           `yaml:"output_sha256"`
	DurationMS   int64            `yaml:"duration_ms"`
}
