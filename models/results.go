package models

// WordCount is one entry of a ranked frequency list.
type WordCount struct {
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

// Sentiment is a polarity/subjectivity pair.
// Polarity is in [-1.0, 1.0] and Subjectivity in [0.0, 1.0].
type Sentiment struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// SentimentRow is one line of the sentiment output file.
type SentimentRow struct {
	Title       string
	Description string
	Sentiment
}
