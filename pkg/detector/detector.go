// Package detector checks that the text being analysed is English, the only
// language the stopword list and sentiment lexicon cover.
package detector

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// DefaultSampleSize bounds how many texts a check inspects.
const DefaultSampleSize = 200

// candidates are the catalogue languages the detector chooses between.
var candidates = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Turkish,
	lingua.Indonesian,
	lingua.Hindi,
	lingua.Japanese,
	lingua.Korean,
	lingua.Arabic,
}

// Report summarises a language check.
type Report struct {
	Checked      int            `yaml:"checked"`
	English      int            `yaml:"english"`
	Undetermined int            `yaml:"undetermined"`
	Languages    map[string]int `yaml:"languages,omitempty"`
}

// EnglishShare is the fraction of determined texts detected as English.
// It is 1 when nothing could be determined.
func (r Report) EnglishShare() float64 {
	determined := r.Checked - r.Undetermined
	if determined <= 0 {
		return 1
	}
	return float64(r.English) / float64(determined)
}

// Detector wraps a lingua language detector.
type Detector struct {
	detector   lingua.LanguageDetector
	sampleSize int
}

// New builds a Detector that inspects at most sampleSize texts per check.
// A non-positive sampleSize uses DefaultSampleSize.
func New(sampleSize int) *Detector {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(candidates...).
			WithMinimumRelativeDistance(0.1).
			Build(),
		sampleSize: sampleSize,
	}
}

// Detect returns the language name of text, or "" when it is undetermined.
func (d *Detector) Detect(text string) string {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}

// Check inspects the first non-blank texts, in order, up to the sample size.
func (d *Detector) Check(texts []string) Report {
	report := Report{Languages: make(map[string]int)}
	for _, text := range texts {
		if report.Checked >= d.sampleSize {
			break
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		report.Checked++

		name := d.Detect(text)
		if name == "" {
			report.Undetermined++
			continue
		}
		report.Languages[name]++
		if name == lingua.English.String() {
			report.English++
		}
	}
	return report
}
