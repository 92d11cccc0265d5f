// Package sentiment scores free text for polarity and subjectivity.
package sentiment

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/analytics"
)

// Scorer returns a polarity in [-1, 1] and a subjectivity in [0, 1] for a
// piece of text. Implementations must be deterministic.
type Scorer interface {
	Score(text string) models.Sentiment
}

//go:embed lexicon.yaml
var defaultLexicon []byte

// Entry is the sentiment carried by a single lexicon word.
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// Lexicon is the word list a LexiconScorer assesses text against.
type Lexicon struct {
	Words        map[string]Entry   `yaml:"words"`
	Intensifiers map[string]float64 `yaml:"intensifiers"`
	Negations    []string           `yaml:"negations"`
}

// DefaultLexicon returns the embedded English lexicon.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a lexicon from a YAML file.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	return lex, nil
}

// ParseLexicon decodes and validates a YAML lexicon.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, err
	}
	if len(lex.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}
	for w, e := range lex.Words {
		if math.IsNaN(e.Polarity) || e.Polarity < -1 || e.Polarity > 1 {
			return nil, fmt.Errorf("word %q: polarity %v out of range", w, e.Polarity)
		}
		if math.IsNaN(e.Subjectivity) || e.Subjectivity < 0 || e.Subjectivity > 1 {
			return nil, fmt.Errorf("word %q: subjectivity %v out of range", w, e.Subjectivity)
		}
	}
	for w, m := range lex.Intensifiers {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("intensifier %q: multiplier %v is not finite", w, m)
		}
	}
	return &lex, nil
}

// LexiconScorer averages the lexicon entries found in the text. An
// intensifier scales the next assessed word; a negation flips and halves
// its polarity. Both reset at clause punctuation.
type LexiconScorer struct {
	words        map[string]Entry
	intensifiers map[string]float64
	negations    map[string]struct{}
}

// NewLexiconScorer builds a scorer from lex. Keys are matched lower-case.
func NewLexiconScorer(lex *Lexicon) *LexiconScorer {
	s := &LexiconScorer{
		words:        make(map[string]Entry, len(lex.Words)),
		intensifiers: make(map[string]float64, len(lex.Intensifiers)),
		negations:    make(map[string]struct{}, len(lex.Negations)),
	}
	for w, e := range lex.Words {
		s.words[strings.ToLower(w)] = e
	}
	for w, m := range lex.Intensifiers {
		s.intensifiers[strings.ToLower(w)] = m
	}
	for _, w := range lex.Negations {
		s.negations[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// Score implements Scorer.
func (s *LexiconScorer) Score(text string) models.Sentiment {
	var polarity, subjectivity float64
	assessed := 0

	multiplier := 1.0
	negated := false
	for _, tok := range analytics.Tokenize(text) {
		word := strings.ToLower(tok)

		if _, ok := s.negations[word]; ok {
			negated = true
			continue
		}
		if !analytics.IsAlnum(word) {
			multiplier, negated = 1.0, false
			continue
		}
		if m, ok := s.intensifiers[word]; ok {
			multiplier *= m
			continue
		}
		e, ok := s.words[word]
		if !ok {
			continue
		}

		p := e.Polarity * multiplier
		if negated {
			p *= -0.5
		}
		polarity += clamp(p, -1, 1)
		subjectivity += clamp(e.Subjectivity*multiplier, 0, 1)
		assessed++
		multiplier, negated = 1.0, false
	}

	if assessed == 0 {
		return models.Sentiment{}
	}
	return models.Sentiment{
		Polarity:     clamp(polarity/float64(assessed), -1, 1),
		Subjectivity: clamp(subjectivity/float64(assessed), 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
