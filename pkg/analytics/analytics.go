// Package analytics turns raw text into the filtered token stream the
// frequency ranker consumes.
package analytics

import (
	"strings"
	"unicode"

	"github.com/dtnitsch/netflix-text-analytics/pkg/stopwords"
)

// Analytics filters tokens against a stopword set.
type Analytics struct {
	Stopwords stopwords.Set
	// FoldCase lower-cases tokens before the stopword check and counting.
	// Off by default: the reference list is lowercase, so capitalized
	// stopwords ("The") are kept unless this is set.
	FoldCase bool
}

// New returns an Analytics using the given stopword set.
func New(set stopwords.Set, foldCase bool) *Analytics {
	return &Analytics{Stopwords: set, FoldCase: foldCase}
}

// BuildCorpus joins all titles and then all descriptions into one blob,
// separated by single spaces. Empty values contribute empty strings.
func BuildCorpus(titles, descriptions []string) string {
	return strings.Join(titles, " ") + " " + strings.Join(descriptions, " ")
}

// IsAlnum reports whether word is non-empty and made only of letters and
// numbers.
func IsAlnum(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// Filter keeps the alphanumeric, non-stopword tokens in their original order.
func (a *Analytics) Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !IsAlnum(tok) {
			continue
		}
		if a.FoldCase {
			tok = strings.ToLower(tok)
		}
		if a.Stopwords.Contains(tok) {
			continue
		}
		filtered = append(filtered, tok)
	}
	return filtered
}
