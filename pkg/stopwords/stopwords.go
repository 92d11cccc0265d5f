// Package stopwords provides the fixed English stopword list used by the
// frequency pipeline. The list is reference data: it is loaded once and
// never mutated.
package stopwords

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
)

//go:embed english.txt
var englishList string

// Set is an immutable stopword set. The zero value is empty.
type Set struct {
	words map[string]struct{}
}

var (
	englishOnce sync.Once
	english     Set
)

// English returns the embedded English list. Entries are lowercase and
// membership is an exact, case-sensitive match.
func English() Set {
	englishOnce.Do(func() {
		english = Parse(englishList)
	})
	return english
}

// Parse builds a Set from newline-separated words. Blank lines are ignored.
func Parse(list string) Set {
	words := make(map[string]struct{})
	scan := bufio.NewScanner(strings.NewReader(list))
	for scan.Scan() {
		w := strings.TrimSpace(scan.Text())
		if w != "" {
			words[w] = struct{}{}
		}
	}
	return Set{words: words}
}

// New builds a Set from the given words.
func New(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// Contains reports whether word is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}
