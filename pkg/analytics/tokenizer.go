package analytics

import (
	"strings"
	"unicode"
)

// openers are peeled off the front of a whitespace-delimited chunk.
const openers = "\"'`([{<“‘«"

// closers are peeled off the back of a chunk, in original order.
const closers = ".,;:!?)]}>\"'”’»…"

// separators always stand alone, wherever they appear in a chunk.
const separators = ";@#$%&?!()[]{}<>\"“”«»"

// contractionSuffixes are split from the end of a word, longest first.
var contractionSuffixes = []string{"n't", "'ll", "'re", "'ve", "'s", "'m", "'d"}

// abbreviations keep their trailing period unless they end the text.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "st": {}, "jr": {}, "sr": {},
	"vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "u.s": {}, "u.k": {}, "mt": {}, "ft": {},
	"lt": {}, "col": {}, "gen": {}, "sgt": {}, "capt": {}, "rev": {}, "inc": {}, "ltd": {}, "co": {},
}

// fusedWords are split into two tokens regardless of case.
var fusedWords = map[string]int{
	"cannot": 3,
	"gonna":  3,
	"gotta":  3,
	"wanna":  3,
}

// Tokenize splits text into word and punctuation tokens the way a Penn
// Treebank tokenizer does: chunks are separated by whitespace, surrounding
// punctuation becomes its own token, and English contractions are split
// ("don't" -> "do", "n't"). Case is preserved. Hyphens, inner periods and
// digit-grouping commas stay inside their token. Only the period that ends
// the text is treated as sentence-final: abbreviations ("Mr.", "etc.") and
// single-letter initials keep theirs elsewhere.
func Tokenize(text string) []string {
	var tokens []string
	chunks := strings.Fields(text)
	for i, chunk := range chunks {
		tokens = splitChunk(chunk, i == len(chunks)-1, tokens)
	}
	return tokens
}

func splitChunk(chunk string, last bool, out []string) []string {
	runes := []rune(normalizeApostrophes(chunk))

	start := 0
	for start < len(runes) && strings.ContainsRune(openers, runes[start]) {
		out = append(out, string(runes[start]))
		start++
	}

	end := len(runes)
	for end > start && strings.ContainsRune(closers, runes[end-1]) {
		end--
	}
	if end < len(runes) && runes[end] == '.' && !(last && end == len(runes)-1) && isAbbreviation(runes[start:end]) {
		end++
	}
	trailing := runes[end:]

	out = splitBody(runes[start:end], out)

	for _, r := range trailing {
		out = append(out, string(r))
	}
	return out
}

func isAbbreviation(stem []rune) bool {
	if len(stem) == 1 {
		return unicode.IsLetter(stem[0])
	}
	_, ok := abbreviations[strings.ToLower(string(stem))]
	return ok
}

func normalizeApostrophes(s string) string {
	if !strings.ContainsRune(s, '’') {
		return s
	}
	// Only inner apostrophes act as contraction marks; edges stay quotes.
	runes := []rune(s)
	for i := 1; i < len(runes)-1; i++ {
		if runes[i] == '’' && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
			runes[i] = '\''
		}
	}
	return string(runes)
}

func splitBody(body []rune, out []string) []string {
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = splitWord(string(cur), out)
			cur = cur[:0]
		}
	}

	for i := 0; i < len(body); i++ {
		r := body[i]
		switch {
		case strings.ContainsRune(separators, r):
			flush()
			out = append(out, string(r))
		case (r == ',' || r == ':') && !between(body, i, unicode.IsDigit):
			flush()
			out = append(out, string(r))
		case r == '-' && i+1 < len(body) && body[i+1] == '-':
			flush()
			j := i
			for j < len(body) && body[j] == '-' {
				j++
			}
			out = append(out, string(body[i:j]))
			i = j - 1
		case r == '.' && i+2 < len(body) && body[i+1] == '.' && body[i+2] == '.':
			flush()
			out = append(out, "...")
			i += 2
		case r == '…':
			flush()
			out = append(out, string(r))
		default:
			cur = append(cur, r)
		}
	}
	flush()
	return out
}

func between(body []rune, i int, pred func(rune) bool) bool {
	return i > 0 && i+1 < len(body) && pred(body[i-1]) && pred(body[i+1])
}

// splitWord separates contraction suffixes and fused words from a single
// punctuation-free word.
func splitWord(word string, out []string) []string {
	if at, ok := fusedWords[strings.ToLower(word)]; ok && len(word) > at {
		return append(out, word[:at], word[at:])
	}
	for _, suffix := range contractionSuffixes {
		at := len(word) - len(suffix)
		if at > 0 && strings.EqualFold(word[at:], suffix) {
			return append(out, word[:at], word[at:])
		}
	}
	return append(out, word)
}
