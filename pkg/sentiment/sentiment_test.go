package sentiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/stretchr/testify/require"
)

func defaultScorer(t *testing.T) *LexiconScorer {
	t.Helper()
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	return NewLexiconScorer(lex)
}

func TestDefaultLexicon(t *testing.T) {
	lex, err := DefaultLexicon()
	require.NoError(t, err)
	require.Contains(t, lex.Words, "good")
	require.Contains(t, lex.Words, "true")
	require.Contains(t, lex.Negations, "no")
	require.Equal(t, 1.3, lex.Intensifiers["very"])
}

func TestLexiconScorer_Score(t *testing.T) {
	s := defaultScorer(t)

	tests := []struct {
		name             string
		text             string
		wantPolarity     float64
		wantSubjectivity float64
	}{
		{name: "empty", text: "", wantPolarity: 0, wantSubjectivity: 0},
		{name: "no lexicon words", text: "A man walks into a room.", wantPolarity: 0, wantSubjectivity: 0},
		{name: "single adjective", text: "A good show", wantPolarity: 0.7, wantSubjectivity: 0.6},
		{name: "case insensitive", text: "GOOD", wantPolarity: 0.7, wantSubjectivity: 0.6},
		{name: "intensifier", text: "A very good show", wantPolarity: 0.91, wantSubjectivity: 0.78},
		{name: "negation", text: "not a good show", wantPolarity: -0.35, wantSubjectivity: 0.6},
		{name: "contracted negation", text: "it isn't good", wantPolarity: -0.35, wantSubjectivity: 0.6},
		{name: "punctuation resets negation", text: "Not now. Good.", wantPolarity: 0.7, wantSubjectivity: 0.6},
		{name: "average", text: "good and bad", wantPolarity: 0, wantSubjectivity: (0.6 + 0.67) / 2},
		{name: "subjectivity clamped", text: "extremely wonderful", wantPolarity: 1, wantSubjectivity: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.text)
			require.InDelta(t, tt.wantPolarity, got.Polarity, 1e-9)
			require.InDelta(t, tt.wantSubjectivity, got.Subjectivity, 1e-9)
		})
	}
}

func TestLexiconScorer_Ranges(t *testing.T) {
	s := defaultScorer(t)

	texts := []string{
		"A very very very extremely wonderful, perfect, excellent day",
		"Not the worst, never terrible, no awful evil",
		"When a young boy vanishes, a small town uncovers a mystery involving secret experiments.",
		"!!!",
	}
	for _, text := range texts {
		got := s.Score(text)
		require.GreaterOrEqual(t, got.Polarity, -1.0)
		require.LessOrEqual(t, got.Polarity, 1.0)
		require.GreaterOrEqual(t, got.Subjectivity, 0.0)
		require.LessOrEqual(t, got.Subjectivity, 1.0)
		require.Equal(t, got, s.Score(text))
	}
}

func TestParseLexicon_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "words: ["},
		{name: "no words", data: "intensifiers: {very: 1.3}"},
		{name: "polarity out of range", data: "words: {great: {polarity: 2, subjectivity: 0.5}}"},
		{name: "subjectivity out of range", data: "words: {great: {polarity: 0.5, subjectivity: -0.1}}"},
		{name: "polarity nan", data: "words: {great: {polarity: .nan, subjectivity: 0.5}}"},
		{name: "subjectivity nan", data: "words: {great: {polarity: 0.5, subjectivity: .NaN}}"},
		{name: "intensifier infinite", data: "words: {great: {polarity: 0.5, subjectivity: 0.5}}\nintensifiers: {very: .inf}"},
		{name: "intensifier nan", data: "words: {great: {polarity: 0.5, subjectivity: 0.5}}\nintensifiers: {very: .nan}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLexicon([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("words:\n  Gripping: {polarity: 0.4, subjectivity: 0.8}\n"), 0644))

	lex, err := LoadLexicon(path)
	require.NoError(t, err)

	got := NewLexiconScorer(lex).Score("a gripping tale")
	require.Equal(t, models.Sentiment{Polarity: 0.4, Subjectivity: 0.8}, got)

	_, err = LoadLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
