package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/storage"
)

var (
	wordCountHeader = []string{"Word", "Count"}
	sentimentHeader = []string{models.ColumnTitle, models.ColumnDescription, "Polarity", "Subjectivity"}
)

// WriteWordCounts writes the ranked list with a Word,Count header.
func WriteWordCounts(path string, ranked []models.WordCount) ([]byte, error) {
	records := make([][]string, 0, len(ranked)+1)
	records = append(records, wordCountHeader)
	for _, wc := range ranked {
		records = append(records, []string{wc.Word, strconv.Itoa(wc.Count)})
	}
	return save(path, records)
}

// WriteSentiment writes one line per scored row.
func WriteSentiment(path string, rows []models.SentimentRow) ([]byte, error) {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, sentimentHeader)
	for _, r := range rows {
		records = append(records, []string{
			r.Title,
			r.Description,
			FormatFloat(r.Polarity),
			FormatFloat(r.Subjectivity),
		})
	}
	return save(path, records)
}

// save encodes records and stores them atomically. The encoded bytes are
// returned so callers can fingerprint the output.
func save(path string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", apperrors.ErrIO, path, err)
	}

	s := &storage.Storage{}
	if err := s.SaveFile(path, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrIO, path, err)
	}
	return buf.Bytes(), nil
}

// FormatFloat renders f in its shortest round-trip form, always with a
// fractional part ("0.0", "0.5", "-0.125").
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
