// Package table reads the title/description export and writes the
// pipelines' CSV reports.
package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/storage"
)

// Load reads a comma-delimited file with a header row and checks that every
// required column is present. Rows keep file order. Short rows are padded
// with empty values; rows with more fields than the header are rejected.
func Load(path string, required ...string) (*models.Table, error) {
	s := &storage.Storage{}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrIO, path, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrEncoding, path, err)
	}

	t, err := Parse(bytes.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", apperrors.ErrIO, path, err)
	}

	for _, col := range required {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%w: %s: missing required column %q", apperrors.ErrSchema, path, col)
		}
	}
	return t, nil
}

// Parse reads CSV records from r. The first record is the header.
func Parse(r io.Reader) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Spreadsheet exports leave quotes inside unquoted cells.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	header = append([]string(nil), header...)

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(row) > len(header) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(row))
		}
		rows = append(rows, row)
	}

	return models.NewTable(header, rows), nil
}

// decode strips a byte-order mark, converting UTF-16 input to UTF-8, and
// rejects bytes that are not valid UTF-8.
func decode(data []byte) ([]byte, error) {
	utf16 := bytes.HasPrefix(data, []byte{0xFE, 0xFF}) || bytes.HasPrefix(data, []byte{0xFF, 0xFE})
	if !utf16 {
		if err := validUTF8(data); err != nil {
			return nil, err
		}
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validUTF8(out); err != nil {
		return nil, err
	}
	return out, nil
}

func validUTF8(data []byte) error {
	if utf8.Valid(data) {
		return nil
	}
	line := 1
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("invalid UTF-8 at byte %d (line %d)", i, line)
		}
		if r == '\n' {
			line++
		}
		i += size
	}
	return fmt.Errorf("invalid UTF-8")
}
