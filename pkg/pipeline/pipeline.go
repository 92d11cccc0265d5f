// Package pipeline runs the two batch reports. Each run is a single
// synchronous pass: any stage failure aborts it before output is written.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dtnitsch/netflix-text-analytics/internal/common"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/detector"
	"github.com/dtnitsch/netflix-text-analytics/pkg/manifest"
	"github.com/dtnitsch/netflix-text-analytics/pkg/parser"
)

// LanguageChecker reports which languages a set of texts is written in.
// *detector.Detector satisfies it.
type LanguageChecker interface {
	Check(texts []string) detector.Report
}

// LanguageGuard warns when too few texts look English.
type LanguageGuard struct {
	Checker    LanguageChecker
	MinEnglish float64
}

// Env carries the collaborators shared by both pipelines.
type Env struct {
	Logger   *slog.Logger
	RunID    string
	Language *LanguageGuard
	// Now is overridable for tests.
	Now func() time.Time
}

func (e *Env) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// checkLanguage runs the guard if one is configured. A low English share is
// logged, never fatal: the run still uses the English resources.
func (e *Env) checkLanguage(texts []string) *detector.Report {
	if e.Language == nil || e.Language.Checker == nil {
		return nil
	}
	report := e.Language.Checker.Check(texts)
	share := report.EnglishShare()
	if share < e.Language.MinEnglish {
		e.logger().Warn("input does not look English; stopwords and lexicon are English-only",
			"english_share", share,
			"min_english", e.Language.MinEnglish,
			"checked", report.Checked,
			"languages", report.Languages,
		)
	} else {
		e.logger().Debug("language check passed", "english_share", share, "checked", report.Checked)
	}
	return &report
}

func stripMarkup(values []string) ([]string, error) {
	p := &parser.Parser{}
	clean, err := p.StripAll(values)
	if err != nil {
		return nil, fmt.Errorf("%w: strip markup: %w", apperrors.ErrEncoding, err)
	}
	return clean, nil
}

func finish(env *Env, s *manifest.Summary, output []byte, started time.Time) {
	s.OutputBytes = len(output)
	s.OutputSHA256 = common.ContentHash(output)
	s.DurationMS = env.now().Sub(started).Milliseconds()
}
