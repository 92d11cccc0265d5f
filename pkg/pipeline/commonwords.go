package pipeline

import (
	"fmt"
	"time"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/analytics"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/manifest"
	"github.com/dtnitsch/netflix-text-analytics/pkg/mapreduce"
	"github.com/dtnitsch/netflix-text-analytics/pkg/stopwords"
	"github.com/dtnitsch/netflix-text-analytics/pkg/table"
)

// RunCommonWords ranks the most frequent non-stopword tokens across all
// titles and descriptions and writes them as Word,Count.
func RunCommonWords(env *Env, cfg models.CommonWordsConfig, stops stopwords.Set) (*manifest.Summary, error) {
	started := env.now()
	log := env.logger().With("command", "common-words")

	if cfg.Top <= 0 {
		return nil, fmt.Errorf("%w: top must be positive, got %d", apperrors.ErrUsage, cfg.Top)
	}

	tbl, err := table.Load(cfg.InputPath, models.ColumnTitle, models.ColumnDescription)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageLoad, err)
	}
	log.Info("loaded input", "path", cfg.InputPath, "rows", tbl.Len())

	titles := tbl.Column(models.ColumnTitle)
	descriptions := tbl.Column(models.ColumnDescription)
	if cfg.StripMarkup {
		if titles, err = stripMarkup(titles); err != nil {
			return nil, apperrors.Wrap(apperrors.StageAggregate, err)
		}
		if descriptions, err = stripMarkup(descriptions); err != nil {
			return nil, apperrors.Wrap(apperrors.StageAggregate, err)
		}
	}
	langReport := env.checkLanguage(descriptions)
	corpus := analytics.BuildCorpus(titles, descriptions)

	a := analytics.New(stops, cfg.FoldCase)
	tokens := analytics.Tokenize(corpus)
	filtered := a.Filter(tokens)
	log.Debug("tokenized corpus", "tokens", len(tokens), "filtered", len(filtered))

	counts := mapreduce.Map(filtered)
	ranked := counts.MostCommon(cfg.Top)

	data, err := table.WriteWordCounts(cfg.OutputPath, ranked)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageWrite, err)
	}
	log.Info("wrote common words", "path", cfg.OutputPath, "entries", len(ranked))

	summary := &manifest.Summary{
		Command:        "common-words",
		RunID:          env.RunID,
		GeneratedAt:    started.UTC().Format(time.RFC3339),
		Input:          cfg.InputPath,
		Output:         cfg.OutputPath,
		Rows:           tbl.Len(),
		Tokens:         len(tokens),
		FilteredTokens: len(filtered),
		DistinctTokens: counts.Len(),
		TopKeywords:    mapreduce.TopKeywords(ranked),
		Language:       langReport,
	}
	finish(env, summary, data, started)
	return summary, nil
}
