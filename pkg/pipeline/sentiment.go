package pipeline

import (
	"time"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/manifest"
	"github.com/dtnitsch/netflix-text-analytics/pkg/sentiment"
	"github.com/dtnitsch/netflix-text-analytics/pkg/table"
)

// RunSentiment scores every description and writes
// title,description,Polarity,Subjectivity. Values are written as read;
// markup stripping only affects what is scored.
func RunSentiment(env *Env, cfg models.SentimentConfig, scorer sentiment.Scorer) (*manifest.Summary, error) {
	started := env.now()
	log := env.logger().With("command", "sentiment")

	tbl, err := table.Load(cfg.InputPath, models.ColumnTitle, models.ColumnDescription)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageLoad, err)
	}
	log.Info("loaded input", "path", cfg.InputPath, "rows", tbl.Len())

	titles := tbl.Column(models.ColumnTitle)
	descriptions := tbl.Column(models.ColumnDescription)
	scored := descriptions
	if cfg.StripMarkup {
		if scored, err = stripMarkup(descriptions); err != nil {
			return nil, apperrors.Wrap(apperrors.StageScore, err)
		}
	}
	langReport := env.checkLanguage(scored)

	rows := make([]models.SentimentRow, len(descriptions))
	var sumPolarity, sumSubjectivity float64
	for i := range descriptions {
		s := scorer.Score(scored[i])
		rows[i] = models.SentimentRow{
			Title:       titles[i],
			Description: descriptions[i],
			Sentiment:   s,
		}
		sumPolarity += s.Polarity
		sumSubjectivity += s.Subjectivity
	}

	data, err := table.WriteSentiment(cfg.OutputPath, rows)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.StageWrite, err)
	}
	log.Info("wrote sentiment scores", "path", cfg.OutputPath, "rows", len(rows))

	summary := &manifest.Summary{
		Command:     "sentiment",
		RunID:       env.RunID,
		GeneratedAt: started.UTC().Format(time.RFC3339),
		Input:       cfg.InputPath,
		Output:      cfg.OutputPath,
		Rows:        tbl.Len(),
		Language:    langReport,
	}
	if n := len(rows); n > 0 {
		meanPolarity := sumPolarity / float64(n)
		meanSubjectivity := sumSubjectivity / float64(n)
		summary.MeanPolarity = &meanPolarity
		summary.MeanSubjectivity = &meanSubjectivity
	}
	finish(env, summary, data, started)
	return summary, nil
}
