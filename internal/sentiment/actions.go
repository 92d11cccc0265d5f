package sentiment

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/netflix-text-analytics/internal/cliutil"
	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/manifest"
	"github.com/dtnitsch/netflix-text-analytics/pkg/pipeline"
	scoring "github.com/dtnitsch/netflix-text-analytics/pkg/sentiment"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags specific to the sentiment command.
func Flags() []cli.Flag {
	return append(cliutil.SharedFlags(),
		&cli.StringFlag{Name: cliutil.FlagLexicon, Usage: "YAML lexicon replacing the built-in one", EnvVars: []string{"NTX_LEXICON"}},
	)
}

func SentimentAction(c *cli.Context) error {
	return run(c, os.Stdout, os.Stderr)
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	settings, err := cliutil.Load(c, stderr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg := settings.Config

	runCfg := models.SentimentConfig{
		InputPath:   cfg.Input,
		OutputPath:  cliutil.String(c, cliutil.FlagOutput, cfg.Sentiment.Output),
		LexiconPath: cliutil.String(c, cliutil.FlagLexicon, cfg.Sentiment.Lexicon),
		StripMarkup: cfg.StripMarkup,
	}

	lexicon, err := loadLexicon(runCfg.LexiconPath)
	if err != nil {
		return cliutil.Fail(settings.Logger, fmt.Errorf("%w: %w", apperrors.ErrUsage, err))
	}

	summary, err := pipeline.RunSentiment(settings.Env(), runCfg, scoring.NewLexiconScorer(lexicon))
	if err != nil {
		return cliutil.Fail(settings.Logger, err)
	}

	if c.Bool(cliutil.FlagNoSummary) {
		return nil
	}
	out, err := manifest.Render(summary)
	if err != nil {
		return fmt.Errorf("failed to render run summary: %w", err)
	}
	_, err = stdout.Write(out)
	return err
}

func loadLexicon(path string) (*scoring.Lexicon, error) {
	if path == "" {
		return scoring.DefaultLexicon()
	}
	return scoring.LoadLexicon(path)
}
