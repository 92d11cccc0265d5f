package commonwords

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/netflix-text-analytics/internal/cliutil"
	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/dtnitsch/netflix-text-analytics/pkg/manifest"
	"github.com/dtnitsch/netflix-text-analytics/pkg/pipeline"
	"github.com/dtnitsch/netflix-text-analytics/pkg/stopwords"
	"github.com/urfave/cli/v2"
)

// Flags returns the flags specific to the common-words command.
func Flags() []cli.Flag {
	return append(cliutil.SharedFlags(),
		&cli.IntFlag{Name: cliutil.FlagTop, Aliases: []string{"n"}, Usage: "number of words to report (default: 10)", EnvVars: []string{"NTX_TOP"}},
		&cli.BoolFlag{Name: cliutil.FlagFoldCase, Usage: "lower-case words before stopword filtering and counting", EnvVars: []string{"NTX_FOLD_CASE"}},
	)
}

func CommonWordsAction(c *cli.Context) error {
	return run(c, os.Stdout, os.Stderr)
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	settings, err := cliutil.Load(c, stderr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	cfg := settings.Config

	runCfg := models.CommonWordsConfig{
		InputPath:   cfg.Input,
		OutputPath:  cliutil.String(c, cliutil.FlagOutput, cfg.CommonWords.Output),
		Top:         cliutil.Int(c, cliutil.FlagTop, cfg.CommonWords.Top),
		FoldCase:    cliutil.Bool(c, cliutil.FlagFoldCase, cfg.CommonWords.FoldCase),
		StripMarkup: cfg.StripMarkup,
	}

	summary, err := pipeline.RunCommonWords(settings.Env(), runCfg, stopwords.English())
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
