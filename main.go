package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/netflix-text-analytics/internal/commonwords"
	"github.com/dtnitsch/netflix-text-analytics/internal/sentiment"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
)

func main() {
	// A missing .env is fine; NTX_* variables may come from the shell.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "ntx",
		Usage: "word frequency and sentiment reports over a catalogue of titles and descriptions",
		Commands: []*cli.Command{
			{
				Name:   "common-words",
				Usage:  "write the most frequent non-stopword words to a Word,Count CSV",
				Flags:  commonwords.Flags(),
				Action: commonwords.CommonWordsAction,
			},
			{
				Name:   "sentiment",
				Usage:  "write per-row polarity and subjectivity to a CSV",
				Flags:  sentiment.Flags(),
				Action: sentiment.SentimentAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(apperrors.ExitCode(err))
	}
}
