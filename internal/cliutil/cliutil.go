// Package cliutil resolves command settings from flags, NTX_* environment
// variables and the YAML config file, in that order of precedence.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dtnitsch/netflix-text-analytics/internal/common"
	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/dtnitsch/netflix-text-analytics/pkg/config"
	"github.com/dtnitsch/netflix-text-analytics/pkg/detector"
	"github.com/dtnitsch/netflix-text-analytics/pkg/pipeline"
	"github.com/urfave/cli/v2"
)

// Flag names shared by every command.
const (
	FlagConfig            = "config"
	FlagInput             = "input"
	FlagOutput            = "output"
	FlagQuiet             = "quiet"
	FlagLogLevel          = "log-level"
	FlagLogFormat         = "log-format"
	FlagStripMarkup       = "strip-markup"
	FlagSkipLanguageCheck = "skip-language-check"
	FlagMinEnglish        = "min-english"
	FlagTop               = "top"
	FlagFoldCase          = "fold-case"
	FlagLexicon           = "lexicon"
	FlagNoSummary         = "no-summary"
)

// SharedFlags returns the flags both commands accept.
func SharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagConfig, Usage: "YAML file with defaults for every flag", EnvVars: []string{"NTX_CONFIG"}},
		&cli.StringFlag{Name: FlagInput, Aliases: []string{"i"}, Usage: "input CSV with title and description columns (default: ta.csv)", EnvVars: []string{"NTX_INPUT"}},
		&cli.StringFlag{Name: FlagOutput, Aliases: []string{"o"}, Usage: "output CSV path", EnvVars: []string{"NTX_OUTPUT"}},
		&cli.BoolFlag{Name: FlagQuiet, Aliases: []string{"q"}, Usage: "only log errors", EnvVars: []string{"NTX_QUIET"}},
		&cli.StringFlag{Name: FlagLogLevel, Usage: "debug, info, warn or error", EnvVars: []string{"NTX_LOG_LEVEL"}},
		&cli.StringFlag{Name: FlagLogFormat, Usage: "json or text", EnvVars: []string{"NTX_LOG_FORMAT"}},
		&cli.BoolFlag{Name: FlagStripMarkup, Usage: "remove HTML tags and entities before analysis", EnvVars: []string{"NTX_STRIP_MARKUP"}},
		&cli.BoolFlag{Name: FlagSkipLanguageCheck, Usage: "do not check that descriptions are English", EnvVars: []string{"NTX_SKIP_LANGUAGE_CHECK"}},
		&cli.Float64Flag{Name: FlagMinEnglish, Usage: "warn when fewer than this share of descriptions are English", EnvVars: []string{"NTX_MIN_ENGLISH"}},
		&cli.BoolFlag{Name: FlagNoSummary, Usage: "do not print the run summary", EnvVars: []string{"NTX_NO_SUMMARY"}},
	}
}

// Settings is the resolved configuration for one command invocation.
type Settings struct {
	Config *config.Config
	Logger *slog.Logger
	RunID  string
}

// Load reads the config file and applies flag and environment overrides.
func Load(c *cli.Context, logOut io.Writer) (*Settings, error) {
	cfg, err := config.Load(c.String(FlagConfig))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUsage, err)
	}

	cfg.Input = String(c, FlagInput, cfg.Input)
	cfg.StripMarkup = Bool(c, FlagStripMarkup, cfg.StripMarkup)
	cfg.Language.Skip = Bool(c, FlagSkipLanguageCheck, cfg.Language.Skip)
	cfg.Language.MinEnglish = Float64(c, FlagMinEnglish, cfg.Language.MinEnglish)
	cfg.Logging.Level = String(c, FlagLogLevel, cfg.Logging.Level)
	cfg.Logging.Format = String(c, FlagLogFormat, cfg.Logging.Format)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrUsage, err)
	}

	runID := common.NewRunID()
	logger := common.NewLogger(logOut, common.LoggerOptions{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Quiet:  c.Bool(FlagQuiet),
	}).With("run_id", runID)

	return &Settings{Config: cfg, Logger: logger, RunID: runID}, nil
}

// Env builds the pipeline environment, including the language guard unless
// it was disabled.
func (s *Settings) Env() *pipeline.Env {
	env := &pipeline.Env{Logger: s.Logger, RunID: s.RunID}
	if !s.Config.Language.Skip {
		env.Language = &pipeline.LanguageGuard{
			Checker:    detector.New(s.Config.Language.SampleSize),
			MinEnglish: s.Config.Language.MinEnglish,
		}
	}
	return env
}

// String returns the flag value if it was set, else fallback.
func String(c *cli.Context, name, fallback string) string {
	if c.IsSet(name) {
		return c.String(name)
	}
	return fallback
}

// Bool returns the flag value if it was set, else fallback.
func Bool(c *cli.Context, name string, fallback bool) bool {
	if c.IsSet(name) {
		return c.Bool(name)
	}
	return fallback
}

// Int returns the flag value if it was set, else fallback.
func Int(c *cli.Context, name string, fallback int) int {
	if c.IsSet(name) {
		return c.Int(name)
	}
	return fallback
}

// Float64 returns the flag value if it was set, else fallback.
func Float64(c *cli.Context, name string, fallback float64) float64 {
	if c.IsSet(name) {
		return c.Float64(name)
	}
	return fallback
}

// Fail logs a pipeline failure and converts it into a process exit code.
func Fail(logger *slog.Logger, err error) error {
	logger.Error("pipeline failed", "stage", apperrors.Stage(err), "error", err)
	return cli.Exit("", apperrors.ExitCode(err))
}
