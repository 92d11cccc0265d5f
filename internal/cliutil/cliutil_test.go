package cliutil

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/netflix-text-analytics/pkg/apperrors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// newContext builds a cli.Context with the shared flags parsed from args.
func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range SharedFlags() {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoad_Defaults(t *testing.T) {
	var logs bytes.Buffer
	s, err := Load(newContext(t), &logs)
	require.NoError(t, err)

	require.Equal(t, "ta.csv", s.Config.Input)
	require.False(t, s.Config.StripMarkup)
	require.NotEmpty(t, s.RunID)

	env := s.Env()
	require.NotNil(t, env.Language)
	require.Equal(t, 0.5, env.Language.MinEnglish)
}

func TestLoad_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: from-config.csv\nstrip_markup: true\nlogging: {format: text}\n"), 0644))

	var logs bytes.Buffer
	c := newContext(t, "--config", path, "--input", "from-flag.csv", "--skip-language-check", "--log-format", "json")
	s, err := Load(c, &logs)
	require.NoError(t, err)

	require.Equal(t, "from-flag.csv", s.Config.Input)
	require.True(t, s.Config.StripMarkup)
	require.Equal(t, "json", s.Config.Logging.Format)
	require.Nil(t, s.Env().Language)

	s.Logger.Info("hello")
	require.Contains(t, logs.String(), `"run_id":"`+s.RunID+`"`)
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing config file", args: []string{"--config", filepath.Join(os.TempDir(), "ntx-missing", "config.yaml")}},
		{name: "min english out of range", args: []string{"--min-english", "2"}},
		{name: "bad log format", args: []string{"--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			_, err := Load(newContext(t, tt.args...), &logs)
			require.ErrorIs(t, err, apperrors.ErrUsage)
		})
	}
}

func TestFail(t *testing.T) {
	var logs bytes.Buffer
	s, err := Load(newContext(t), &logs)
	require.NoError(t, err)

	exitErr := Fail(s.Logger, apperrors.Wrap(apperrors.StageLoad, apperrors.ErrSchema))

	var coder cli.ExitCoder
	require.ErrorAs(t, exitErr, &coder)
	require.Equal(t, 3, coder.ExitCode())
	require.Contains(t, logs.String(), `"stage":"load"`)
}
