package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRender(t *testing.T) {
	polarity := 0.25
	s := &Summary{
		Command:      "common-words",
		RunID:        "run-1",
		Input:        "ta.csv",
		Output:       "common_words.csv",
		Rows:         2,
		TopKeywords:  []string{"cat:2"},
		MeanPolarity: &polarity,
	}

	out, err := Render(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, "common-words", decoded["command"])
	require.Equal(t, []any{"cat:2"}, decoded["top_keywords"])
	require.Equal(t, 0.25, decoded["mean_polarity"])
	require.NotContains(t, decoded, "language")
	require.NotContains(t, decoded, "tokens")
}
