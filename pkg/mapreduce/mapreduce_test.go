package mapreduce

import (
	"testing"

	"github.com/dtnitsch/netflix-text-analytics/models"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	c := Map([]string{"Show", "A", "cat", "Show", "cat", "ran"})

	require.Equal(t, 4, c.Len())
	require.Equal(t, 6, c.Total())
	require.Equal(t, 2, c.Get("Show"))
	require.Equal(t, 2, c.Get("cat"))
	require.Equal(t, 0, c.Get("dog"))
	require.Equal(t, []models.WordCount{
		{Word: "Show", Count: 2},
		{Word: "A", Count: 1},
		{Word: "cat", Count: 2},
		{Word: "ran", Count: 1},
	}, c.Entries())
}

func TestReduce_PreservesFirstSeenOrder(t *testing.T) {
	titles := Map([]string{"b", "a"})
	descriptions := Map([]string{"c", "a", "b"})

	got := Reduce(titles, nil, descriptions)
	require.Equal(t, []models.WordCount{
		{Word: "b", Count: 2},
		{Word: "a", Count: 2},
		{Word: "c", Count: 1},
	}, got.Entries())
	require.Equal(t, 5, got.Total())
}

func TestMostCommon(t *testing.T) {
	c := Map([]string{"x", "y", "z", "y", "z", "z", "w"})

	tests := []struct {
		name string
		n    int
		want []models.WordCount
	}{
		{name: "top one", n: 1, want: []models.WordCount{{Word: "z", Count: 3}}},
		{name: "ties keep first-seen order", n: 4, want: []models.WordCount{{Word: "z", Count: 3}, {Word: "y", Count: 2}, {Word: "x", Count: 1}, {Word: "w", Count: 1}}},
		{name: "tie at the cut", n: 3, want: []models.WordCount{{Word: "z", Count: 3}, {Word: "y", Count: 2}, {Word: "x", Count: 1}}},
		{name: "more than distinct", n: 10, want: []models.WordCount{{Word: "z", Count: 3}, {Word: "y", Count: 2}, {Word: "x", Count: 1}, {Word: "w", Count: 1}}},
		{name: "zero", n: 0, want: []models.WordCount{}},
		{name: "negative", n: -1, want: []models.WordCount{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.MostCommon(tt.n))
		})
	}
}

func TestMostCommon_DoesNotReorderCounter(t *testing.T) {
	c := Map([]string{"a", "b", "b"})
	_ = c.MostCommon(DefaultTopN)
	require.Equal(t, "a", c.Entries()[0].Word)
}

func TestMostCommon_Empty(t *testing.T) {
	require.Empty(t, NewCounter().MostCommon(DefaultTopN))
}

func TestTopKeywords(t *testing.T) {
	got := TopKeywords([]models.WordCount{{Word: "love", Count: 153}, {Word: "war", Count: 2}})
	require.Equal(t, []string{"love:153", "war:2"}, got)
}
