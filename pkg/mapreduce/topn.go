package mapreduce

import (
	"fmt"
	"sort"

	"github.com/dtnitsch/netflix-text-analytics/models"
)

// DefaultTopN is the number of entries the common-words report keeps.
const DefaultTopN = 10

// MostCommon returns the n highest counts, highest first. Equal counts keep
// first-seen order. Fewer than n distinct words returns all of them.
func (c *Counter) MostCommon(n int) []models.WordCount {
	ranked := c.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	limit := n
	if len(ranked) < n {
		limit = len(ranked)
	}
	if limit < 0 {
		limit = 0
	}
	return ranked[:limit]
}

// TopKeywords formats the ranked list as "word:count" strings
// (e.g. "love:153") for run summaries.
func TopKeywords(ranked []models.WordCount) []string {
	keywords := make([]string, len(ranked))
	for i, wc := range ranked {
		keywords[i] = fmt.Sprintf("%s:%d", wc.Word, wc.Count)
	}
	return keywords
}
