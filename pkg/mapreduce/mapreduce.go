package mapreduce

import "github.com/dtnitsch/netflix-text-analytics/models"

// Counter is a frequency table that remembers the order in which each word
// was first seen. That order breaks ties when ranking.
type Counter struct {
	index   map[string]int
	entries []models.WordCount
	total   int
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add increments word by n.
func (c *Counter) Add(word string, n int) {
	i, ok := c.index[word]
	if !ok {
		i = len(c.entries)
		c.index[word] = i
		c.entries = append(c.entries, models.WordCount{Word: word})
	}
	c.entries[i].Count += n
	c.total += n
}

// Get returns the count for word.
func (c *Counter) Get(word string) int {
	if i, ok := c.index[word]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Total returns the number of words counted.
func (c *Counter) Total() int {
	return c.total
}

// Entries returns the counts in first-seen order.
func (c *Counter) Entries() []models.WordCount {
	out := make([]models.WordCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// Map counts a token stream in a single pass.
func Map(tokens []string) *Counter {
	c := NewCounter()
	for _, tok := range tokens {
		c.Add(tok, 1)
	}
	return c
}

// Reduce merges counters in argument order, so first-seen order across the
// inputs is preserved.
func Reduce(intermediate ...*Counter) *Counter {
	final := NewCounter()
	for _, counts := range intermediate {
		if counts == nil {
			continue
		}
		for _, e := range counts.entries {
			final.Add(e.Word, e.Count)
		}
	}
	return final
}
