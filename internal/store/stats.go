package store

import (
	"sort"

	"github.com/hrut/journal/internal/domain"
)

const topN = 10

// Stats computes aggregate statistics over the whole store. An empty
// store yields zero counts, empty top lists, and a nil date range.
func (s *Store) Stats() (*domain.Stats, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		TotalEntries: len(entries),
		SentimentBreakdown: map[string]int{
			domain.SentimentPositive: 0,
			domain.SentimentNeutral:  0,
			domain.SentimentNegative: 0,
		},
		TopEmotions: []domain.LabelCount{},
		TopThemes:   []domain.LabelCount{},
	}
	if len(entries) == 0 {
		return stats, nil
	}

	emotions := newCounter()
	themes := newCounter()
	earliest, latest := entries[0].CreatedAt, entries[0].CreatedAt

	for _, e := range entries {
		stats.SentimentBreakdown[e.Analysis.Sentiment]++
		for _, label := range e.Analysis.Emotions {
			emotions.add(label)
		}
		for _, label := range e.Analysis.Themes {
			themes.add(label)
		}
		// Lexicographic comparison matches chronological order here.
		if e.CreatedAt < earliest {
			earliest = e.CreatedAt
		}
		if e.CreatedAt > latest {
			latest = e.CreatedAt
		}
	}

	stats.TopEmotions = emotions.top(topN)
	stats.TopThemes = themes.top(topN)
	stats.DateRange = &domain.DateRange{Earliest: earliest, Latest: latest}
	return stats, nil
}

// counter tallies labels while remembering first-encountered order,
// which breaks ties in the top lists.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, seen := c.counts[label]; !seen {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

func (c *counter) top(n int) []domain.LabelCount {
	ranked := make([]domain.LabelCount, len(c.order))
	for i, label := range c.order {
		ranked[i] = domain.LabelCount{Label: label, Count: c.counts[label]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
