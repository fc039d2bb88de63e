package domain

import (
	"fmt"
	"time"
)

// Sentiment labels used throughout the system.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ValidSentiment reports whether s is one of the three fixed labels.
func ValidSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// DateFormat is the calendar date format used for all entry dates.
// Lexicographic order on this format coincides with chronological order.
const DateFormat = "2006-01-02"

// Analysis holds the classification result attached to an entry.
// Confidence is intentionally absent: it is returned by the classifier
// but never persisted with the entry.
type Analysis struct {
	Sentiment string   `json:"sentiment"`
	Intensity int      `json:"intensity"`
	Emotions  []string `json:"emotions"`
	Themes    []string `json:"themes"`
}

// NeutralAnalysis returns the default analysis used when a caller
// stores an entry without one.
func NeutralAnalysis() Analysis {
	return Analysis{
		Sentiment: SentimentNeutral,
		Intensity: 2,
		Emotions:  []string{},
		Themes:    []string{},
	}
}

// Entry is a single journal entry. Immutable after creation.
type Entry struct {
	ID        string   `json:"id"`
	CreatedAt string   `json:"createdAt"`
	Text      string   `json:"text"`
	Analysis  Analysis `json:"analysis"`
}

// LabelCount pairs a category label with its frequency.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// DateRange spans the earliest and latest entry dates.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// Stats aggregates the whole store.
type Stats struct {
	TotalEntries       int            `json:"total_entries"`
	SentimentBreakdown map[string]int `json:"sentiment_breakdown"`
	TopEmotions        []LabelCount   `json:"top_emotions"`
	TopThemes          []LabelCount   `json:"top_themes"`
	DateRange          *DateRange     `json:"date_range"`
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Today returns the process clock's current calendar date.
func Today() string {
	return FormatDate(time.Now())
}
