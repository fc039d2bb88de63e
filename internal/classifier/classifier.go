// Package classifier turns raw journal text into a sentiment analysis:
// a polarity-based sentiment label plus keyword-detected emotions and
// themes. Sentiment scoring is delegated to a PolarityScorer; when no
// scorer is available the classifier degrades to a fixed neutral result
// instead of failing.
package classifier

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/hrut/journal/internal/domain"
	"github.com/hrut/journal/internal/lexicon"
	"github.com/hrut/journal/internal/logger"
)

const (
	maxEmotions = 4
	maxThemes   = 3
)

// PolarityScorer produces a compound polarity score in [-1, 1] for a
// text. Values near 0 mean neutral.
type PolarityScorer interface {
	Score(text string) float64
}

// Result is the full classification output. Confidence is transient:
// it is never stored with an entry.
type Result struct {
	Sentiment  string   `json:"sentiment"`
	Intensity  int      `json:"intensity"`
	Emotions   []string `json:"emotions"`
	Themes     []string `json:"themes"`
	Confidence float64  `json:"confidence"`
}

// Analysis converts the result to the persistable subset.
func (r *Result) Analysis() domain.Analysis {
	return domain.Analysis{
		Sentiment: r.Sentiment,
		Intensity: r.Intensity,
		Emotions:  r.Emotions,
		Themes:    r.Themes,
	}
}

// Classifier analyzes journal text.
type Classifier struct {
	scorer PolarityScorer
}

// New creates a Classifier. A nil scorer enables degraded mode: every
// classification gets the fixed neutral sentiment triple.
func New(scorer PolarityScorer) *Classifier {
	return &Classifier{scorer: scorer}
}

// ScorerAvailable reports whether a polarity scorer is configured.
func (c *Classifier) ScorerAvailable() bool {
	return c.scorer != nil
}

var (
	bangRuns     = regexp.MustCompile(`!{2,}`)
	questionRuns = regexp.MustCompile(`\?{2,}`)
	ellipsisRuns = regexp.MustCompile(`\.{3,}`)
	wordPattern  = regexp.MustCompile(`\w+`)
)

// Preprocess lowercases and trims text and collapses runs of
// exclamation marks, question marks, and dots.
func Preprocess(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = bangRuns.ReplaceAllString(text, "!")
	text = questionRuns.ReplaceAllString(text, "?")
	text = ellipsisRuns.ReplaceAllString(text, "...")
	return text
}

// Tokenize extracts maximal word-character runs. These are the unit
// for exact keyword matching.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Classify analyzes text for sentiment, emotions, and themes.
// Fails with domain.ErrEmptyInput on empty or whitespace-only text.
func (c *Classifier) Classify(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyInput
	}

	processed := Preprocess(text)
	if processed == "" {
		return nil, domain.ErrEmptyInput
	}

	sentiment, intensity, confidence := c.scoreSentiment(processed)

	return &Result{
		Sentiment:  sentiment,
		Intensity:  intensity,
		Emotions:   detectCategories(processed, lexicon.Emotions, maxEmotions),
		Themes:     detectCategories(processed, lexicon.Themes, maxThemes),
		Confidence: confidence,
	}, nil
}

type categoryScore struct {
	name  string
	score float64
}

// detectCategories scores every category of a lexicon table against the
// text and returns the top labels by descending score. Ties keep table
// order (the sort is stable and candidates are collected in table order).
func detectCategories(text string, table lexicon.Table, max int) []string {
	lower := strings.TrimSpace(strings.ToLower(text))
	words := Tokenize(lower)

	wordSet := make(map[string]bool, len(words))
	for _, w := range words {
		wordSet[w] = true
	}

	var scored []categoryScore
	for _, cat := range table {
		var score float64
		for _, keyword := range cat.Keywords {
			switch {
			case wordSet[keyword]:
				// Short entries give direct matches higher weight.
				if len(words) <= 5 {
					score += 2.0
				} else {
					score += 1.0 + float64(len(keyword))/10.0
				}
			case strings.Contains(lower, keyword):
				// Substring matches cover compound words at half weight.
				score += (1.0 + float64(len(keyword))/10.0) * 0.5
			}
		}
		if score > 0 {
			scored = append(scored, categoryScore{cat.Name, score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > max {
		scored = scored[:max]
	}

	labels := make([]string, len(scored))
	for i, s := range scored {
		labels[i] = s.name
	}
	return labels
}

// scoreSentiment maps the compound polarity score to a sentiment label,
// intensity in [1,5], and confidence in [0.5,0.95]. Without a scorer it
// returns the fixed degraded-mode defaults.
func (c *Classifier) scoreSentiment(text string) (string, int, float64) {
	if c.scorer == nil {
		logger.Warn("polarity scorer unavailable, using neutral fallback")
		return domain.SentimentNeutral, 2, 0.5
	}

	compound := c.scorer.Score(text)

	var sentiment string
	var intensity int
	switch {
	case compound >= 0.3:
		sentiment = domain.SentimentPositive
		intensity = clampInt(round((compound+0.3)*5), 3, 5)
	case compound <= -0.3:
		sentiment = domain.SentimentNegative
		intensity = clampInt(round(math.Abs(compound+0.3)*5), 3, 5)
	default:
		sentiment = domain.SentimentNeutral
		intensity = round((math.Abs(compound) + 0.1) * 3)
		if intensity < 1 {
			intensity = 1
		}
	}

	confidence := clampFloat(math.Abs(compound)*2, 0.5, 0.95)
	return sentiment, intensity, confidence
}

func round(f float64) int {
	return int(math.Round(f))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
