package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrut/journal/internal/classifier"
	"github.com/hrut/journal/internal/domain"
	"github.com/hrut/journal/internal/store"
)

// stubScorer returns a fixed compound score.
type stubScorer struct {
	compound float64
}

func (s stubScorer) Score(string) float64 { return s.compound }

func newTestServer(t *testing.T, scorer classifier.PolarityScorer) (*Server, *store.Store) {
	t.Helper()
	s, err := store.New()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return New(s, classifier.New(scorer), ":0"), s
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestAddEntry(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/entries/text", map[string]any{
		"text":      "A quiet day at home",
		"createdAt": "2025-08-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	entry := decodeBody[domain.Entry](t, rec)
	assert.Len(t, entry.ID, 8)
	assert.Equal(t, "A quiet day at home", entry.Text)
	assert.Equal(t, "2025-08-15", entry.CreatedAt)
	assert.Equal(t, domain.NeutralAnalysis(), entry.Analysis)
}

func TestAddEntry_CallerSuppliedAnalysisStoredAsIs(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/entries/text", map[string]any{
		"text":      "Terrible awful day",
		"createdAt": "2025-08-15",
		"analysis": map[string]any{
			"sentiment": "positive",
			"intensity": 5,
			"emotions":  []string{"joy"},
			"themes":    []string{"work"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The write path never re-classifies; the stored sentiment is
	// whatever the caller claimed.
	entry := decodeBody[domain.Entry](t, rec)
	assert.Equal(t, "positive", entry.Analysis.Sentiment)
}

func TestAddEntry_Validation(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/entries/text", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, "POST", "/entries/text", map[string]any{
		"text":      "Hello",
		"createdAt": "15/08/2025",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest("POST", "/entries/text", strings.NewReader("{not json"))
	recRaw := httptest.NewRecorder()
	srv.Handler().ServeHTTP(recRaw, req)
	assert.Equal(t, http.StatusBadRequest, recRaw.Code)
}

func TestAddEntry_RejectsUnknownSentimentLabel(t *testing.T) {
	srv, s := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/entries/text", map[string]any{
		"text":      "A day like any other",
		"createdAt": "2025-08-15",
		"analysis": map[string]any{
			"sentiment": "banana",
			"intensity": 3,
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Nothing was stored, so the breakdown keeps its three fixed labels.
	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Len(t, stats.SentimentBreakdown, 3)
}

func TestListEntries(t *testing.T) {
	srv, s := newTestServer(t, stubScorer{0})

	_, err := s.Add("in week", "2025-08-15", nil)
	require.NoError(t, err)
	_, err = s.Add("out of week", "2025-08-25", nil)
	require.NoError(t, err)

	rec := doRequest(t, srv, "GET", "/entries?scope=week&date=2025-08-13", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]domain.Entry](t, rec)
	require.Len(t, entries, 1)
	assert.Equal(t, "in week", entries[0].Text)

	rec = doRequest(t, srv, "GET", "/entries?scope=year&date=2025-01-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries = decodeBody[[]domain.Entry](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "2025-08-25", entries[0].CreatedAt)
}

func TestListEntries_DateValidation(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "GET", "/entries?scope=day", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, srv, "GET", "/entries?scope=day&date=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStats(t *testing.T) {
	srv, s := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "GET", "/entries/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[domain.Stats](t, rec)
	assert.Equal(t, 0, stats.TotalEntries)
	assert.Nil(t, stats.DateRange)

	a := domain.Analysis{Sentiment: "positive", Intensity: 4, Emotions: []string{"joy"}, Themes: []string{"work"}}
	_, err := s.Add("entry", "2025-08-15", &a)
	require.NoError(t, err)

	rec = doRequest(t, srv, "GET", "/entries/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats = decodeBody[domain.Stats](t, rec)
	assert.Equal(t, 1, stats.TotalEntries)
	assert.Equal(t, 1, stats.SentimentBreakdown["positive"])
	require.NotNil(t, stats.DateRange)
	assert.Equal(t, "2025-08-15", stats.DateRange.Earliest)
}

func TestClassify(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0.9})

	rec := doRequest(t, srv, "POST", "/classify", map[string]any{
		"text": "I am so happy and grateful today, work was great!",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	result := decodeBody[classifier.Result](t, rec)
	assert.Equal(t, "positive", result.Sentiment)
	assert.Contains(t, result.Emotions, "joy")
	assert.Contains(t, result.Emotions, "gratitude")
	assert.Contains(t, result.Themes, "work")
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestClassify_EmptyText(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/classify", map[string]any{"text": "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "GET", "/classify/emotions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	emotions := decodeBody[struct {
		Emotions   []string `json:"emotions"`
		TotalCount int      `json:"total_count"`
	}](t, rec)
	assert.Equal(t, 16, emotions.TotalCount)
	assert.Contains(t, emotions.Emotions, "joy")

	rec = doRequest(t, srv, "GET", "/classify/themes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	themes := decodeBody[struct {
		Themes     []string `json:"themes"`
		TotalCount int      `json:"total_count"`
	}](t, rec)
	assert.Equal(t, 13, themes.TotalCount)
	assert.Contains(t, themes.Themes, "work")
}

func TestClassifierStatus(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "GET", "/classify/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody[map[string]any](t, rec)
	assert.Equal(t, true, status["sentiment_analyzer_available"])

	degraded, _ := newTestServer(t, nil)
	rec = doRequest(t, degraded, "GET", "/classify/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status = decodeBody[map[string]any](t, rec)
	assert.Equal(t, false, status["sentiment_analyzer_available"])
}

func TestDebugClassify(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/classify/debug", map[string]any{"text": "Happy Day!!!"})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "happy day!", out["processed_text"])
}

func TestDebugClassify_EmptyText(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	// Same error mapping as POST /classify.
	rec := doRequest(t, srv, "POST", "/classify/debug", map[string]any{"text": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRenderTemplate(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/template", map[string]any{
		"sentiment_label": "POSITIVE",
		"user":            map[string]string{"name": "Sam"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "Hey Sam, love the energy! Next step: reply when ready.", out["text"])
}

func TestRenderTemplate_UnknownLabel(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "POST", "/template", map[string]any{"sentiment_label": "WEIRD"})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[map[string]string](t, rec)
	assert.Contains(t, out["text"], "balanced next step")
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, stubScorer{0})

	rec := doRequest(t, srv, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody[map[string]string](t, rec)
	assert.Equal(t, "ok", out["status"])
}
