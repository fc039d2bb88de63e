package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/hrut/journal/internal/classifier"
	"github.com/hrut/journal/internal/domain"
	"github.com/hrut/journal/internal/gen"
	"github.com/hrut/journal/internal/lexicon"
	"github.com/hrut/journal/internal/logger"
	"github.com/hrut/journal/internal/store"
)

// Server handles HTTP requests for the journal API
type Server struct {
	store      *store.Store
	classifier *classifier.Classifier
	addr       string
}

// New creates a new API server
func New(s *store.Store, clf *classifier.Classifier, addr string) *Server {
	return &Server{store: s, classifier: clf, addr: addr}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Entries
	mux.HandleFunc("GET /entries", s.listEntries)
	mux.HandleFunc("POST /entries/text", s.addEntry)
	mux.HandleFunc("GET /entries/stats", s.getStats)

	// Classification
	mux.HandleFunc("POST /classify", s.classifyText)
	mux.HandleFunc("GET /classify/emotions", s.listEmotions)
	mux.HandleFunc("GET /classify/themes", s.listThemes)
	mux.HandleFunc("GET /classify/status", s.classifierStatus)
	mux.HandleFunc("POST /classify/debug", s.debugClassify)

	// Response generation
	mux.HandleFunc("POST /template", s.renderTemplate)

	// Health check
	mux.HandleFunc("GET /health", s.health)

	return withCORS(mux)
}

// Run starts the HTTP server
func (s *Server) Run() error {
	fmt.Printf("Starting server on %s\n", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// withCORS adds CORS headers for frontend development
func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		h.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "journal"})
}

func (s *Server) listEntries(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}
	target, err := domain.ParseDate(dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := s.store.Query(scope, target)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// AddEntryRequest is the request body for adding a text entry
type AddEntryRequest struct {
	Text      string           `json:"text"`
	CreatedAt string           `json:"createdAt,omitempty"`
	Analysis  *domain.Analysis `json:"analysis,omitempty"`
}

func (s *Server) addEntry(w http.ResponseWriter, r *http.Request) {
	var req AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// The caller-supplied analysis is stored as-is; the write path
	// never invokes the classifier.
	entry, err := s.store.Add(req.Text, req.CreatedAt, req.Analysis)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidDate) || errors.Is(err, domain.ErrInvalidSentiment) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ClassifyRequest is the request body for text classification
type ClassifyRequest struct {
	Text string `json:"text"`
}

func (s *Server) classifyText(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.classifier.Classify(req.Text)
	if err != nil {
		writeClassifyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeClassifyError maps classification failures to status codes:
// empty input is the caller's fault, anything else is internal.
func writeClassifyError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrEmptyInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	logger.Warn("classification failed: %v", err)
	writeError(w, http.StatusInternalServerError, domain.ErrAnalysisFailed.Error())
}

func (s *Server) listEmotions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"emotions":    lexicon.Emotions.Names(),
		"total_count": len(lexicon.Emotions),
	})
}

func (s *Server) listThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"themes":      lexicon.Themes.Names(),
		"total_count": len(lexicon.Themes),
	})
}

func (s *Server) classifierStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sentiment_analyzer_available": s.classifier.ScorerAvailable(),
		"supported_emotions":           len(lexicon.Emotions),
		"supported_themes":             len(lexicon.Themes),
	})
}

func (s *Server) debugClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.classifier.Classify(req.Text)
	if err != nil {
		writeClassifyError(w, err)
		return
	}

	processed := classifier.Preprocess(req.Text)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"original_text":     req.Text,
		"processed_text":    processed,
		"words_extracted":   classifier.Tokenize(processed),
		"sentiment":         result.Sentiment,
		"intensity":         result.Intensity,
		"confidence":        result.Confidence,
		"detected_emotions": result.Emotions,
		"detected_themes":   result.Themes,
	})
}

// TemplateRequest is the request body for response generation
type TemplateRequest struct {
	SentimentLabel string            `json:"sentiment_label"`
	User           map[string]string `json:"user,omitempty"`
	Context        map[string]string `json:"context,omitempty"`
}

func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := gen.Render(req.SentimentLabel, req.User, req.Context)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
