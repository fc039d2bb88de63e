// Package store holds journal entries for the lifetime of the process.
// The backing sqlite database lives in memory: nothing survives a
// restart. A single serialized connection makes concurrent writers safe.
package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hrut/journal/internal/domain"
	"github.com/hrut/journal/internal/logger"
)

//go:embed schema.sql
var schema string

// Store handles entry storage and querying.
type Store struct {
	db *sql.DB
}

// New creates an empty in-memory Store.
func New() (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// A single connection keeps the in-memory database alive and
	// serializes all mutations.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection, discarding all entries.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add creates a new entry and returns it. An empty createdAt defaults
// to today; a nil analysis defaults to neutral. The new entry sits at
// the front of the store regardless of its date.
func (s *Store) Add(text, createdAt string, analysis *domain.Analysis) (*domain.Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}

	if createdAt == "" {
		createdAt = domain.Today()
	} else {
		d, err := domain.ParseDate(createdAt)
		if err != nil {
			return nil, err
		}
		createdAt = domain.FormatDate(d)
	}

	a := domain.NeutralAnalysis()
	if analysis != nil {
		a = *analysis
	}
	// An omitted sentiment defaults to neutral; anything else outside
	// the fixed label set is rejected.
	if a.Sentiment == "" {
		a.Sentiment = domain.SentimentNeutral
	}
	if !domain.ValidSentiment(a.Sentiment) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSentiment, a.Sentiment)
	}
	if a.Emotions == nil {
		a.Emotions = []string{}
	}
	if a.Themes == nil {
		a.Themes = []string{}
	}

	emotions, err := json.Marshal(a.Emotions)
	if err != nil {
		return nil, fmt.Errorf("marshal emotions: %w", err)
	}
	themes, err := json.Marshal(a.Themes)
	if err != nil {
		return nil, fmt.Errorf("marshal themes: %w", err)
	}

	id := uuid.New().String()[:8]

	_, err = s.db.Exec(
		"INSERT INTO entries (id, created_at, text, sentiment, intensity, emotions, themes) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, createdAt, text, a.Sentiment, a.Intensity, string(emotions), string(themes),
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	logger.Info("created entry %s with sentiment %s", id, a.Sentiment)

	return &domain.Entry{
		ID:        id,
		CreatedAt: createdAt,
		Text:      text,
		Analysis:  a,
	}, nil
}

// List returns all entries in storage order: newest insertion first,
// independent of each entry's calendar date.
func (s *Store) List() ([]domain.Entry, error) {
	return s.selectEntries("ORDER BY seq DESC")
}

// Query returns entries within the calendar scope anchored at target,
// sorted by date descending. Scopes are day, week, month, year, and
// summary (an alias for year); any other value passes every entry
// through unfiltered. Entries sharing a date keep insertion order.
func (s *Store) Query(scope string, target time.Time) ([]domain.Entry, error) {
	var where string
	var args []any

	switch scope {
	case "day":
		where = "WHERE created_at = ?"
		args = append(args, domain.FormatDate(target))
	case "week":
		start, end := weekBounds(target)
		where = "WHERE created_at BETWEEN ? AND ?"
		args = append(args, domain.FormatDate(start), domain.FormatDate(end))
	case "month":
		where = "WHERE substr(created_at, 1, 7) = ?"
		args = append(args, target.Format("2006-01"))
	case "year", "summary":
		where = "WHERE substr(created_at, 1, 4) = ?"
		args = append(args, target.Format("2006"))
	default:
		// Unknown scopes are deliberately permissive.
	}

	return s.selectEntries(where+" ORDER BY created_at DESC, seq DESC", args...)
}

// Count returns the number of stored entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func (s *Store) selectEntries(clause string, args ...any) ([]domain.Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, text, sentiment, intensity, emotions, themes FROM entries "+clause,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.Entry{}
	for rows.Next() {
		var e domain.Entry
		var emotions, themes string
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Text, &e.Analysis.Sentiment, &e.Analysis.Intensity, &emotions, &themes); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if err := json.Unmarshal([]byte(emotions), &e.Analysis.Emotions); err != nil {
			return nil, fmt.Errorf("decode emotions: %w", err)
		}
		if err := json.Unmarshal([]byte(themes), &e.Analysis.Themes); err != nil {
			return nil, fmt.Errorf("decode themes: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// weekBounds returns the Monday and Sunday of the week containing d.
func weekBounds(d time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -daysSinceMonday)
	return start, start.AddDate(0, 0, 6)
}
