package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/urbanfarm/internal/advisor"
	"github.com/abhisek/urbanfarm/internal/crop"
	"github.com/abhisek/urbanfarm/internal/params"
)

const schema = `
CREATE TABLE IF NOT EXISTS recommendation_events (
	id          TEXT PRIMARY KEY,
	created_at  TEXT NOT NULL,
	nitrogen    REAL NOT NULL,
	phosphorus  REAL NOT NULL,
	potassium   REAL NOT NULL,
	ph          REAL NOT NULL,
	temperature REAL NOT NULL,
	humidity    REAL NOT NULL,
	rainfall    REAL NOT NULL,
	top_crop    TEXT NOT NULL,
	confidence  REAL NOT NULL,
	report_path TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_recommendation_events_created_at
	ON recommendation_events(created_at);
`

// Run is one persisted recommendation event.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Params     params.Set
	TopCrop    crop.Label
	Confidence float64
	ReportPath string
}

// Record inserts one recommendation event. The store satisfies
// advisor.Recorder.
func (s *Store) Record(ev advisor.Event) error {
	_, err := s.db.Exec(`
		INSERT INTO recommendation_events
			(id, created_at, nitrogen, phosphorus, potassium, ph,
			 temperature, humidity, rainfall, top_crop, confidence, report_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(),
		ev.CreatedAt.UTC().Format(time.RFC3339Nano),
		ev.Params.Nitrogen,
		ev.Params.Phosphorus,
		ev.Params.Potassium,
		ev.Params.PH,
		ev.Params.Temperature,
		ev.Params.Humidity,
		ev.Params.Rainfall,
		string(ev.TopCrop),
		ev.Confidence,
		ev.ReportPath,
	)
	if err != nil {
		return fmt.Errorf("record recommendation: %w", err)
	}
	return nil
}

// Recent returns the latest n recommendation events, newest first.
func (s *Store) Recent(n int) ([]Run, error) {
	if n < 1 {
		return nil, fmt.Errorf("limit must be at least 1, got %d", n)
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, nitrogen, phosphorus, potassium, ph,
		       temperature, humidity, rainfall, top_crop, confidence, report_path
		FROM recommendation_events
		ORDER BY created_at DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r       Run
			created string
			label   string
		)
		err := rows.Scan(&r.ID, &created,
			&r.Params.Nitrogen, &r.Params.Phosphorus, &r.Params.Potassium, &r.Params.PH,
			&r.Params.Temperature, &r.Params.Humidity, &r.Params.Rainfall,
			&label, &r.Confidence, &r.ReportPath)
		if err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		r.TopCrop = crop.Label(label)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return runs, nil
}
