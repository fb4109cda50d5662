// Package advisor runs the full recommendation pipeline for one request.
package advisor

import (
	"time"

	"github.com/abhisek/urbanfarm/internal/advisory"
	"github.com/abhisek/urbanfarm/internal/classifier"
	"github.com/abhisek/urbanfarm/internal/crop"
	"github.com/abhisek/urbanfarm/internal/params"
	"github.com/abhisek/urbanfarm/internal/ranking"
	"github.com/abhisek/urbanfarm/internal/report"
)

// Event records one completed recommendation run for history.
type Event struct {
	CreatedAt  time.Time
	Params     params.Set
	TopCrop    crop.Label
	Confidence float64 // percent
	ReportPath string
}

// Recorder persists recommendation events. Recording is best-effort:
// a Recorder failure never fails the run that produced the event.
type Recorder interface {
	Record(ev Event) error
}

// Service wires the classifier, advisory engine and report composer.
// Safe for concurrent use once constructed.
type Service struct {
	predictor classifier.Predictor
	engine    *advisory.Engine
	topK      int
	recorder  Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithTopK overrides the number of recommendations per report.
func WithTopK(k int) Option {
	return func(s *Service) { s.topK = k }
}

// WithRecorder attaches a history recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// New creates a Service over an already-loaded predictor and rule engine.
func New(p classifier.Predictor, e *advisory.Engine, opts ...Option) *Service {
	s := &Service{
		predictor: p,
		engine:    e,
		topK:      ranking.DefaultTopK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend runs predict, rank and analyze for a validated parameter set
// and composes the report. The timestamp is supplied by the caller.
func (s *Service) Recommend(set params.Set, ts time.Time) (report.Report, error) {
	dist, err := s.predictor.Predict(set)
	if err != nil {
		return report.Report{}, err
	}
	recs, err := ranking.Rank(dist, s.topK)
	if err != nil {
		return report.Report{}, err
	}
	notes := s.engine.Analyze(set)
	return report.Compose(set, recs, notes, ts), nil
}

// RecommendAndSave runs the pipeline and writes the report into dir.
// On success the run is recorded if a Recorder is attached; a recording
// failure is returned alongside the path so the caller can warn without
// discarding the report.
func (s *Service) RecommendAndSave(set params.Set, ts time.Time, dir string) (report.Report, string, error) {
	rep, err := s.Recommend(set, ts)
	if err != nil {
		return report.Report{}, "", err
	}
	path, err := report.Write(dir, rep)
	if err != nil {
		return report.Report{}, "", err
	}
	s.record(rep, path)
	return rep, path, nil
}

func (s *Service) record(rep report.Report, path string) {
	if s.recorder == nil || len(rep.Recommendations) == 0 {
		return
	}
	top := rep.Recommendations[0]
	// Best-effort: history must never fail a completed run.
	_ = s.recorder.Record(Event{
		CreatedAt:  rep.GeneratedAt,
		Params:     rep.Params,
		TopCrop:    top.Crop,
		Confidence: top.ConfidencePct,
		ReportPath: path,
	})
}

// Analyze runs the advisory rules alone, without the classifier.
func (s *Service) Analyze(set params.Set) []advisory.Note {
	return s.engine.Analyze(set)
}
