// Package report composes and renders the plain-text recommendation report.
package report

import (
	"time"

	"github.com/abhisek/urbanfarm/internal/advisory"
	"github.com/abhisek/urbanfarm/internal/params"
	"github.com/abhisek/urbanfarm/internal/ranking"
)

// Report is the immutable result of one recommendation run. It is built
// once by Compose and consumed by Render; nothing mutates it afterwards.
type Report struct {
	GeneratedAt     time.Time
	Params          params.Set
	Recommendations []ranking.Recommendation
	Notes           []advisory.Note
	Tips            []string
}

// Compose assembles a report from the pipeline outputs. The timestamp is
// passed in by the caller so rendering stays a pure function.
func Compose(set params.Set, recs []ranking.Recommendation, notes []advisory.Note, ts time.Time) Report {
	return Report{
		GeneratedAt:     ts,
		Params:          set,
		Recommendations: recs,
		Notes:           notes,
		Tips:            SustainabilityTips(),
	}
}

func (r Report) notesFor(cat advisory.Category) []advisory.Note {
	out := make([]advisory.Note, 0, len(r.Notes))
	for _, n := range r.Notes {
		if n.Category == cat {
			out = append(out, n)
		}
	}
	return out
}
