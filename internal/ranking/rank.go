package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/urbanfarm/internal/crop"
)

// DefaultTopK is the number of recommendations a report carries.
const DefaultTopK = 3

// Recommendation is one ranked crop suggestion.
type Recommendation struct {
	Crop          crop.Label
	ConfidencePct float64  // percentage, rounded to one decimal
	Rank          int      // ordinal, starting at 1
	Tips          []string // growing tips, attached to rank 1 only
}

// EmptyDistributionError indicates the classifier returned a degenerate
// distribution (no labels, or zero probability mass). The pipeline aborts
// and no report is emitted.
type EmptyDistributionError struct {
	Sum float64
}

func (e *EmptyDistributionError) Error() string {
	return fmt.Sprintf("confidence distribution is degenerate (mass %g)", e.Sum)
}

// Rank orders the distribution descending by probability, breaking ties by
// canonical label index, and returns at most topK recommendations. Crops
// with zero probability are never included, so the result may be shorter
// than topK. Confidence is converted to a percentage rounded to one decimal.
func Rank(dist crop.Distribution, topK int) ([]Recommendation, error) {
	if topK < 1 {
		return nil, fmt.Errorf("topK must be at least 1, got %d", topK)
	}
	if len(dist) == 0 {
		return nil, &EmptyDistributionError{}
	}

	type entry struct {
		label crop.Label
		index int
		prob  float64
	}

	entries := make([]entry, 0, len(dist))
	var mass float64
	for l, p := range dist {
		idx, ok := crop.Index(l)
		if !ok {
			return nil, fmt.Errorf("distribution contains unknown crop label %q", l)
		}
		mass += p
		if p > 0 {
			entries = append(entries, entry{label: l, index: idx, prob: p})
		}
	}
	if mass == 0 {
		return nil, &EmptyDistributionError{Sum: mass}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].prob != entries[j].prob {
			return entries[i].prob > entries[j].prob
		}
		return entries[i].index < entries[j].index
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}

	recs := make([]Recommendation, len(entries))
	for i, e := range entries {
		recs[i] = Recommendation{
			Crop:          e.label,
			ConfidencePct: roundPct(e.prob),
			Rank:          i + 1,
		}
	}
	recs[0].Tips = TipsFor(recs[0].Crop)
	return recs, nil
}

// roundPct converts a probability to a percentage rounded to one decimal.
func roundPct(p float64) float64 {
	return math.Round(p*1000) / 10
}
