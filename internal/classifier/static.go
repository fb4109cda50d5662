package classifier

import (
	"sync"

	"github.com/abhisek/urbanfarm/internal/crop"
	"github.com/abhisek/urbanfarm/internal/params"
)

// Static is a deterministic Predictor for testing. It returns a fixed
// distribution regardless of input and records every call.
type Static struct {
	mu    sync.Mutex
	dist  crop.Distribution
	err   error
	Calls []params.Set
}

// NewStatic creates a Static predictor returning the given distribution.
func NewStatic(dist crop.Distribution) *Static {
	return &Static{dist: dist}
}

// NewStaticErr creates a Static predictor that always fails with err.
func NewStaticErr(err error) *Static {
	return &Static{err: err}
}

// ID returns "static".
func (s *Static) ID() string { return "static" }

// Predict records the call and returns a copy of the canned distribution.
func (s *Static) Predict(set params.Set) (crop.Distribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, set)
	if s.err != nil {
		return nil, s.err
	}

	out := make(crop.Distribution, len(s.dist))
	for l, p := range s.dist {
		out[l] = p
	}
	return out, nil
}
