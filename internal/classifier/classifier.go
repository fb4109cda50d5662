package classifier

import (
	"fmt"

	"github.com/abhisek/urbanfarm/internal/crop"
	"github.com/abhisek/urbanfarm/internal/params"
)

// Predictor produces a probability distribution over the supported crops
// for a validated parameter set. Implementations must be deterministic for
// identical input and safe for concurrent use after construction.
type Predictor interface {
	// ID returns a short identifier for the backing model (for logging
	// and report provenance).
	ID() string

	// Predict maps the parameter set to a fresh confidence distribution.
	Predict(set params.Set) (crop.Distribution, error)
}

// ModelLoadError indicates the model artifact could not be loaded or
// failed validation. Fatal at startup: no recommendation request may
// proceed without a loaded model.
type ModelLoadError struct {
	Source string // artifact path, or "embedded"
	Err    error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("load model from %s: %v", e.Source, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }
