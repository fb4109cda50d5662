package classifier

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/abhisek/urbanfarm/internal/crop"
	"github.com/abhisek/urbanfarm/internal/params"
)

// Embedded artifact metadata used for checksum verification at load time.
const (
	EmbeddedArtifactPath   = "data/crop-linear-v1.json"
	EmbeddedArtifactSHA256 = "e26dfba103483f80cac1caae11fb44995027245f87711c67130ac647d7f5ebda"
)

//go:embed data/crop-linear-v1.json
var embeddedArtifact []byte

// wireFeatures is the exact feature order the model consumes:
// N, P, K, temperature, humidity, pH, rainfall.
var wireFeatures = []string{"n", "p", "k", "temperature", "humidity", "ph", "rainfall"}

type scalerData struct {
	Mean []float64 `json:"mean"`
	Std  []float64 `json:"std"`
}

type artifact struct {
	ModelID    string               `json:"model_id"`
	Version    string               `json:"version"`
	Features   []string             `json:"features"`
	Labels     []string             `json:"labels"`
	Scaler     scalerData           `json:"scaler"`
	Intercepts map[string]float64   `json:"intercepts"`
	Weights    map[string][]float64 `json:"weights"`
}

// Model is a standardized multinomial linear classifier loaded once from a
// JSON artifact. It holds no mutable state after construction, so a single
// Model may serve concurrent Predict calls.
type Model struct {
	artifact artifact
	labels   []crop.Label
}

// LoadEmbedded loads the bundled model artifact, verifying its checksum.
func LoadEmbedded() (*Model, error) {
	sum := sha256.Sum256(embeddedArtifact)
	if got := hex.EncodeToString(sum[:]); got != EmbeddedArtifactSHA256 {
		return nil, &ModelLoadError{
			Source: "embedded",
			Err:    fmt.Errorf("artifact checksum mismatch: got %s want %s", got, EmbeddedArtifactSHA256),
		}
	}
	return parse(embeddedArtifact, "embedded")
}

// LoadFile loads a model artifact from an external file, typically supplied
// via the --model flag.
func LoadFile(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Source: path, Err: err}
	}
	return parse(raw, path)
}

func parse(raw []byte, source string) (*Model, error) {
	if err := validateArtifactJSON(raw); err != nil {
		return nil, &ModelLoadError{Source: source, Err: err}
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, &ModelLoadError{Source: source, Err: fmt.Errorf("decode artifact: %w", err)}
	}
	labels, err := checkArtifact(a)
	if err != nil {
		return nil, &ModelLoadError{Source: source, Err: err}
	}

	return &Model{artifact: a, labels: labels}, nil
}

// checkArtifact enforces the semantic constraints the JSON Schema cannot
// express: exact feature wire order, labels inside the closed crop set,
// per-label weight rows, positive scaler deviations.
func checkArtifact(a artifact) ([]crop.Label, error) {
	if len(a.Features) != len(wireFeatures) {
		return nil, fmt.Errorf("artifact declares %d features, want %d", len(a.Features), len(wireFeatures))
	}
	for i, f := range a.Features {
		if f != wireFeatures[i] {
			return nil, fmt.Errorf("feature %d is %q, want %q", i, f, wireFeatures[i])
		}
	}

	if len(a.Scaler.Mean) != len(wireFeatures) || len(a.Scaler.Std) != len(wireFeatures) {
		return nil, fmt.Errorf("scaler must carry %d means and stds", len(wireFeatures))
	}
	for i, sd := range a.Scaler.Std {
		if sd <= 0 {
			return nil, fmt.Errorf("scaler std[%d] = %g, must be positive", i, sd)
		}
	}

	seen := make(map[crop.Label]bool, len(a.Labels))
	labels := make([]crop.Label, 0, len(a.Labels))
	for _, raw := range a.Labels {
		l := crop.Label(raw)
		if !crop.Valid(l) {
			return nil, fmt.Errorf("label %q is not in the supported crop set", raw)
		}
		if seen[l] {
			return nil, fmt.Errorf("duplicate label %q", raw)
		}
		seen[l] = true
		labels = append(labels, l)

		w, ok := a.Weights[raw]
		if !ok {
			return nil, fmt.Errorf("label %q has no weight row", raw)
		}
		if len(w) != len(wireFeatures) {
			return nil, fmt.Errorf("label %q weight row has %d entries, want %d", raw, len(w), len(wireFeatures))
		}
		if _, ok := a.Intercepts[raw]; !ok {
			return nil, fmt.Errorf("label %q has no intercept", raw)
		}
	}
	if len(labels) < 2 {
		return nil, fmt.Errorf("artifact declares %d labels, need at least 2", len(labels))
	}
	return labels, nil
}

// ID returns the artifact model identifier.
func (m *Model) ID() string { return m.artifact.ModelID }

// Version returns the artifact version identifier.
func (m *Model) Version() string { return m.artifact.Version }

// Labels returns the labels the model scores, in artifact order.
func (m *Model) Labels() []crop.Label { return m.labels }

// Predict standardizes the feature vector, scores each label and applies
// softmax. Pure function of the input; the result always sums to 1.
func (m *Model) Predict(set params.Set) (crop.Distribution, error) {
	x := set.FeatureVector()

	z := make([]float64, len(x))
	for i, v := range x {
		z[i] = (v - m.artifact.Scaler.Mean[i]) / m.artifact.Scaler.Std[i]
	}

	scores := make([]float64, len(m.labels))
	maxScore := math.Inf(-1)
	for i, l := range m.labels {
		s := m.artifact.Intercepts[string(l)]
		for j, w := range m.artifact.Weights[string(l)] {
			s += w * z[j]
		}
		scores[i] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// Softmax with max subtraction for numeric stability.
	var total float64
	exps := make([]float64, len(scores))
	for i, s := range scores {
		exps[i] = math.Exp(s - maxScore)
		total += exps[i]
	}

	dist := make(crop.Distribution, len(m.labels))
	for i, l := range m.labels {
		dist[l] = exps[i] / total
	}
	return dist, nil
}

// FeatureImportance returns the normalized mean absolute weight per feature,
// keyed by feature name. Values sum to 1.
func (m *Model) FeatureImportance() map[string]float64 {
	raw := make([]float64, len(wireFeatures))
	for _, w := range m.artifact.Weights {
		for i, v := range w {
			raw[i] += math.Abs(v)
		}
	}

	var total float64
	for _, v := range raw {
		total += v
	}

	imp := make(map[string]float64, len(wireFeatures))
	for i, f := range wireFeatures {
		if total > 0 {
			imp[f] = raw[i] / total
		} else {
			imp[f] = 0
		}
	}
	return imp
}
