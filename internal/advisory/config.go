package advisory

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/urbanfarm/internal/params"
)

//go:embed thresholds.yaml
var embeddedThresholds []byte

// FieldThresholds defines the advisory band for one measurement field.
// Values below Low trigger LowNote, above High trigger HighNote; the
// inclusive band [Low, High] is normal, so a value exactly at a threshold
// is never flagged.
type FieldThresholds struct {
	Field      params.Field `yaml:"field"`
	Subject    string       `yaml:"subject"`
	Low        float64      `yaml:"low"`
	High       float64      `yaml:"high"`
	LowNote    string       `yaml:"low_note"`
	HighNote   string       `yaml:"high_note"`
	NormalNote string       `yaml:"normal_note"`
}

// Thresholds is the full advisory rule table: soil bands in N, P, K, pH
// order followed by climate bands in temperature, humidity, rainfall order.
// Loaded once at startup and never mutated.
type Thresholds struct {
	Soil    []FieldThresholds `yaml:"soil"`
	Climate []FieldThresholds `yaml:"climate"`
}

// DefaultThresholds parses the embedded rule table.
func DefaultThresholds() (Thresholds, error) {
	return parseThresholds(embeddedThresholds)
}

// LoadThresholds reads a rule table from an external YAML file.
func LoadThresholds(path string) (Thresholds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, fmt.Errorf("read thresholds: %w", err)
	}
	return parseThresholds(raw)
}

func parseThresholds(raw []byte) (Thresholds, error) {
	var t Thresholds
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Thresholds{}, fmt.Errorf("decode thresholds: %w", err)
	}
	if err := t.validate(); err != nil {
		return Thresholds{}, err
	}
	return t, nil
}

// soilOrder and climateOrder fix the note emission order; the advisory
// contract emits exactly one note per field in this sequence.
var (
	soilOrder    = []params.Field{params.Nitrogen, params.Phosphorus, params.Potassium, params.PH}
	climateOrder = []params.Field{params.Temperature, params.Humidity, params.Rainfall}
)

func (t Thresholds) validate() error {
	if err := checkGroup("soil", t.Soil, soilOrder); err != nil {
		return err
	}
	return checkGroup("climate", t.Climate, climateOrder)
}

func checkGroup(name string, got []FieldThresholds, want []params.Field) error {
	if len(got) != len(want) {
		return fmt.Errorf("%s group has %d fields, want %d", name, len(got), len(want))
	}
	for i, ft := range got {
		if ft.Field != want[i] {
			return fmt.Errorf("%s group field %d is %q, want %q", name, i, ft.Field, want[i])
		}
		if ft.Low >= ft.High {
			return fmt.Errorf("%s: low threshold %g must be below high threshold %g", ft.Field, ft.Low, ft.High)
		}
		if ft.Subject == "" || ft.LowNote == "" || ft.HighNote == "" || ft.NormalNote == "" {
			return fmt.Errorf("%s: subject and all three notes are required", ft.Field)
		}
	}
	return nil
}
