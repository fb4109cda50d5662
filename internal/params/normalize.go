package params

import (
	"fmt"
	"sort"
	"strings"
)

// aliases maps accepted input names (lowercase) to canonical fields, so
// callers can feed measurements exported under dataset or sensor naming.
var aliases = map[string]Field{
	"n":             Nitrogen,
	"nitrogen":      Nitrogen,
	"p":             Phosphorus,
	"phosphorus":    Phosphorus,
	"phosphorous":   Phosphorus,
	"k":             Potassium,
	"potassium":     Potassium,
	"ph":            PH,
	"ph_value":      PH,
	"temp":          Temperature,
	"temperature":   Temperature,
	"humidity":      Humidity,
	"rain":          Rainfall,
	"rainfall":      Rainfall,
	"precipitation": Rainfall,
}

// FromMap builds a validated Set from loosely named measurements.
// Keys are matched case-insensitively against the known aliases; unknown
// keys are ignored. Fails if any of the seven fields is missing, or with a
// *ValidationError if a value is out of domain.
func FromMap(values map[string]float64) (Set, error) {
	byField := make(map[Field]float64, len(Fields()))
	for key, v := range values {
		if f, ok := aliases[strings.ToLower(strings.TrimSpace(key))]; ok {
			byField[f] = v
		}
	}

	var missing []string
	for _, f := range Fields() {
		if _, ok := byField[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Set{}, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	return New(
		byField[Nitrogen], byField[Phosphorus], byField[Potassium],
		byField[PH], byField[Temperature], byField[Humidity], byField[Rainfall],
	)
}
