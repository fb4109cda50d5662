package params

import (
	"fmt"
	"math"
)

// Range is the inclusive domain of one measurement field.
type Range struct {
	Min float64
	Max float64
}

// domains holds the fixed validation domain per field. The soil bounds come
// from the ranges the bundled model was trained over; pH and humidity are
// physical limits; temperature and rainfall cover the plausible sensor band.
var domains = map[Field]Range{
	Nitrogen:    {0, 140},
	Phosphorus:  {0, 145},
	Potassium:   {0, 205},
	PH:          {0, 14},
	Temperature: {-10, 50},
	Humidity:    {0, 100},
	Rainfall:    {0, 300},
}

// Domain returns the inclusive validation range for a field.
func Domain(f Field) Range {
	return domains[f]
}

// ValidationError reports a measurement outside its declared domain.
// Values are never clamped; callers decide whether to adjust and retry.
type ValidationError struct {
	Field Field
	Value float64
	Range Range
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: value %g outside allowed range [%g, %g]",
		e.Field, e.Value, e.Range.Min, e.Range.Max)
}

// New validates the seven measurements and returns an immutable Set.
// The first out-of-domain field (in Fields order) fails with a
// *ValidationError; NaN and ±Inf are always out of domain.
func New(nitrogen, phosphorus, potassium, ph, temperature, humidity, rainfall float64) (Set, error) {
	s := Set{
		Nitrogen:    nitrogen,
		Phosphorus:  phosphorus,
		Potassium:   potassium,
		PH:          ph,
		Temperature: temperature,
		Humidity:    humidity,
		Rainfall:    rainfall,
	}
	for _, f := range Fields() {
		v := s.Value(f)
		r := domains[f]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < r.Min || v > r.Max {
			return Set{}, &ValidationError{Field: f, Value: v, Range: r}
		}
	}
	return s, nil
}
