package params

// Field identifies one of the seven input measurements.
type Field string

const (
	Nitrogen    Field = "nitrogen"
	Phosphorus  Field = "phosphorus"
	Potassium   Field = "potassium"
	PH          Field = "ph"
	Temperature Field = "temperature"
	Humidity    Field = "humidity"
	Rainfall    Field = "rainfall"
)

// Fields returns all measurement fields in the order the advisory engine
// reports them: soil (N, P, K, pH) before climate.
func Fields() []Field {
	return []Field{Nitrogen, Phosphorus, Potassium, PH, Temperature, Humidity, Rainfall}
}

// Unit returns the display unit suffix for a field ("" for pH).
func (f Field) Unit() string {
	switch f {
	case Nitrogen, Phosphorus, Potassium:
		return "mg/kg"
	case Temperature:
		return "°C"
	case Humidity:
		return "%"
	case Rainfall:
		return "mm"
	default:
		return ""
	}
}

// DisplayName returns a human-readable label for the field.
func (f Field) DisplayName() string {
	switch f {
	case Nitrogen:
		return "Nitrogen (N)"
	case Phosphorus:
		return "Phosphorus (P)"
	case Potassium:
		return "Potassium (K)"
	case PH:
		return "pH"
	case Temperature:
		return "Temperature"
	case Humidity:
		return "Humidity"
	case Rainfall:
		return "Rainfall"
	default:
		return string(f)
	}
}

// Set is a validated, immutable set of the seven measurements.
// Construct through New or FromMap; a zero Set is not meaningful.
type Set struct {
	Nitrogen    float64 // mg/kg
	Phosphorus  float64 // mg/kg
	Potassium   float64 // mg/kg
	PH          float64
	Temperature float64 // °C
	Humidity    float64 // %
	Rainfall    float64 // mm
}

// Value returns the measurement for the given field.
func (s Set) Value(f Field) float64 {
	switch f {
	case Nitrogen:
		return s.Nitrogen
	case Phosphorus:
		return s.Phosphorus
	case Potassium:
		return s.Potassium
	case PH:
		return s.PH
	case Temperature:
		return s.Temperature
	case Humidity:
		return s.Humidity
	case Rainfall:
		return s.Rainfall
	default:
		return 0
	}
}

// FeatureVector returns the measurements in the classifier's wire order:
// N, P, K, temperature, humidity, pH, rainfall.
func (s Set) FeatureVector() [7]float64 {
	return [7]float64{
		s.Nitrogen, s.Phosphorus, s.Potassium,
		s.Temperature, s.Humidity, s.PH, s.Rainfall,
	}
}
