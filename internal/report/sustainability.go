package report

// sustainabilityTips is the static advice block appended to every report.
// It does not depend on the input parameters.
var sustainabilityTips = []string{
	"Collect rainwater for irrigation to reduce mains water use.",
	"Use drip irrigation to deliver water directly to the root zone.",
	"Compost kitchen and garden waste to build soil organic matter.",
	"Rotate crops each season to break pest cycles and balance nutrients.",
	"Mulch beds to retain moisture and suppress weeds.",
	"Plant flowering companions to attract pollinators and beneficial insects.",
	"Save seed from your strongest plants for the next season.",
}

// SustainabilityTips returns a copy of the static tip list.
func SustainabilityTips() []string {
	out := make([]string, len(sustainabilityTips))
	copy(out, sustainabilityTips)
	return out
}
