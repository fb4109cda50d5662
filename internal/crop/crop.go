package crop

// Label identifies one of the crops the bundled model was trained on.
type Label string

const (
	Rice        Label = "Rice"
	Maize       Label = "Maize"
	Pomegranate Label = "Pomegranate"
	Banana      Label = "Banana"
	Mango       Label = "Mango"
	Apple       Label = "Apple"
	Orange      Label = "Orange"
	Cotton      Label = "Cotton"
	Jute        Label = "Jute"
	Coffee      Label = "Coffee"
)

// canonical is the closed label set in enumeration order. Ranking ties are
// broken by position in this slice, so the order is part of the contract.
var canonical = []Label{
	Rice, Maize, Pomegranate, Banana, Mango,
	Apple, Orange, Cotton, Jute, Coffee,
}

var canonicalIndex = buildIndex()

func buildIndex() map[Label]int {
	m := make(map[Label]int, len(canonical))
	for i, l := range canonical {
		m[l] = i
	}
	return m
}

// All returns the supported labels in canonical order.
// Callers must not mutate the returned slice.
func All() []Label {
	return canonical
}

// Index returns the label's position in the canonical enumeration and
// whether the label is part of the supported set.
func Index(l Label) (int, bool) {
	i, ok := canonicalIndex[l]
	return i, ok
}

// Valid reports whether l belongs to the supported set.
func Valid(l Label) bool {
	_, ok := canonicalIndex[l]
	return ok
}
