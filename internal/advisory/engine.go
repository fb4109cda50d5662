package advisory

import "github.com/abhisek/urbanfarm/internal/params"

// Category groups advisory notes by the kind of parameter they judge.
type Category string

const (
	CategorySoil    Category = "soil"
	CategoryClimate Category = "climate"
)

// Note is one deterministic judgment about a single parameter's band.
type Note struct {
	Category Category
	Subject  string
	Guidance string
}

// Engine evaluates the threshold rule table against a parameter set.
// Stateless apart from its immutable table; safe for concurrent use.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine over a validated rule table.
func NewEngine(t Thresholds) *Engine {
	return &Engine{thresholds: t}
}

// Analyze emits exactly one note per field: soil notes first (N, P, K, pH),
// then climate notes (temperature, humidity, rainfall). The order and count
// are fixed for any valid input; the normal band is itself a note.
func (e *Engine) Analyze(set params.Set) []Note {
	notes := make([]Note, 0, len(e.thresholds.Soil)+len(e.thresholds.Climate))
	for _, ft := range e.thresholds.Soil {
		notes = append(notes, judge(CategorySoil, ft, set.Value(ft.Field)))
	}
	for _, ft := range e.thresholds.Climate {
		notes = append(notes, judge(CategoryClimate, ft, set.Value(ft.Field)))
	}
	return notes
}

func judge(cat Category, ft FieldThresholds, v float64) Note {
	guidance := ft.NormalNote
	switch {
	case v < ft.Low:
		guidance = ft.LowNote
	case v > ft.High:
		guidance = ft.HighNote
	}
	return Note{Category: cat, Subject: ft.Subject, Guidance: guidance}
}
