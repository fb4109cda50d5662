package report

import (
	"fmt"
	"strings"

	"github.com/abhisek/urbanfarm/internal/advisory"
	"github.com/abhisek/urbanfarm/internal/params"
)

const lineWidth = 80

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("-", lineWidth)
)

var (
	soilFields    = []params.Field{params.Nitrogen, params.Phosphorus, params.Potassium, params.PH}
	climateFields = []params.Field{params.Temperature, params.Humidity, params.Rainfall}
)

// Render produces the full report text. It is a pure function of the
// report: identical reports render to byte-identical output.
func Render(r Report) string {
	var b strings.Builder

	b.WriteString(heavyRule + "\n")
	b.WriteString(center("CROP RECOMMENDATION REPORT") + "\n")
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05"))

	section(&b, "TOP RECOMMENDED CROPS")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(&b, "%d. %s (confidence: %.1f%%)\n", rec.Rank, rec.Crop, rec.ConfidencePct)
		if len(rec.Tips) > 0 {
			b.WriteString("   Growing tips:\n")
			for _, tip := range rec.Tips {
				fmt.Fprintf(&b, "   - %s\n", tip)
			}
		}
	}
	b.WriteString("\n")

	section(&b, "SOIL PARAMETERS")
	paramLines(&b, r.Params, soilFields)
	b.WriteString("\n")

	section(&b, "CLIMATE PARAMETERS")
	paramLines(&b, r.Params, climateFields)
	b.WriteString("\n")

	section(&b, "SOIL ANALYSIS")
	noteLines(&b, r.notesFor(advisory.CategorySoil))
	b.WriteString("\n")

	section(&b, "CLIMATE ANALYSIS")
	noteLines(&b, r.notesFor(advisory.CategoryClimate))
	b.WriteString("\n")

	section(&b, "SUSTAINABILITY TIPS")
	for _, tip := range r.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}
	b.WriteString("\n")

	b.WriteString(heavyRule + "\n")
	b.WriteString(center("End of report") + "\n")
	b.WriteString(heavyRule + "\n")

	return b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(lightRule + "\n")
}

func paramLines(b *strings.Builder, set params.Set, fields []params.Field) {
	width := 0
	for _, f := range fields {
		if n := len(f.DisplayName()); n > width {
			width = n
		}
	}
	for _, f := range fields {
		line := fmt.Sprintf("%-*s %.1f", width+1, f.DisplayName()+":", set.Value(f))
		if unit := f.Unit(); unit != "" {
			line += " " + unit
		}
		b.WriteString(line + "\n")
	}
}

func noteLines(b *strings.Builder, notes []advisory.Note) {
	for _, n := range notes {
		fmt.Fprintf(b, "- %s\n", n.Guidance)
	}
}

func center(s string) string {
	pad := (lineWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}
