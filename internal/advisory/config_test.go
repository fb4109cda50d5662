package advisory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/urbanfarm/internal/params"
)

func TestDefaultThresholds(t *testing.T) {
	th, err := DefaultThresholds()
	if err != nil {
		t.Fatalf("DefaultThresholds: %v", err)
	}
	if len(th.Soil) != 4 {
		t.Errorf("got %d soil bands, want 4", len(th.Soil))
	}
	if len(th.Climate) != 3 {
		t.Errorf("got %d climate bands, want 3", len(th.Climate))
	}
	if th.Soil[3].Field != params.PH || th.Soil[3].Low != 5.5 || th.Soil[3].High != 7.5 {
		t.Errorf("pH band = %+v, want field ph with [5.5, 7.5]", th.Soil[3])
	}
}

func TestLoadThresholds_FileOverride(t *testing.T) {
	body := `
soil:
  - {field: nitrogen, subject: Nitrogen, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: phosphorus, subject: Phosphorus, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: potassium, subject: Potassium, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: ph, subject: pH, low: 5, high: 8, low_note: l, high_note: h, normal_note: n}
climate:
  - {field: temperature, subject: Temperature, low: 10, high: 30, low_note: l, high_note: h, normal_note: n}
  - {field: humidity, subject: Humidity, low: 30, high: 90, low_note: l, high_note: h, normal_note: n}
  - {field: rainfall, subject: Rainfall, low: 50, high: 250, low_note: l, high_note: h, normal_note: n}
`
	path := filepath.Join(t.TempDir(), "thresholds.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("LoadThresholds: %v", err)
	}
	if th.Soil[0].High != 50 {
		t.Errorf("nitrogen high = %g, want 50", th.Soil[0].High)
	}
}

func TestLoadThresholds_Missing(t *testing.T) {
	if _, err := LoadThresholds(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadThresholds accepted a missing file")
	}
}

func TestParseThresholds_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"missing field",
			`
soil:
  - {field: nitrogen, subject: Nitrogen, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
climate: []
`,
			"soil group has 1 fields",
		},
		{
			"wrong order",
			`
soil:
  - {field: ph, subject: pH, low: 5, high: 8, low_note: l, high_note: h, normal_note: n}
  - {field: nitrogen, subject: Nitrogen, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: phosphorus, subject: Phosphorus, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: potassium, subject: Potassium, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
climate:
  - {field: temperature, subject: Temperature, low: 10, high: 30, low_note: l, high_note: h, normal_note: n}
  - {field: humidity, subject: Humidity, low: 30, high: 90, low_note: l, high_note: h, normal_note: n}
  - {field: rainfall, subject: Rainfall, low: 50, high: 250, low_note: l, high_note: h, normal_note: n}
`,
			`field 0 is "ph"`,
		},
		{
			"inverted band",
			`
soil:
  - {field: nitrogen, subject: Nitrogen, low: 90, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: phosphorus, subject: Phosphorus, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: potassium, subject: Potassium, low: 10, high: 50, low_note: l, high_note: h, normal_note: n}
  - {field: ph, subject: pH, low: 5, high: 8, low_note: l, high_note: h, normal_note: n}
climate:
  - {field: temperature, subject: Temperature, low: 10, high: 30, low_note: l, high_note: h, normal_note: n}
  - {field: humidity, subject: Humidity, low: 30, high: 90, low_note: l, high_note: h, normal_note: n}
  - {field: rainfall, subject: Rainfall, low: 50, high: 250, low_note: l, high_note: h, normal_note: n}
`,
			"must be below",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseThresholds([]byte(tt.body))
			if err == nil {
				t.Fatal("malformed thresholds accepted")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}
