package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/urbanfarm/internal/params"
	"github.com/spf13/cobra"
)

func writeInput(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParamSetFromFileJSON(t *testing.T) {
	path := writeInput(t, "input.json",
		`{"n": 80, "p": 45, "k": 50, "ph": 6.5, "temp": 24, "humidity": 70, "rain": 120}`)

	set, err := paramSetFromFile(path)
	if err != nil {
		t.Fatalf("paramSetFromFile: %v", err)
	}
	if set.Nitrogen != 80 || set.PH != 6.5 || set.Rainfall != 120 {
		t.Errorf("unexpected set: %+v", set)
	}
}

func TestParamSetFromFileYAML(t *testing.T) {
	path := writeInput(t, "input.yaml", `
nitrogen: 80
phosphorus: 45
potassium: 50
ph: 6.5
temperature: 24
humidity: 70
rainfall: 120
`)

	set, err := paramSetFromFile(path)
	if err != nil {
		t.Fatalf("paramSetFromFile: %v", err)
	}
	if set.Phosphorus != 45 || set.Temperature != 24 {
		t.Errorf("unexpected set: %+v", set)
	}
}

func TestParamSetFromFileInvalidValue(t *testing.T) {
	path := writeInput(t, "input.json",
		`{"n": 80, "p": 45, "k": 50, "ph": -1, "temp": 24, "humidity": 70, "rain": 120}`)

	_, err := paramSetFromFile(path)
	var vErr *params.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if vErr.Field != params.PH {
		t.Errorf("failing field = %s, want ph", vErr.Field)
	}
}

func TestParamSetFromFileMissing(t *testing.T) {
	if _, err := paramSetFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing input file accepted")
	}
}

func TestParamSetFromCmdFlags(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	paramFlags(c)
	for flag, v := range map[string]string{
		"nitrogen": "80", "phosphorus": "45", "potassium": "50", "ph": "6.5",
		"temperature": "24", "humidity": "70", "rainfall": "120",
	} {
		if err := c.Flags().Set(flag, v); err != nil {
			t.Fatal(err)
		}
	}

	set, err := paramSetFromCmd(c)
	if err != nil {
		t.Fatalf("paramSetFromCmd: %v", err)
	}
	if set.Potassium != 50 || set.Humidity != 70 {
		t.Errorf("unexpected set: %+v", set)
	}
}

func TestParamSetFromCmdMissingFlag(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	paramFlags(c)
	if err := c.Flags().Set("nitrogen", "80"); err != nil {
		t.Fatal(err)
	}

	if _, err := paramSetFromCmd(c); err == nil {
		t.Fatal("incomplete flag set accepted")
	}
}
