package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/urbanfarm/internal/params"
)

// measurementFlags lists the seven input flags in display order.
var measurementFlags = []string{
	"nitrogen", "phosphorus", "potassium", "ph", "temperature", "humidity", "rainfall",
}

// paramFlags registers the measurement flags on a command.
func paramFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("nitrogen", 0, "Soil nitrogen (mg/kg)")
	cmd.Flags().Float64("phosphorus", 0, "Soil phosphorus (mg/kg)")
	cmd.Flags().Float64("potassium", 0, "Soil potassium (mg/kg)")
	cmd.Flags().Float64("ph", 0, "Soil pH")
	cmd.Flags().Float64("temperature", 0, "Air temperature (°C)")
	cmd.Flags().Float64("humidity", 0, "Relative humidity (%)")
	cmd.Flags().Float64("rainfall", 0, "Rainfall (mm)")
	cmd.Flags().String("input", "", "Read measurements from a JSON or YAML file instead of flags")
}

// paramSetFromCmd builds a validated parameter set from --input or the
// individual measurement flags. Flags require all seven values; the file
// form accepts the usual field aliases.
func paramSetFromCmd(cmd *cobra.Command) (params.Set, error) {
	if path, _ := cmd.Flags().GetString("input"); path != "" {
		return paramSetFromFile(path)
	}

	values := make(map[string]float64, len(measurementFlags))
	for _, name := range measurementFlags {
		if !cmd.Flags().Changed(name) {
			return params.Set{}, fmt.Errorf("missing --%s (or use --input)", name)
		}
		v, _ := cmd.Flags().GetFloat64(name)
		values[name] = v
	}
	return params.FromMap(values)
}

func paramSetFromFile(path string) (params.Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return params.Set{}, fmt.Errorf("read input file: %w", err)
	}

	values := map[string]float64{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &values); err != nil {
			return params.Set{}, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &values); err != nil {
			return params.Set{}, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return params.FromMap(values)
}
