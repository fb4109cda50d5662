package classifier

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// artifactSchema describes the structural shape of a model artifact.
// Semantic constraints (wire order, closed label set, row lengths matching
// the label list) are enforced separately in checkArtifact.
var artifactSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"model_id": map[string]any{"type": "string", "minLength": 1},
		"version":  map[string]any{"type": "string", "minLength": 1},
		"features": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"labels": map[string]any{
			"type":     "array",
			"minItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"scaler": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"mean": map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
				"std":  map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
			},
			"required":             []any{"mean", "std"},
			"additionalProperties": false,
		},
		"intercepts": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "number"},
		},
		"weights": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
	},
	"required":             []any{"model_id", "version", "features", "labels", "scaler", "intercepts", "weights"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateArtifactJSON checks raw artifact bytes against the schema.
func validateArtifactJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledArtifactSchema()
	if err != nil {
		return fmt.Errorf("compile artifact schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledArtifactSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(artifactSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://crop-model-artifact.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
