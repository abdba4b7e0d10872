package export

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quizFileSchema describes the on-disk quiz format. Imported files are
// validated against it before any field is trusted.
var quizFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version":    map[string]any{"type": "integer", "minimum": 1},
		"quiz_id":    map[string]any{"type": "string", "minLength": 1},
		"created_at": map[string]any{"type": "string"},
		"kind":       map[string]any{"type": "string", "enum": []any{"mcq", "truefalse", "mixed"}},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "integer", "minimum": 1},
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":        "array",
						"minItems":    2,
						"uniqueItems": true,
						"items":       map[string]any{"type": "string"},
					},
					"answer": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"single": map[string]any{"type": "string"},
							"multi": map[string]any{
								"type":     "array",
								"minItems": 2,
								"items":    map[string]any{"type": "string"},
							},
						},
						"additionalProperties": false,
					},
					"kind": map[string]any{
						"type": "string",
						"enum": []any{"multiple-choice-single", "multiple-choice-multi", "true-false"},
					},
					"level": map[string]any{
						"type": "string",
						"enum": []any{"comprehension", "application", "analysis", "recall"},
					},
				},
				"required":             []any{"id", "prompt", "options", "answer", "kind", "level"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "quiz_id", "kind", "questions"},
	"additionalProperties": false,
}

// answerFileSchema describes a saved response map.
var answerFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"quiz_id": map[string]any{"type": "string", "minLength": 1},
		"learner": map[string]any{"type": "string"},
		"responses": map[string]any{
			"type": "object",
			"patternProperties": map[string]any{
				`^[0-9]+$`: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"single": map[string]any{"type": "string"},
						"multi":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"additionalProperties": false,
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"quiz_id", "responses"},
	"additionalProperties": false,
}

// schemaCache holds compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateJSON checks raw bytes against the named schema definition.
func validateJSON(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches
// it. The library wants a parsed JSON value, so the definition takes a
// marshal round-trip first.
func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
