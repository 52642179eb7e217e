package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// recordSchema is the envelope the model is instructed to reply with.
// Validation against it is opt-in; see WithSchemaValidation.
func recordSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":               map[string]any{"type": "string"},
			"date_of_birth":      map[string]any{"type": "string"},
			"date_of_birth_year": map[string]any{"type": "string"},
			"gender":             map[string]any{"type": "string"},
			"aadhaar_number":     map[string]any{"type": "string"},
			"address":            map[string]any{"type": "string"},
			"Parent":             map[string]any{"type": "string"},
			"confidence":         map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		},
		"required": []string{
			"name", "date_of_birth", "date_of_birth_year", "gender",
			"aadhaar_number", "address", "Parent", "confidence",
		},
	}
}

func compileRecordSchema() (*jsonschema.Schema, error) {
	b, err := json.Marshal(recordSchema())
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}

	return compiler.Compile("record.json")
}
