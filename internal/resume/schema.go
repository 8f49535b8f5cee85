// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resume

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RecordSchema returns the JSON-Schema (draft 2020-12 subset) for the
// success record as a generic map.
func RecordSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"name": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"text"},
	}
}

// ErrorSchema returns the JSON-Schema for the failure record.
func ErrorSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"error": map[string]any{"type": "string", "minLength": 1},
		},
		"required": []string{"error"},
	}
}

// OutputSchema describes every record the tool writes to stdout: either a
// success record or an error record, never a mix of the two.
func OutputSchema() map[string]any {
	return map[string]any{
		"oneOf": []any{RecordSchema(), ErrorSchema()},
	}
}

// ValidateRecord validates data against schemaMap.
func ValidateRecord(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
