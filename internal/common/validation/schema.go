// Package validation checks store documents against JSON schemas before import.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// MenuDocumentSchema accepts both catalog shapes: a flat mapping of item name
// to entry, or a mapping of category name to a list of entries.
const MenuDocumentSchema = `{
	"type": "object",
	"additionalProperties": {
		"anyOf": [
			{
				"type": "object",
				"properties": {
					"name":        {"type": "string"},
					"price":       {"type": ["number", "string"]},
					"description": {"type": "string"},
					"image":       {"type": "string"}
				}
			},
			{
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name":        {"type": "string"},
						"price":       {"type": ["number", "string"]},
						"description": {"type": "string"},
						"image":       {"type": "string"}
					},
					"required": ["name"]
				}
			}
		]
	}
}`

// OrdersDocumentSchema accepts the per-user order tree: orders keyed directly
// by order id, or nested under "history" (with an optional "latest" sibling).
// Item lists may be arrays or objects of arbitrary keys.
const OrdersDocumentSchema = `{
	"type": "object",
	"additionalProperties": {
		"type": "object"
	}
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateDocument validates a raw JSON document against the given schema.
func ValidateDocument(document []byte, schema string) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		out.Errors = append(out.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return out, nil
}
