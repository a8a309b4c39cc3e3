package wordlist

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const pageSchemaURL = "schema://wordlist-page.json"

// pageSchemaDef describes the fields the fetcher relies on. Entries may carry
// any number of extra fields.
var pageSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"result"},
	"properties": map[string]any{
		"result": map[string]any{
			"type":     "object",
			"required": []any{"total", "entries"},
			"properties": map[string]any{
				"total": map[string]any{"type": "integer", "minimum": 0},
				"entries": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []any{"bare"},
						"properties": map[string]any{
							"bare": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	},
}

var compiledPageSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(pageSchemaURL, pageSchemaDef); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(pageSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validatePage checks raw against the page schema.
// Returns *ErrMalformedPage on failure.
func validatePage(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrMalformedPage{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledPageSchema()
	if err != nil {
		return &ErrMalformedPage{Content: raw, Err: fmt.Errorf("page schema: %w", err)}
	}

	if err := schema.Validate(parsed); err != nil {
		return &ErrMalformedPage{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}
