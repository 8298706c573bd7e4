package tools

import (
	"encoding/json"
	"fmt"

	invopopSchema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// GenerateSchema reflects a JSON Schema from the parameter struct T.
// Fields without omitempty are required.
func GenerateSchema[T any]() json.RawMessage {
	reflector := invopopSchema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := json.Marshal(schema)
	if err != nil {
		// unreachable for plain parameter structs
		return json.RawMessage(`{"type":"object"}`)
	}
	return b
}

// compileSchema prepares a generated schema for argument validation.
func compileSchema(name string, schema json.RawMessage) (*jsonschema.Schema, error) {
	compiled, err := jsonschema.CompileString(name+".json", string(schema))
	if err != nil {
		return nil, fmt.Errorf("tools: invalid schema for %s: %w", name, err)
	}
	return compiled, nil
}

// validateArgs checks raw tool arguments against a compiled schema.
func validateArgs(schema *jsonschema.Schema, args json.RawMessage) error {
	var data interface{}
	if err := json.Unmarshal(args, &data); err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if _, ok := data.(map[string]interface{}); !ok {
		return fmt.Errorf("object expected")
	}
	if err := schema.Validate(data); err != nil {
		return err
	}
	return nil
}
