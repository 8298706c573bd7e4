package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrUnknownTool is returned by Call for names that are not registered.
var ErrUnknownTool = errors.New("unknown tool")

// Handler executes a tool with validated JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Definition describes a tool the way MCP clients list it.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Content is one block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the outcome of a tool call. Failures are reported in-band with IsError.
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`
}

type tool struct {
	Definition
	schema  *jsonschema.Schema
	handler Handler
}

// Registry holds tools in registration order.
type Registry struct {
	order []string
	tools map[string]*tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*tool)}
}

// Register adds a tool. Names must be unique.
func (r *Registry) Register(def Definition, handler Handler) error {
	if def.Name == "" || handler == nil {
		return fmt.Errorf("tools: name and handler are required")
	}
	if _, exists := r.tools[def.Name]; exists {
		return fmt.Errorf("tools: %q is already registered", def.Name)
	}
	schema, err := compileSchema(def.Name, def.InputSchema)
	if err != nil {
		return err
	}
	r.tools[def.Name] = &tool{Definition: def, schema: schema, handler: handler}
	r.order = append(r.order, def.Name)
	return nil
}

// Definitions lists registered tools in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].Definition)
	}
	return out
}

// Call validates args, runs the named tool and renders its output as indented
// JSON text. The returned error is non-nil only for unknown tools; every other
// failure is carried in the Result.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (Result, error) {
	t, ok := r.tools[name]
	if !ok {
		return errorResult(fmt.Errorf("Unknown tool: %s", name)), fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if len(bytes.TrimSpace(args)) == 0 || bytes.Equal(bytes.TrimSpace(args), []byte("null")) {
		args = json.RawMessage(`{}`)
	}

	if err := validateArgs(t.schema, args); err != nil {
		return errorResult(fmt.Errorf("Invalid parameters: %w", err)), nil
	}

	out, err := t.handler(ctx, args)
	if err != nil {
		log.Warn().Err(err).Str("tool", name).Msg("tools: call failed")
		return errorResult(err), nil
	}

	text, err := renderJSON(out)
	if err != nil {
		return errorResult(err), nil
	}
	return Result{Content: []Content{{Type: "text", Text: text}}}, nil
}

func errorResult(err error) Result {
	return Result{
		Content: []Content{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

func renderJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// decode unmarshals validated arguments into a parameter struct.
func decode[T any](args json.RawMessage) (T, error) {
	var params T
	if err := json.Unmarshal(args, &params); err != nil {
		return params, fmt.Errorf("Invalid parameters: %w", err)
	}
	return params, nil
}
