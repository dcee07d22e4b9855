// Package tool defines the callable tool protocol exposed to agents.
//
// A tool advertises a name, a description and a JSON-Schema-shaped
// parameter declaration, and is invoked with a named-argument record.
// The result is always a single human-readable string: successes are
// descriptive messages, failures are "Error: ..."-prefixed strings.
// Nothing raised inside a tool ever escapes to the agent loop - the
// calling agent treats every result as text to reason over, so failures
// must be self-describing rather than structurally typed.
package tool

import "context"

// Tool is a callable operation exposed to an agent.
type Tool interface {
	// Name returns the unique tool identifier, e.g. "edit_file".
	Name() string

	// Description explains to the agent when and how to use the tool.
	Description() string

	// Parameters declares the tool's argument schema.
	Parameters() Schema

	// Execute invokes the tool with named arguments and returns a
	// human-readable result. Errors are reported inside the string,
	// never returned or panicked.
	Execute(ctx context.Context, args map[string]any) string
}

// Schema is the JSON-Schema fragment describing a tool's parameters.
// Type is always "object".
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property describes a single named parameter.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// ObjectSchema builds a parameter schema with the given properties and
// required names, in the shape agents expect for argument validation.
func ObjectSchema(props map[string]Property, required []string) Schema {
	if required == nil {
		required = []string{}
	}
	return Schema{Type: "object", Properties: props, Required: required}
}

// String extracts a string argument, returning "" when absent or not a
// string. Tools validate required arguments themselves so that a missing
// parameter produces a readable message rather than a type error.
func String(args map[string]any, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}
