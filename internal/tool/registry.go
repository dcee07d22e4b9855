// registry.go implements the tool registry.
//
// Separated from tool.go to isolate the registry's mutable state from
// the protocol types. Registration order is preserved so that tool
// listings are deterministic across runs.

package tool

import (
	"context"
	"fmt"
	"sync"
)

// Registry holds a named, ordered set of tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry returns an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names panic: registration happens at
// startup, and a duplicate is a programmer error that should fail fast
// rather than silently shadow an existing tool. This follows the
// database/sql.Register convention.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; exists {
		panic("tool already registered: " + name)
	}
	r.tools[name] = t
	r.order = append(r.order, name)
}

// Get returns the tool with the given name, or nil if not registered.
func (r *Registry) Get(name string) Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// All returns the registered tools in registration order.
func (r *Registry) All() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Invoke executes the named tool. An unknown name is reported the same
// way tool failures are: as an error string, so the agent can correct
// itself instead of the call failing at the protocol level.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) string {
	t := r.Get(name)
	if t == nil {
		return fmt.Sprintf("Error: unknown tool: %s", name)
	}
	return t.Execute(ctx, args)
}
