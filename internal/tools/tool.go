// Package tools defines the capabilities the learning assistant can
// invoke during a conversation. Each tool declares a JSON schema for
// its arguments; calls are validated against it before execution.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/pathwise/internal/llm"
)

// Tool is a named capability the agent can call.
type Tool interface {
	// Name is the identifier the model uses to select the tool.
	Name() string
	// Description tells the model when and how to use the tool.
	Description() string
	// ArgsSchema is the JSON schema for the call arguments.
	ArgsSchema() *llm.Schema
	// Call executes the tool. The returned string goes back to the
	// model verbatim. An error means the call itself failed; argument
	// problems the model can correct are reported in the string.
	Call(ctx context.Context, args json.RawMessage) (string, error)
}

// Registry holds the tools available to an agent, in registration
// order.
type Registry struct {
	order  []string
	byName map[string]Tool
}

// NewRegistry creates a registry with the given tools.
func NewRegistry(ts ...Tool) *Registry {
	r := &Registry{byName: make(map[string]Tool)}
	for _, t := range ts {
		r.Register(t)
	}
	return r
}

// Register adds a tool, replacing any prior tool with the same name.
func (r *Registry) Register(t Tool) {
	if _, exists := r.byName[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.byName[t.Name()] = t
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns the tools in registration order.
func (r *Registry) List() []Tool {
	ts := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		ts = append(ts, r.byName[name])
	}
	return ts
}

// Call validates args against the tool's schema and executes it.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t, ok := r.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", name)
	}
	if err := llm.ValidateJSON(t.ArgsSchema(), args); err != nil {
		return "", fmt.Errorf("invalid arguments for %s: %w", name, err)
	}
	return t.Call(ctx, args)
}
