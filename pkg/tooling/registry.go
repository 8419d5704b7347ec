// Package tooling declares the tools the model may call and runs them
package tooling

import (
	"context"
	"fmt"

	"github.com/sealor/searchbot/pkg/chat"
)

// Tool is one callable capability. Call receives arguments that already
// satisfy the tool's definition.
type Tool interface {
	Definition() chat.ToolDefinition
	Call(ctx context.Context, args Arguments) (string, error)
}

// Registry maps tool names to their executors. It is filled once at
// startup and only read afterwards.
type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool)}
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(tool Tool) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	name := tool.Definition().Name
	if name == "" {
		return fmt.Errorf("tool name is empty")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s already registered", name)
	}
	r.tools[name] = tool
	r.order = append(r.order, name)
	return nil
}

// Definitions returns the schemas announced to the model, in registration order.
func (r *Registry) Definitions() []chat.ToolDefinition {
	defs := make([]chat.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Dispatch runs one tool call and always answers with a tool message
// carrying the call's id. Failures become the message content.
func (r *Registry) Dispatch(ctx context.Context, call chat.ToolCall) chat.Message {
	tool, ok := r.tools[call.Name]
	if !ok {
		return chat.ToolMessage(errorText(call.Name, fmt.Errorf("unknown tool")), call)
	}

	args, err := ParseArguments(call.Arguments, tool.Definition())
	if err != nil {
		return chat.ToolMessage(errorText(call.Name, err), call)
	}

	result, err := tool.Call(ctx, args)
	if err != nil {
		return chat.ToolMessage(errorText(call.Name, err), call)
	}
	return chat.ToolMessage(result, call)
}

func errorText(name string, err error) string {
	return fmt.Sprintf("Error calling tool %s: %v", name, err)
}
