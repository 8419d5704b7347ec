// Package chat holds the message log shared by the model client, the tools and the driver
package chat

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Termination reasons reported by the model for one round.
const (
	FinishToolCalls = "tool_calls"
	FinishStop      = "stop"
	FinishLength    = "length"
)

type Message struct {
	Role       Role       `yaml:"role" json:"role"`
	Content    string     `yaml:"content,omitempty" json:"content,omitempty"`
	ToolCalls  []ToolCall `yaml:"tool_calls,omitempty" json:"tool_calls,omitempty"`
	ToolCallID string     `yaml:"tool_call_id,omitempty" json:"tool_call_id,omitempty"`
	ToolName   string     `yaml:"tool_name,omitempty" json:"tool_name,omitempty"`
}

// ToolCall is a request from the model to run a named tool. Arguments is
// the JSON text exactly as the provider serialized it.
type ToolCall struct {
	ID        string `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Arguments string `yaml:"arguments" json:"arguments"`
}

type Parameter struct {
	Name        string
	Type        string
	Description string
}

// ToolDefinition is the schema of a callable tool as the model sees it.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  []Parameter
	Required    []string
}

// Schema renders the parameter contract as a JSON schema object.
func (d ToolDefinition) Schema() map[string]any {
	properties := make(map[string]any, len(d.Parameters))
	for _, p := range d.Parameters {
		property := map[string]string{"type": p.Type}
		if p.Description != "" {
			property["description"] = p.Description
		}
		properties[p.Name] = property
	}
	required := d.Required
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func (d ToolDefinition) Parameter(name string) (Parameter, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// Completion is one candidate answer of the model for a round.
type Completion struct {
	Message      Message
	FinishReason string
}

// Conversation is the ordered message log. It is owned by the caller; the
// driver only appends to it for the duration of a run.
type Conversation struct {
	Messages []Message `yaml:"messages"`
}

func (c *Conversation) Append(messages ...Message) {
	c.Messages = append(c.Messages, messages...)
}

func (c *Conversation) HasUserMessage() bool {
	for _, m := range c.Messages {
		if m.Role == RoleUser {
			return true
		}
	}
	return false
}

func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

func ToolMessage(content string, call ToolCall) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: call.ID, ToolName: call.Name}
}
