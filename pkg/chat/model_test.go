package chat

import (
	"reflect"
	"testing"
)

func TestSchemaRendersParametersAndRequired(t *testing.T) {
	def := ToolDefinition{
		Name:       "web_search",
		Parameters: []Parameter{{Name: "query", Type: "string", Description: "search terms"}},
		Required:   []string{"query"},
	}

	schema := def.Schema()

	if schema["type"] != "object" {
		t.Fatalf("want object schema, got %v", schema["type"])
	}
	properties := schema["properties"].(map[string]any)
	want := map[string]string{"type": "string", "description": "search terms"}
	if !reflect.DeepEqual(properties["query"], want) {
		t.Errorf("want query property %v, got %v", want, properties["query"])
	}
	if !reflect.DeepEqual(schema["required"], []string{"query"}) {
		t.Errorf("unexpected required list %v", schema["required"])
	}
}

func TestSchemaWithoutRequiredKeepsEmptyList(t *testing.T) {
	schema := ToolDefinition{Name: "noop"}.Schema()
	if required, ok := schema["required"].([]string); !ok || required == nil {
		t.Errorf("want empty required list, got %#v", schema["required"])
	}
}

func TestHasUserMessage(t *testing.T) {
	conv := &Conversation{Messages: []Message{SystemMessage("rules")}}
	if conv.HasUserMessage() {
		t.Fatal("system-only log reported a user message")
	}
	conv.Append(UserMessage("hi"))
	if !conv.HasUserMessage() {
		t.Fatal("user message not detected")
	}
}

func TestToolMessageCarriesCallIdentity(t *testing.T) {
	msg := ToolMessage("result", ToolCall{ID: "call_1", Name: "web_search"})
	if msg.Role != RoleTool || msg.ToolCallID != "call_1" || msg.ToolName != "web_search" {
		t.Errorf("unexpected tool message %+v", msg)
	}
}
