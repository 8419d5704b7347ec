package llm

import (
	"github.com/openai/openai-go/v3"
	"github.com/sealor/searchbot/pkg/chat"
)

func NewParamsFromMessages(messages []chat.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		params = append(params, NewParamFromMessage(m))
	}
	return params
}

func NewParamFromMessage(m chat.Message) openai.ChatCompletionMessageParamUnion {
	switch m.Role {
	case chat.RoleSystem:
		return openai.SystemMessage(m.Content)
	case chat.RoleAssistant:
		if len(m.ToolCalls) == 0 {
			return openai.AssistantMessage(m.Content)
		}
		assistant := &openai.ChatCompletionAssistantMessageParam{ToolCalls: NewToolCallParams(m.ToolCalls)}
		if m.Content != "" {
			assistant.Content.OfString = openai.String(m.Content)
		}
		return openai.ChatCompletionMessageParamUnion{OfAssistant: assistant}
	case chat.RoleTool:
		return openai.ToolMessage(m.Content, m.ToolCallID)
	default:
		return openai.UserMessage(m.Content)
	}
}

func NewToolCallParams(calls []chat.ToolCall) []openai.ChatCompletionMessageToolCallUnionParam {
	params := make([]openai.ChatCompletionMessageToolCallUnionParam, 0, len(calls))
	for _, call := range calls {
		params = append(params, openai.ChatCompletionMessageToolCallUnionParam{
			OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
				ID:       call.ID,
				Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{Name: call.Name, Arguments: call.Arguments},
			},
		})
	}
	return params
}

func NewToolParams(defs []chat.ToolDefinition) []openai.ChatCompletionToolUnionParam {
	params := make([]openai.ChatCompletionToolUnionParam, 0, len(defs))
	for _, def := range defs {
		params = append(params, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: openai.FunctionDefinitionParam{
					Name:        def.Name,
					Description: openai.String(def.Description),
					Parameters:  openai.FunctionParameters(def.Schema()),
				},
			},
		})
	}
	return params
}

func NewMessageFromOpenAI(m openai.ChatCompletionMessage) chat.Message {
	msg := chat.Message{Role: chat.RoleAssistant, Content: m.Content}
	if msg.Content == "" && m.Refusal != "" {
		msg.Content = m.Refusal
	}
	for _, call := range m.ToolCalls {
		msg.ToolCalls = append(msg.ToolCalls, chat.ToolCall{
			ID:        call.ID,
			Name:      call.Function.Name,
			Arguments: call.Function.Arguments,
		})
	}
	return msg
}
