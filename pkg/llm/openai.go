// Package llm talks to an OpenAI compatible chat completions endpoint
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/config"
)

var ErrNoChoices = errors.New("model returned no choices")

type OpenAI struct {
	client      openai.Client
	model       string
	temperature float64
	reasoning   string
}

type Option func(*[]option.RequestOption)

func WithHTTPClient(client *http.Client) Option {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithHTTPClient(client))
	}
}

func WithDebugLog() Option {
	return func(opts *[]option.RequestOption) {
		*opts = append(*opts, option.WithDebugLog(nil))
	}
}

// NewOpenAI validates cfg and builds a client for it. Retries inside the
// SDK are off; the conversation driver owns the retry budget.
func NewOpenAI(cfg config.Model, opts ...Option) (*OpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := []option.RequestOption{
		option.WithBaseURL(cfg.BaseURL),
		option.WithMaxRetries(0),
	}
	if cfg.APIKey != "" {
		options = append(options, option.WithAPIKey(cfg.APIKey))
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &OpenAI{
		client:      openai.NewClient(options...),
		model:       cfg.Name,
		temperature: cfg.Temperature,
		reasoning:   cfg.Reasoning,
	}, nil
}

func (o *OpenAI) Complete(ctx context.Context, messages []chat.Message, tools []chat.ToolDefinition) (chat.Completion, error) {
	param := openai.ChatCompletionNewParams{
		Model:       o.model,
		Messages:    NewParamsFromMessages(messages),
		Temperature: openai.Float(o.temperature),
	}
	if o.reasoning != "" {
		param.ReasoningEffort = shared.ReasoningEffort(o.reasoning)
	}
	if len(tools) > 0 {
		param.Tools = NewToolParams(tools)
		param.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{OfAuto: openai.String("auto")}
	}

	resp, err := o.client.Chat.Completions.New(ctx, param)
	if err != nil {
		return chat.Completion{}, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return chat.Completion{}, ErrNoChoices
	}

	choice := resp.Choices[0]
	return chat.Completion{
		Message:      NewMessageFromOpenAI(choice.Message),
		FinishReason: string(choice.FinishReason),
	}, nil
}
