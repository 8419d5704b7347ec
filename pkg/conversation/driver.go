// Package conversation drives the rounds between the model and its tools
// until the model produces a final answer.
package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/observe"
)

const DefaultMaxAttempts = 5

// Fixed replies for the terminal states that carry no model text.
const (
	ReplyEmpty           = "(the model returned an empty answer)"
	ReplyRepeatedFailure = "Sorry, the model failed repeatedly. Please try again later."
	ReplyNotConfigured   = "Sorry, the AI service is not configured."
	ReplyNothingToAnswer = "There is no question to answer."
)

func Interrupted(reason string) string {
	if reason == "" {
		reason = "unknown"
	}
	return "interrupted: " + reason
}

// Driver runs conversations against one model client. A Driver holds no
// per-conversation state and may serve many conversations concurrently.
type Driver struct {
	model          ModelClient
	tools          ToolDispatcher
	observer       observe.Observer
	maxAttempts    int
	attemptTimeout time.Duration
	backoff        Backoff
}

// Backoff shapes the wait between failed model attempts. A zero Initial
// retries immediately.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
	Jitter  float64
}

type Option func(*Driver)

func WithObserver(o observe.Observer) Option {
	return func(d *Driver) {
		if o != nil {
			d.observer = o
		}
	}
}

func WithMaxAttempts(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.maxAttempts = n
		}
	}
}

// WithAttemptTimeout bounds every single model call. Zero disables it.
func WithAttemptTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.attemptTimeout = timeout }
}

func WithBackoff(b Backoff) Option {
	return func(d *Driver) { d.backoff = b }
}

// NewDriver creates a driver. A nil model means the service is not
// configured; every run then answers ReplyNotConfigured. A nil tools
// dispatcher runs the model without tools.
func NewDriver(model ModelClient, tools ToolDispatcher, opts ...Option) *Driver {
	d := &Driver{
		model:       model,
		tools:       tools,
		observer:    observe.Nop(),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run appends the rounds of one exchange to conv and returns the final
// answer. It never fails; every error path resolves to a reply text.
func (d *Driver) Run(ctx context.Context, conv *chat.Conversation) string {
	if d.model == nil {
		d.done(ctx, "not_configured", 0)
		return ReplyNotConfigured
	}
	if conv == nil || !conv.HasUserMessage() {
		d.done(ctx, "no_question", 0)
		return ReplyNothingToAnswer
	}

	InstallDirective(conv)

	var tools []chat.ToolDefinition
	if d.tools != nil {
		tools = d.tools.Definitions()
	}
	wait := d.newBackOff()

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		d.observer.Emit(ctx, "model.attempt", slog.Int("attempt", attempt), slog.Int("messages", len(conv.Messages)))

		completion, err := d.complete(ctx, conv.Messages, tools)
		if err != nil {
			d.observer.Emit(ctx, "model.failure", slog.Int("attempt", attempt), slog.String("error", err.Error()))
			if attempt == d.maxAttempts || !pause(ctx, wait) {
				break
			}
			continue
		}
		wait.Reset()

		conv.Append(completion.Message)
		d.observer.Emit(ctx, "model.finish",
			slog.Int("attempt", attempt),
			slog.String("reason", completion.FinishReason),
			slog.Int("tool_calls", len(completion.Message.ToolCalls)))

		switch completion.FinishReason {
		case chat.FinishToolCalls:
			d.dispatch(ctx, conv, completion.Message.ToolCalls)
		case chat.FinishStop:
			d.done(ctx, "success", attempt)
			if strings.TrimSpace(completion.Message.Content) == "" {
				return ReplyEmpty
			}
			return completion.Message.Content
		default:
			d.done(ctx, "interrupted", attempt)
			return Interrupted(completion.FinishReason)
		}
	}

	d.done(ctx, "failure", d.maxAttempts)
	return ReplyRepeatedFailure
}

func (d *Driver) complete(ctx context.Context, messages []chat.Message, tools []chat.ToolDefinition) (chat.Completion, error) {
	if d.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.attemptTimeout)
		defer cancel()
	}
	completion, err := d.model.Complete(ctx, messages, tools)
	if err != nil {
		return chat.Completion{}, fmt.Errorf("model call failed: %w", err)
	}
	return completion, nil
}

// dispatch runs the calls one after another in model order and appends
// one tool message per call.
func (d *Driver) dispatch(ctx context.Context, conv *chat.Conversation, calls []chat.ToolCall) {
	results := make([]chat.Message, 0, len(calls))
	for _, call := range calls {
		d.observer.Emit(ctx, "tool.call",
			slog.String("id", call.ID),
			slog.String("name", call.Name),
			slog.String("arguments", call.Arguments))

		var msg chat.Message
		if d.tools == nil {
			msg = chat.ToolMessage(fmt.Sprintf("Error calling tool %s: no tools available", call.Name), call)
		} else {
			msg = d.tools.Dispatch(ctx, call)
		}
		msg.Role, msg.ToolCallID, msg.ToolName = chat.RoleTool, call.ID, call.Name

		d.observer.Emit(ctx, "tool.result",
			slog.String("id", call.ID),
			slog.String("name", call.Name),
			slog.String("summary", observe.Summary(msg.Content, 200)))
		results = append(results, msg)
	}
	conv.Append(results...)
}

func (d *Driver) done(ctx context.Context, outcome string, attempts int) {
	d.observer.Emit(ctx, "conversation.done", slog.String("outcome", outcome), slog.Int("attempts", attempts))
}

func (d *Driver) newBackOff() backoff.BackOff {
	if d.backoff.Initial <= 0 {
		return &backoff.ZeroBackOff{}
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.backoff.Initial
	b.RandomizationFactor = d.backoff.Jitter
	if d.backoff.Max > 0 {
		b.MaxInterval = d.backoff.Max
	}
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// pause waits for the next backoff interval. It reports false when ctx
// ends first.
func pause(ctx context.Context, b backoff.BackOff) bool {
	if ctx.Err() != nil {
		return false
	}
	delay := b.NextBackOff()
	if delay <= 0 {
		return true
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
