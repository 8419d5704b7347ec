package conversation

//go:generate mockgen -destination=./clients_mock_test.go -package=conversation -source=clients.go

import (
	"context"

	"github.com/sealor/searchbot/pkg/chat"
)

// ModelClient runs one request/response exchange with a language model.
type ModelClient interface {
	Complete(ctx context.Context, messages []chat.Message, tools []chat.ToolDefinition) (chat.Completion, error)
}

// ToolDispatcher announces the callable tools and runs a single call. A
// dispatched call always yields a tool message, even when it fails.
type ToolDispatcher interface {
	Definitions() []chat.ToolDefinition
	Dispatch(ctx context.Context, call chat.ToolCall) chat.Message
}
