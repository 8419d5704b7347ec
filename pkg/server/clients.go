package server

//go:generate mockgen -destination=./clients_mock_test.go -package=server -source=clients.go

import (
	"context"

	"github.com/sealor/searchbot/pkg/chat"
)

// Answerer runs the model over a conversation and returns the reply text.
type Answerer interface {
	Run(ctx context.Context, conv *chat.Conversation) string
}
