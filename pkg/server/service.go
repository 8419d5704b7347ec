// Package server exposes chat rooms over HTTP and lets the bot answer
// messages that mention it.
package server

//go:generate mockgen -destination=./service_mock_test.go -package=server -source=service.go Service
//go:generate mockgen -destination=./store_mock_test.go -package=server github.com/sealor/searchbot/pkg/persistence Store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/mention"
	"github.com/sealor/searchbot/pkg/persistence"
)

var (
	ErrInvalidRoom  = errors.New("invalid room name")
	ErrEmptyMessage = errors.New("message is empty")
)

// PostResult is the stored message and, when the bot was addressed, its reply.
type PostResult struct {
	Message persistence.Record  `json:"message"`
	Reply   *persistence.Record `json:"reply,omitempty"`
}

type Service interface {
	// PostMessage stores a user message and answers it if it mentions the bot.
	PostMessage(ctx context.Context, room, author, content string) (*PostResult, error)

	// History returns the latest messages of a room, oldest first.
	History(ctx context.Context, room string, limit int) ([]persistence.Record, error)
}

type service struct {
	store         persistence.Store
	answerer      Answerer
	botName       string
	mentions      *mention.Matcher
	historyWindow int
}

func NewService(store persistence.Store, answerer Answerer, botName string, historyWindow int) Service {
	return &service{
		store:         store,
		answerer:      answerer,
		botName:       botName,
		mentions:      mention.NewMatcher(botName),
		historyWindow: historyWindow,
	}
}

func (s *service) PostMessage(ctx context.Context, room, author, content string) (*PostResult, error) {
	if !persistence.ValidRoom(room) {
		return nil, ErrInvalidRoom
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	message := persistence.NewRecord(room, author, chat.RoleUser, content)
	if err := s.store.Append(ctx, message); err != nil {
		return nil, fmt.Errorf("could not store message: %w", err)
	}
	result := &PostResult{Message: *message}

	question, ok := s.mentions.Detect(content)
	if !ok {
		return result, nil
	}

	history, err := s.store.Recent(ctx, room, s.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("could not load history: %w", err)
	}
	earlier := make([]persistence.Record, 0, len(history))
	for _, r := range history {
		if r.ID != message.ID {
			earlier = append(earlier, r)
		}
	}

	conv := persistence.NewConversationFromRecords(earlier)
	conv.Append(chat.UserMessage(persistence.NewUserContent(author, question)))

	reply := persistence.NewRecord(room, s.botName, chat.RoleAssistant, s.answerer.Run(ctx, conv))
	if err := s.store.Append(ctx, reply); err != nil {
		return nil, fmt.Errorf("could not store reply: %w", err)
	}
	result.Reply = reply
	return result, nil
}

func (s *service) History(ctx context.Context, room string, limit int) ([]persistence.Record, error) {
	if !persistence.ValidRoom(room) {
		return nil, ErrInvalidRoom
	}
	if limit <= 0 || limit > 200 {
		limit = s.historyWindow
	}
	records, err := s.store.Recent(ctx, room, limit)
	if err != nil {
		return nil, fmt.Errorf("could not load history: %w", err)
	}
	return records, nil
}
