package persistence

import (
	"fmt"

	"github.com/sealor/searchbot/pkg/chat"
)

// NewConversationFromRecords turns a room history into a model log. User
// lines carry their author so the model can tell participants apart.
func NewConversationFromRecords(records []Record) *chat.Conversation {
	conv := &chat.Conversation{}
	for _, r := range records {
		switch r.Role {
		case chat.RoleAssistant:
			conv.Append(chat.AssistantMessage(r.Content))
		case chat.RoleUser:
			conv.Append(chat.UserMessage(NewUserContent(r.Author, r.Content)))
		}
	}
	return conv
}

func NewUserContent(author, content string) string {
	if author == "" {
		return content
	}
	return fmt.Sprintf("%s: %s", author, content)
}

func NewSessionFromConversation(model string, conv *chat.Conversation) *Session {
	return &Session{Model: model, Messages: conv.Messages}
}

func NewConversationFromSession(session *Session) *chat.Conversation {
	return &chat.Conversation{Messages: session.Messages}
}
