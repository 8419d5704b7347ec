package persistence

import (
	"os"

	"github.com/sealor/searchbot/pkg/chat"
	"gopkg.in/yaml.v3"
)

func SaveSession(sessionFile, model string, conv *chat.Conversation) error {
	session := NewSessionFromConversation(model, conv)
	data, err := yaml.Marshal(session)
	if err != nil {
		return err
	}
	if err = os.WriteFile(sessionFile, data, 0640); err != nil {
		return err
	}
	return nil
}

func TryToResumeSession(sessionFile string) (*chat.Conversation, error) {
	_, err := os.Stat(sessionFile)
	if os.IsNotExist(err) {
		return &chat.Conversation{}, nil
	}
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(sessionFile)
	if err != nil {
		return nil, err
	}

	var session Session
	if err = yaml.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	return NewConversationFromSession(&session), nil
}
