// Package persistence stores sessions and room histories as YAML files
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sealor/searchbot/pkg/chat"
)

// Session is a complete conversation log as the CLI saves it.
type Session struct {
	Model string `yaml:"model,omitempty"`

	Messages []chat.Message `yaml:"messages"`
}

// Record is one stored chat room message.
type Record struct {
	ID        uuid.UUID `yaml:"id" json:"id"`
	Room      string    `yaml:"room" json:"room"`
	Author    string    `yaml:"author" json:"author"`
	Role      chat.Role `yaml:"role" json:"role"`
	Content   string    `yaml:"content" json:"content"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// Store keeps the messages of chat rooms.
type Store interface {
	// Recent returns at most limit records of room, oldest first. A limit
	// of zero or less means DefaultRecentLimit.
	Recent(ctx context.Context, room string, limit int) ([]Record, error)
	// Append stores one record. A zero ID or CreatedAt is filled in.
	Append(ctx context.Context, record *Record) error
}

const DefaultRecentLimit = 100

// RecentLimit applies the default to a non-positive limit.
func RecentLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return limit
}

// NewRecord prepares a record with a fresh id and timestamp.
func NewRecord(room, author string, role chat.Role, content string) *Record {
	return &Record{
		ID:        uuid.New(),
		Room:      room,
		Author:    author,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

func (r *Record) fill() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}
