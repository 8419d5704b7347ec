// Package postgres keeps chat room histories in PostgreSQL
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/persistence"
)

const Schema = `
	CREATE TABLE IF NOT EXISTS chat_messages (
		message_id  UUID PRIMARY KEY,
		room        TEXT        NOT NULL,
		author      TEXT        NOT NULL,
		role        TEXT        NOT NULL,
		content     TEXT        NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS chat_messages_room_created ON chat_messages (room, created_at);
`

// Store implements persistence.Store on a pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect opens a pool for dsn and makes sure the schema exists.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not create pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not reach database: %w", err)
	}
	if _, err = pool.Exec(ctx, Schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("could not create schema: %w", err)
	}
	return NewStore(pool), nil
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Append(ctx context.Context, record *persistence.Record) error {
	if !persistence.ValidRoom(record.Room) {
		return fmt.Errorf("invalid room name %q", record.Room)
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO chat_messages (message_id, room, author, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.Exec(ctx, query,
		record.ID,
		record.Room,
		record.Author,
		string(record.Role),
		record.Content,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}
	return nil
}

func (s *Store) Recent(ctx context.Context, room string, limit int) ([]persistence.Record, error) {
	limit = persistence.RecentLimit(limit)

	// newest first in the subquery, then flipped to oldest first
	query := `
		SELECT message_id, room, author, role, content, created_at FROM (
			SELECT message_id, room, author, role, content, created_at
			FROM chat_messages
			WHERE room = $1
			ORDER BY created_at DESC
			LIMIT $2
		) recent
		ORDER BY created_at ASC
	`
	rows, err := s.pool.Query(ctx, query, room, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query messages: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (persistence.Record, error) {
		var r persistence.Record
		var role string
		err := row.Scan(&r.ID, &r.Room, &r.Author, &role, &r.Content, &r.CreatedAt)
		r.Role = chat.Role(role)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("could not read messages: %w", err)
	}
	return records, nil
}
