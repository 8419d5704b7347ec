package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sealor/searchbot/pkg/chat"
	"github.com/sealor/searchbot/pkg/persistence"
)

// setupStore connects to TEST_DB_URL and starts from an empty table. The
// tests are skipped when no database is available.
func setupStore(t *testing.T) *Store {
	connStr := os.Getenv("TEST_DB_URL")
	if connStr == "" {
		t.Skip("TEST_DB_URL not set. Skipping integration tests.")
	}

	ctx := context.Background()
	store, err := Connect(ctx, connStr)
	if err != nil {
		t.Fatalf("Could not connect to test database: %v", err)
	}
	t.Cleanup(store.Close)

	if _, err := store.pool.Exec(ctx, "DELETE FROM chat_messages"); err != nil {
		t.Fatalf("Could not clean chat_messages table: %v", err)
	}
	return store
}

func TestStoreAppendAndRecent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		if err := store.Append(ctx, persistence.NewRecord("lobby", "alice", chat.RoleUser, fmt.Sprintf("msg %d", i))); err != nil {
			t.Fatalf("Append() returned unexpected error: %v", err)
		}
	}
	store.Append(ctx, persistence.NewRecord("other", "bob", chat.RoleUser, "elsewhere"))

	records, err := store.Recent(ctx, "lobby", 2)
	if err != nil {
		t.Fatalf("Recent() returned unexpected error: %v", err)
	}
	if len(records) != 2 || records[0].Content != "msg 2" || records[1].Content != "msg 3" {
		t.Errorf("unexpected records %+v", records)
	}
}

func TestStoreAppendFillsIdentity(t *testing.T) {
	store := setupStore(t)
	record := &persistence.Record{Room: "lobby", Author: "sage", Role: chat.RoleAssistant, Content: "hi"}

	if err := store.Append(context.Background(), record); err != nil {
		t.Fatalf("Append() returned unexpected error: %v", err)
	}
	if record.ID == uuid.Nil || record.CreatedAt.IsZero() {
		t.Errorf("identity not filled: %+v", record)
	}
}

func TestStoreRejectsInvalidRoom(t *testing.T) {
	store := &Store{}
	if err := store.Append(context.Background(), &persistence.Record{Room: "../x"}); err == nil {
		t.Error("want error for invalid room")
	}
}
