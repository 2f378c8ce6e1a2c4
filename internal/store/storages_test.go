package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/models"
)

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "mysql", DSN: "whatever"},
	}, logger.Nop())
	if err == nil {
		t.Fatal("expected error for unsupported driver, got nil")
	}
}

// A freshly opened sqlite database must be usable immediately: NewStorages is
// responsible for provisioning the schema, not just connecting.
func TestNewStorages_SQLiteServesRequests(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "notes.db") + "?_foreign_keys=on"

	storages, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: "sqlite3", DSN: dsn},
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create sqlite storages: %v", err)
	}

	ctx := context.Background()

	user, err := storages.UserRepository.CreateUser(ctx, models.User{
		Username:  "alice",
		Password:  "$2a$10$hash",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("failed to create user on fresh database: %v", err)
	}

	note, err := storages.NoteRepository.CreateNote(ctx, models.Note{
		Title:   "first",
		Content: "hello",
		Owner:   user.Username,
	})
	if err != nil {
		t.Fatalf("failed to create note on fresh database: %v", err)
	}
	if note.ID == 0 {
		t.Fatal("expected a server-assigned note id")
	}

	found, err := storages.UserRepository.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to read user back: %v", err)
	}
	if found.Email != "alice@example.com" {
		t.Errorf("unexpected user after round-trip: %+v", found)
	}
}
