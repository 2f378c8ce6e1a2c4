package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/kmdeakers/go-notes/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	// Duplicate username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up a single user by username.
	// A missing user yields [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes a user record. Notes owned by the user are removed
	// by the database cascade, not by this method.
	DeleteUser(ctx context.Context, username string) error
}

// NoteRepository is the data-access contract for notes.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with the
	// server-assigned id and timestamps.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID looks up a single note by id.
	// A missing note yields [ErrNoteNotFound].
	FindNoteByID(ctx context.Context, id int64) (models.Note, error)

	// FindNotesByOwner returns all notes owned by the given username,
	// ordered by id. An owner with no notes yields an empty slice.
	FindNotesByOwner(ctx context.Context, owner string) ([]models.Note, error)

	// UpdateNote applies a partial title/content update scoped to the
	// note's owner. A mismatched id/owner pair yields [ErrNoteNotFound].
	UpdateNote(ctx context.Context, update models.NoteUpdate) error

	// DeleteNote removes a note by id. A missing note yields
	// [ErrNoteNotFound].
	DeleteNote(ctx context.Context, id int64) error
}

// ErrorClassificator tags driver-level errors as transient or permanent.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
