package service

import (
	"context"

	"github.com/kmdeakers/go-notes/models"
)

type AuthService interface {
	Register(ctx context.Context, form models.RegisterForm) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	Authenticate(ctx context.Context, username, password string) (models.User, bool, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, owner string, form models.NoteForm) (models.Note, error)
	GetOwnedNote(ctx context.Context, requester string, id int64) (models.Note, error)
	UpdateNote(ctx context.Context, requester string, id int64, form models.NoteForm) error
	DeleteNote(ctx context.Context, requester string, id int64) error
}

type UserService interface {
	Profile(ctx context.Context, username string) (models.User, []models.Note, error)
	DeleteUser(ctx context.Context, username string) error
}
