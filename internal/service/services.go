package service

import (
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
	UserService UserService
}

func NewServices(storages store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
		UserService: NewUserService(storages.UserRepository, storages.NoteRepository, logger),
	}
}
