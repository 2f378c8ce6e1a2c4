package service

import (
	"context"
	"fmt"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewUserService constructs a new UserService wired to the given repositories.
func NewUserService(userRepository store.UserRepository, noteRepository store.NoteRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// Profile loads a user's account record together with every note they own,
// ordered oldest first. A user with no notes gets an empty slice.
//
// Returns store.ErrNoUserWasFound for an unknown username.
func (s *userService) Profile(ctx context.Context, username string) (models.User, []models.Note, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, nil, err
	}

	notes, err := s.noteRepository.FindNotesByOwner(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("notes lookup ended with error")
		return models.User{}, nil, fmt.Errorf("notes lookup ended with error: %w", err)
	}

	return user, notes, nil
}

// DeleteUser removes the account irrevocably. The user's notes are removed in
// the same statement by the ON DELETE CASCADE constraint on the notes table.
//
// Returns store.ErrNoUserWasFound for an unknown username.
func (s *userService) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if username == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, username); err != nil {
		log.Err(err).Str("username", username).Msg("user deletion ended with error")
		return err
	}

	return nil
}
