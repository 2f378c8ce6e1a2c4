package http

import (
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/service"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/validators"
)

// User-facing notification messages. The wording is part of the interface:
// the profile guard and the mutation guards deliberately use different
// phrases.
const (
	msgMustBeLoggedIn  = "You must be logged in to view!"
	msgCannotPerform   = "You cannot perform this action!"
	msgUnauthorized    = "You are unauthorized!"
	msgAddedNote       = "Added new note!"
	msgEditedNote      = "Edited note!"
	msgBadNamePassword = "Bad name/password"
)

type Handler struct {
	services  *service.Services
	sessions  *session.Manager
	validator validators.FormValidator
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, validator validators.FormValidator, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		validator: validator,
		version:   version,
		logger:    logger,
	}
}
