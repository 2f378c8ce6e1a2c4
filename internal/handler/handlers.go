package handler

import (
	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/handler/http"
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/service"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, sessions *session.Manager, validator validators.FormValidator, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, sessions, validator, cfg.App.Version, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
