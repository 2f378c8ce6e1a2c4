package http

import (
	"net/http"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/utils"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := map[string]string{
		"status":  "ok",
		"version": h.version,
	}

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
