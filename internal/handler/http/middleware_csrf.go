package http

import (
	"net/http"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/utils"
)

// csrfFieldName is the hidden form field carrying the anti-forgery token.
const csrfFieldName = "csrf_token"

// withCSRF is an HTTP middleware guarding mutating form posts.
//
// It requires an authenticated session in the request context (placed there
// by [Handler.withSession]) and a csrf_token form value matching the token
// bound to that session. On any failure the visitor is flashed
// "You are unauthorized!" and redirected to the homepage; no mutation
// happens.
//
// Registration and login posts are exempt by construction: they are wired
// without this middleware because no session exists yet.
func (h *Handler) withCSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, ok := utils.GetSessionFromContext(r.Context())
		if !ok {
			session.SetFlash(w, msgUnauthorized)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		if err := r.ParseForm(); err != nil {
			log.Err(err).Msg("invalid form data was passed")
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}

		if !h.sessions.VerifyCSRF(token, r.PostFormValue(csrfFieldName)) {
			log.Warn().Str("username", token.Username).Msg("csrf token mismatch")
			session.SetFlash(w, msgUnauthorized)
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
