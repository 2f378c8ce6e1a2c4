package http

import (
	"context"
	"net/http"

	"github.com/kmdeakers/go-notes/internal/utils"
)

// withSession is an HTTP middleware that resolves the session cookie.
//
// It validates the cookie via [session.Manager.CurrentIdentity] and — on
// success — stores the authenticated username under [utils.UsernameCtxKey]
// and the parsed token under [utils.SessionCtxKey] before delegating to the
// next handler.
//
// The middleware never rejects a request: an absent or invalid session just
// leaves the context anonymous. Ownership guards run in the handlers, which
// redirect with a flash notice the way the form flows expect, rather than
// answering 401.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := h.sessions.CurrentIdentity(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		// Store the identity in the context so that downstream handlers can
		// use it without re-parsing the token.
		ctx := context.WithValue(r.Context(), utils.UsernameCtxKey, token.Username)
		ctx = context.WithValue(ctx, utils.SessionCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
