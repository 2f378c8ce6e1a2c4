package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/internal/utils"
)

// getUserProfile shows the profile page with the user's notes.
//
// The lookup runs before the authorization check, so probing an unknown
// username yields 404 regardless of who asks, matching the registered flow.
func (h *Handler) getUserProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	user, notes, err := h.services.UserService.Profile(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			http.NotFound(w, r)
			return
		}
		log.Err(err).Str("username", username).Msg("unexpected error occurred loading profile")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, _ := utils.GetUsernameFromContext(ctx)
	if !session.IsAuthorized(identity, user.Username) {
		session.SetFlash(w, msgMustBeLoggedIn)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	token, _ := utils.GetSessionFromContext(ctx)
	flash, _ := session.PopFlash(w, r)

	h.render(w, r, "user.html", profileView{
		Flash: flash,
		CSRF:  token.CSRF,
		User:  user,
		Notes: notes,
	})
}

// postDeleteUser removes the account and all of its notes, clears the
// session and redirects to the homepage.
func (h *Handler) postDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	user, _, err := h.services.UserService.Profile(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			http.NotFound(w, r)
			return
		}
		log.Err(err).Str("username", username).Msg("unexpected error occurred loading profile")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	identity, _ := utils.GetUsernameFromContext(ctx)
	if !session.IsAuthorized(identity, user.Username) {
		session.SetFlash(w, msgCannotPerform)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, user.Username); err != nil {
		log.Err(err).Str("username", username).Msg("unexpected error occurred during user deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.sessions.ClearIdentity(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
