package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/service"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/internal/utils"
	"github.com/kmdeakers/go-notes/models"
)

// lookupProfileOwner resolves the {username} route parameter and enforces
// that the session identity owns the profile. It writes the response itself
// on failure and reports whether the caller may proceed.
func (h *Handler) lookupProfileOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	user, _, err := h.services.UserService.Profile(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			http.NotFound(w, r)
			return "", false
		}
		log.Err(err).Str("username", username).Msg("unexpected error occurred loading profile")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return "", false
	}

	identity, _ := utils.GetUsernameFromContext(ctx)
	if !session.IsAuthorized(identity, user.Username) {
		session.SetFlash(w, msgCannotPerform)
		http.Redirect(w, r, "/", http.StatusFound)
		return "", false
	}

	return user.Username, true
}

// lookupOwnedNote resolves the {id} route parameter and enforces that the
// session identity owns the note. It writes the response itself on failure
// and reports whether the caller may proceed.
func (h *Handler) lookupOwnedNote(w http.ResponseWriter, r *http.Request) (models.Note, bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return models.Note{}, false
	}

	identity, _ := utils.GetUsernameFromContext(ctx)

	note, err := h.services.NoteService.GetOwnedNote(ctx, identity, id)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrNotPermitted):
			session.SetFlash(w, msgCannotPerform)
			http.Redirect(w, r, "/", http.StatusFound)
		default:
			log.Err(err).Int64("note_id", id).Msg("unexpected error occurred loading note")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return models.Note{}, false
	}

	return note, true
}

func (h *Handler) getAddNote(w http.ResponseWriter, r *http.Request) {
	username, ok := h.lookupProfileOwner(w, r)
	if !ok {
		return
	}

	token, _ := utils.GetSessionFromContext(r.Context())
	flash, _ := session.PopFlash(w, r)

	h.render(w, r, "note_add.html", noteFormView{
		Flash:    flash,
		CSRF:     token.CSRF,
		Username: username,
	})
}

func (h *Handler) postAddNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username, ok := h.lookupProfileOwner(w, r)
	if !ok {
		return
	}

	token, _ := utils.GetSessionFromContext(ctx)
	form := models.NoteForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	if fieldErrors := h.validator.ValidateNoteForm(form); fieldErrors.HasErrors() {
		h.render(w, r, "note_add.html", noteFormView{
			CSRF:     token.CSRF,
			Username: username,
			Form:     form,
			Errors:   fieldErrors,
		})
		return
	}

	if _, err := h.services.NoteService.CreateNote(ctx, username, form); err != nil {
		log.Err(err).Str("owner", username).Msg("unexpected error occurred during note creation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session.SetFlash(w, msgAddedNote)
	http.Redirect(w, r, fmt.Sprintf("/users/%s", username), http.StatusFound)
}

func (h *Handler) getEditNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.lookupOwnedNote(w, r)
	if !ok {
		return
	}

	token, _ := utils.GetSessionFromContext(r.Context())
	flash, _ := session.PopFlash(w, r)

	h.render(w, r, "note_edit.html", noteFormView{
		Flash:    flash,
		CSRF:     token.CSRF,
		Username: note.Owner,
		NoteID:   note.ID,
		Form:     models.NoteForm{Title: note.Title, Content: note.Content},
	})
}

func (h *Handler) postEditNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	note, ok := h.lookupOwnedNote(w, r)
	if !ok {
		return
	}

	token, _ := utils.GetSessionFromContext(ctx)
	form := models.NoteForm{
		Title:   r.PostFormValue("title"),
		Content: r.PostFormValue("content"),
	}

	if fieldErrors := h.validator.ValidateNoteForm(form); fieldErrors.HasErrors() {
		h.render(w, r, "note_edit.html", noteFormView{
			CSRF:     token.CSRF,
			Username: note.Owner,
			NoteID:   note.ID,
			Form:     form,
			Errors:   fieldErrors,
		})
		return
	}

	if err := h.services.NoteService.UpdateNote(ctx, note.Owner, note.ID, form); err != nil {
		log.Err(err).Int64("note_id", note.ID).Msg("unexpected error occurred during note update")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	session.SetFlash(w, msgEditedNote)
	http.Redirect(w, r, fmt.Sprintf("/users/%s", note.Owner), http.StatusFound)
}

func (h *Handler) postDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	note, ok := h.lookupOwnedNote(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, note.Owner, note.ID); err != nil {
		log.Err(err).Int64("note_id", note.ID).Msg("unexpected error occurred during note deletion")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s", note.Owner), http.StatusFound)
}
