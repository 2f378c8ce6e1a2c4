package http

import (
	"fmt"
	"net/http"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/models"
)

// homepage redirects to the registration page.
func (h *Handler) homepage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/register", http.StatusFound)
}

func (h *Handler) getRegister(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.EnsureFormToken(w, r)
	flash, _ := session.PopFlash(w, r)
	h.render(w, r, "register.html", registerView{Flash: flash, CSRF: token})
}

func (h *Handler) postRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	csrf := r.PostFormValue(csrfFieldName)
	if !h.sessions.VerifyFormToken(r, csrf) {
		session.SetFlash(w, msgUnauthorized)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	form := models.RegisterForm{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		Email:     r.PostFormValue("email"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
	}

	if fieldErrors := h.validator.ValidateRegisterForm(form); fieldErrors.HasErrors() {
		h.render(w, r, "register.html", registerView{CSRF: csrf, Form: form, Errors: fieldErrors})
		return
	}

	user, err := h.services.AuthService.Register(ctx, form)
	if err != nil {
		log.Err(err).Msg("building user record failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := h.services.AuthService.CreateUser(ctx, user); err != nil {
		log.Err(err).Str("username", form.Username).Msg("unexpected error occurred during user registration")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := h.sessions.SetIdentity(w, user.Username); err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s", user.Username), http.StatusFound)
}

func (h *Handler) getLogin(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.EnsureFormToken(w, r)
	flash, _ := session.PopFlash(w, r)
	h.render(w, r, "login.html", loginView{Flash: flash, CSRF: token})
}

func (h *Handler) postLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form data was passed")
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	csrf := r.PostFormValue(csrfFieldName)
	if !h.sessions.VerifyFormToken(r, csrf) {
		session.SetFlash(w, msgUnauthorized)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	form := models.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	if fieldErrors := h.validator.ValidateLoginForm(form); fieldErrors.HasErrors() {
		h.render(w, r, "login.html", loginView{CSRF: csrf, Form: form, Errors: fieldErrors})
		return
	}

	user, ok, err := h.services.AuthService.Authenticate(ctx, form.Username, form.Password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user login")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !ok {
		// An unknown username and a wrong password render the same message.
		h.render(w, r, "login.html", loginView{
			CSRF:   csrf,
			Form:   models.LoginForm{Username: form.Username},
			Errors: models.FieldErrors{"username": msgBadNamePassword},
		})
		return
	}

	if _, err := h.sessions.SetIdentity(w, user.Username); err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/users/%s", user.Username), http.StatusFound)
}

// postLogout clears the session identity. The CSRF middleware has already
// verified the token, so there is nothing left to check here; logging out an
// already-anonymous visitor is a no-op.
func (h *Handler) postLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearIdentity(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
