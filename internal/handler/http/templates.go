package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// templates holds every page view, parsed once at startup. Each page is a
// standalone template addressed by file name.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// registerView is the data for the registration page.
type registerView struct {
	Flash  string
	CSRF   string
	Form   models.RegisterForm
	Errors models.FieldErrors
}

// loginView is the data for the login page.
type loginView struct {
	Flash  string
	CSRF   string
	Form   models.LoginForm
	Errors models.FieldErrors
}

// profileView is the data for the user profile page with the note list.
type profileView struct {
	Flash string
	CSRF  string
	User  models.User
	Notes []models.Note
}

// noteFormView is the data for the add-note and edit-note pages.
type noteFormView struct {
	Flash    string
	CSRF     string
	Username string
	NoteID   int64
	Form     models.NoteForm
	Errors   models.FieldErrors
}

// render executes the named page template into a buffer and writes it out in
// one piece, so a template error never produces a half-written page.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	log := logger.FromRequest(r)

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
