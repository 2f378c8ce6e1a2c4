package models

// FieldErrors maps a form field name to a human-readable validation message.
// An empty (or nil) map means the form passed validation.
type FieldErrors map[string]string

// HasErrors reports whether at least one field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// RegisterForm carries the submitted values of the registration form.
type RegisterForm struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// LoginForm carries the submitted values of the login form.
type LoginForm struct {
	Username string
	Password string
}

// NoteForm carries the submitted values of the note creation and note
// editing forms.
type NoteForm struct {
	Title   string
	Content string
}
