// Package validators provides input validation for the HTML forms accepted
// by the application.
//
// Core concepts:
//   - FormValidator: validates submitted form models and reports problems as
//     per-field messages suitable for re-rendering the form.
//
// Usage patterns:
//  1. Inject a FormValidator into handlers.
//  2. Call the form-specific method with the parsed form model.
//  3. Re-render the form with the returned field errors when HasErrors()
//     reports true; proceed with the mutation otherwise.
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable, composable, and testable validation strategies.
package validators

import "github.com/kmdeakers/go-notes/models"

// FormValidator validates submitted form models.
//
// Each method returns a [models.FieldErrors] map keyed by field name. An
// empty map means the form is acceptable.
type FormValidator interface {
	ValidateRegisterForm(form models.RegisterForm) models.FieldErrors
	ValidateLoginForm(form models.LoginForm) models.FieldErrors
	ValidateNoteForm(form models.NoteForm) models.FieldErrors
}
