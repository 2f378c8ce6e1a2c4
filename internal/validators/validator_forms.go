package validators

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/kmdeakers/go-notes/models"
)

// Length limits mirror the column widths of the users and notes tables.
// Passwords are limited to 72 bytes because bcrypt ignores everything beyond
// that.
const (
	UsernameMinLength  = 2
	UsernameMaxLength  = 20
	PasswordMaxLength  = 72
	EmailMaxLength     = 50
	FirstNameMaxLength = 30
	LastNameMaxLength  = 30
	TitleMaxLength     = 100
)

// formValidator implements [FormValidator] for the registration, login and
// note forms.
type formValidator struct {
}

// NewFormValidator constructs the default [FormValidator].
func NewFormValidator() FormValidator {
	return &formValidator{}
}

// ValidateRegisterForm checks a registration submission.
//
// Rules:
//   - every field is required
//   - username length between UsernameMinLength and UsernameMaxLength
//   - email must parse as an address and fit the column width
//   - first and last name must fit their column widths
//   - password must not exceed PasswordMaxLength bytes
func (v *formValidator) ValidateRegisterForm(form models.RegisterForm) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	v.checkLengthBetween(fieldErrors, FieldUsername, form.Username, UsernameMinLength, UsernameMaxLength)

	if form.Password == "" {
		fieldErrors[FieldPassword] = MsgRequired
	} else if len(form.Password) > PasswordMaxLength {
		fieldErrors[FieldPassword] = lengthMessage(1, PasswordMaxLength)
	}

	v.checkEmail(fieldErrors, form.Email)
	v.checkLengthBetween(fieldErrors, FieldFirstName, form.FirstName, 1, FirstNameMaxLength)
	v.checkLengthBetween(fieldErrors, FieldLastName, form.LastName, 1, LastNameMaxLength)

	return fieldErrors
}

// ValidateLoginForm checks a login submission. Only presence is enforced;
// whether the credentials match an account is decided by authentication, and
// the two failures must not be distinguishable to the caller of the login
// endpoint.
func (v *formValidator) ValidateLoginForm(form models.LoginForm) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	if form.Username == "" {
		fieldErrors[FieldUsername] = MsgRequired
	}
	if form.Password == "" {
		fieldErrors[FieldPassword] = MsgRequired
	}

	return fieldErrors
}

// ValidateNoteForm checks a note create/edit submission.
//
// Rules:
//   - title is required and must fit the column width
//   - content is required
func (v *formValidator) ValidateNoteForm(form models.NoteForm) models.FieldErrors {
	fieldErrors := models.FieldErrors{}

	v.checkLengthBetween(fieldErrors, FieldTitle, form.Title, 1, TitleMaxLength)

	if strings.TrimSpace(form.Content) == "" {
		fieldErrors[FieldContent] = MsgRequired
	}

	return fieldErrors
}

func (v *formValidator) checkLengthBetween(fieldErrors models.FieldErrors, field, value string, min, max int) {
	if value == "" {
		fieldErrors[field] = MsgRequired
		return
	}
	if len(value) < min || len(value) > max {
		fieldErrors[field] = lengthMessage(min, max)
	}
}

func (v *formValidator) checkEmail(fieldErrors models.FieldErrors, email string) {
	if email == "" {
		fieldErrors[FieldEmail] = MsgRequired
		return
	}
	if len(email) > EmailMaxLength {
		fieldErrors[FieldEmail] = lengthMessage(1, EmailMaxLength)
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fieldErrors[FieldEmail] = MsgInvalidEmail
	}
}

func lengthMessage(min, max int) string {
	return fmt.Sprintf("Field must be between %d and %d characters long.", min, max)
}
