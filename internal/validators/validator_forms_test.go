package validators

import (
	"strings"
	"testing"

	"github.com/kmdeakers/go-notes/models"
)

func validRegisterForm() models.RegisterForm {
	return models.RegisterForm{
		Username:  "alice",
		Password:  "s3cret-password",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}
}

func TestValidateRegisterForm_Valid(t *testing.T) {
	v := NewFormValidator()

	fieldErrors := v.ValidateRegisterForm(validRegisterForm())
	if fieldErrors.HasErrors() {
		t.Errorf("expected no errors, got: %v", fieldErrors)
	}
}

func TestValidateRegisterForm_MissingFields(t *testing.T) {
	v := NewFormValidator()

	fieldErrors := v.ValidateRegisterForm(models.RegisterForm{})
	if !fieldErrors.HasErrors() {
		t.Fatal("expected errors for an empty form")
	}

	for _, field := range []string{FieldUsername, FieldPassword, FieldEmail, FieldFirstName, FieldLastName} {
		if fieldErrors[field] != MsgRequired {
			t.Errorf("expected required message for %s, got: %q", field, fieldErrors[field])
		}
	}
}

func TestValidateRegisterForm_LengthLimits(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name   string
		mutate func(*models.RegisterForm)
		field  string
	}{
		{"username too short", func(f *models.RegisterForm) { f.Username = "a" }, FieldUsername},
		{"username too long", func(f *models.RegisterForm) { f.Username = strings.Repeat("a", UsernameMaxLength+1) }, FieldUsername},
		{"password too long", func(f *models.RegisterForm) { f.Password = strings.Repeat("p", PasswordMaxLength+1) }, FieldPassword},
		{"email too long", func(f *models.RegisterForm) { f.Email = strings.Repeat("e", EmailMaxLength) + "@x.io" }, FieldEmail},
		{"first name too long", func(f *models.RegisterForm) { f.FirstName = strings.Repeat("f", FirstNameMaxLength+1) }, FieldFirstName},
		{"last name too long", func(f *models.RegisterForm) { f.LastName = strings.Repeat("l", LastNameMaxLength+1) }, FieldLastName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validRegisterForm()
			tt.mutate(&form)

			fieldErrors := v.ValidateRegisterForm(form)
			if fieldErrors[tt.field] == "" {
				t.Errorf("expected an error for %s, got none: %v", tt.field, fieldErrors)
			}
			if len(fieldErrors) != 1 {
				t.Errorf("expected exactly one error, got: %v", fieldErrors)
			}
		})
	}
}

func TestValidateRegisterForm_InvalidEmail(t *testing.T) {
	v := NewFormValidator()

	for _, email := range []string{"not-an-email", "a@", "@b.io", "a b@c.io"} {
		form := validRegisterForm()
		form.Email = email

		fieldErrors := v.ValidateRegisterForm(form)
		if fieldErrors[FieldEmail] != MsgInvalidEmail {
			t.Errorf("expected invalid email message for %q, got: %q", email, fieldErrors[FieldEmail])
		}
	}
}

func TestValidateLoginForm(t *testing.T) {
	v := NewFormValidator()

	if e := v.ValidateLoginForm(models.LoginForm{Username: "alice", Password: "pw"}); e.HasErrors() {
		t.Errorf("expected no errors, got: %v", e)
	}

	e := v.ValidateLoginForm(models.LoginForm{})
	if e[FieldUsername] != MsgRequired || e[FieldPassword] != MsgRequired {
		t.Errorf("expected required messages for both fields, got: %v", e)
	}
}

func TestValidateNoteForm(t *testing.T) {
	v := NewFormValidator()

	if e := v.ValidateNoteForm(models.NoteForm{Title: "shopping", Content: "milk"}); e.HasErrors() {
		t.Errorf("expected no errors, got: %v", e)
	}

	e := v.ValidateNoteForm(models.NoteForm{})
	if e[FieldTitle] != MsgRequired {
		t.Errorf("expected required title, got: %v", e)
	}
	if e[FieldContent] != MsgRequired {
		t.Errorf("expected required content, got: %v", e)
	}

	e = v.ValidateNoteForm(models.NoteForm{Title: strings.Repeat("t", TitleMaxLength+1), Content: "c"})
	if e[FieldTitle] == "" {
		t.Error("expected an error for an over-long title")
	}

	e = v.ValidateNoteForm(models.NoteForm{Title: "t", Content: "   "})
	if e[FieldContent] != MsgRequired {
		t.Errorf("expected required content for whitespace-only body, got: %v", e)
	}
}
