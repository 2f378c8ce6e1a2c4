package validators

// Validation messages rendered next to the offending form field.
const (
	MsgRequired     = "This field is required."
	MsgInvalidEmail = "Invalid email address."
)

// Field name constants used as keys in [models.FieldErrors].
const (
	// FieldUsername targets the login name of an account.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a registration or login form.
	FieldPassword = "password"

	// FieldEmail targets the contact email of an account.
	FieldEmail = "email"

	// FieldFirstName targets the given name of an account.
	FieldFirstName = "first_name"

	// FieldLastName targets the family name of an account.
	FieldLastName = "last_name"

	// FieldTitle targets the title of a note.
	FieldTitle = "title"

	// FieldContent targets the body text of a note.
	FieldContent = "content"
)
