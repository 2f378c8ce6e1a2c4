package models

import "time"

// User represents a site account used for authentication and note ownership.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique account identifier and the primary key of the
	// users table. Limited to 20 characters.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password, never the
	// plaintext value. Limited to 100 characters.
	// It is excluded from JSON serialization.
	Password string `json:"-"`

	// Email is the unique contact address of the account.
	// Limited to 50 characters.
	Email string `json:"email"`

	// FirstName is the user's given name. Limited to 30 characters.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Limited to 30 characters.
	LastName string `json:"last_name"`

	// CreatedAt is the timestamp when the account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
