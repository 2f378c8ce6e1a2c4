package models

import "time"

// Note represents a single text note owned by exactly one user.
//
// A note always references an existing [User] through the Owner field; the
// database enforces this with a foreign key that cascades on user deletion.
type Note struct {
	// ID is the system-generated primary key of the note.
	ID int64 `json:"id"`

	// Title is the short heading of the note. Required, limited to
	// 100 characters.
	Title string `json:"title"`

	// Content is the note body. Required, unbounded length.
	Content string `json:"content"`

	// Owner is the username of the user the note belongs to. It is always
	// assigned from the authenticated session identity, never from client
	// input.
	Owner string `json:"owner"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last title/content change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial update of a note. Nil fields are left
// untouched by the generated UPDATE statement. Only Title and Content are
// updatable; the owner of a note never changes.
type NoteUpdate struct {
	// ID identifies the note to update.
	ID int64

	// Owner scopes the update to the note's owner. The UPDATE statement
	// includes it in the WHERE clause so a mismatched owner updates nothing.
	Owner string

	// Title is the new title, or nil to keep the current one.
	Title *string

	// Content is the new body, or nil to keep the current one.
	Content *string
}
