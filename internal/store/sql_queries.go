package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/kmdeakers/go-notes/models"
)

const (
	createUser = `INSERT INTO users (username, password, email, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING username, password, email, first_name, last_name, created_at;`

	findUserByUsername = `SELECT username, password, email, first_name, last_name, created_at
    FROM users
    WHERE username = $1;`

	deleteUser = `DELETE FROM users
    WHERE username = $1;`

	createNote = `INSERT INTO notes (title, content, owner)
    VALUES ($1, $2, $3)
    RETURNING id, title, content, owner, created_at, updated_at;`

	findNoteByID = `SELECT id, title, content, owner, created_at, updated_at
    FROM notes
    WHERE id = $1;`

	findNotesByOwner = `SELECT id, title, content, owner, created_at, updated_at
    FROM notes
    WHERE owner = $1
    ORDER BY id;`

	deleteNote = `DELETE FROM notes
    WHERE id = $1;`
)

// buildNoteUpdateQuery dynamically builds an UPDATE statement for a partial
// note update. Only non-nil fields of update produce SET clauses; updated_at
// is always stamped. The WHERE clause binds both id and owner so that a
// mismatched owner updates zero rows.
func buildNoteUpdateQuery(update models.NoteUpdate) (string, []any, error) {
	builder := sq.Update(models.Note{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}

	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"id": update.ID}).
		Where(sq.Eq{"owner": update.Owner}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
