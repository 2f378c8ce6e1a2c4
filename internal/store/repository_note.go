package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It handles note creation, lookup, partial update, and deletion against
// the "notes" table.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns the fully populated
// [models.Note] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) — the owner does not
//     reference an existing user → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createNote, note.Title, note.Content, note.Owner)

	// scan saved note from db
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &note.CreatedAt, &note.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Bool("transient", r.db.isTransient(err)).Msg("error: note was not saved")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Note{}, ErrNoUserWasFound
		case "":
			return models.Note{}, fmt.Errorf("%w: %w", ErrNoteNotSaved, err)
		default:
			return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return note, nil
}

// FindNoteByID retrieves the note with the given id.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrNoteNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) FindNoteByID(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.db.QueryRowContext(ctx, findNoteByID, id)

	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &note.CreatedAt, &note.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).Str("func", "*noteRepository.FindNoteByID").Bool("transient", r.db.isTransient(err)).Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// FindNotesByOwner returns every note owned by the given username, ordered
// by id (oldest first). An owner with no notes yields an empty slice, not an
// error — rendering an empty note list is a normal outcome.
func (r *noteRepository) FindNotesByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findNotesByOwner, owner)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Bool("transient", r.db.isTransient(err)).Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*noteRepository.FindNotesByOwner").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// UpdateNote applies a partial title/content update built by
// [buildNoteUpdateQuery]. The statement's WHERE clause binds both the note
// id and the owner, so an id that exists under a different owner affects
// zero rows and is reported as [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildNoteUpdateQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error: building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Bool("transient", r.db.isTransient(err)).Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes the note with the given id irrevocably.
//
// Error handling:
//   - Zero affected rows → [ErrNoteNotFound].
//   - Any driver-level error → wrapped in [ErrExecutingStatement].
func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNote, id)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Bool("transient", r.db.isTransient(err)).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
