package service

import (
	"context"
	"fmt"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/models"
)

// noteService is the concrete implementation of NoteService.
// Every read or mutation of an existing note enforces ownership: the
// requester must be the note's owner, and a foreign note is reported as
// ErrNotPermitted regardless of the operation.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

// NewNoteService constructs a new NoteService wired to the given NoteRepository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// CreateNote persists a new note owned by the given user.
//
// Returns:
//   - ErrInvalidDataProvided if the owner or the title is empty.
//   - A wrapped storage error if the repository call fails (e.g. the owner
//     account no longer exists — see store.ErrNoUserWasFound).
func (s *noteService) CreateNote(ctx context.Context, owner string, form models.NoteForm) (models.Note, error) {
	log := logger.FromContext(ctx)

	if owner == "" || form.Title == "" {
		log.Error().Str("owner", owner).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	note, err := s.noteRepository.CreateNote(ctx, models.Note{
		Title:   form.Title,
		Content: form.Content,
		Owner:   owner,
	})
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return note, nil
}

// GetOwnedNote retrieves a note on behalf of the requester.
//
// Returns:
//   - store.ErrNoteNotFound if no note has the given id.
//   - ErrNotPermitted if the note exists but belongs to someone else.
func (s *noteService) GetOwnedNote(ctx context.Context, requester string, id int64) (models.Note, error) {
	note, err := s.noteRepository.FindNoteByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if note.Owner != requester || requester == "" {
		return models.Note{}, ErrNotPermitted
	}

	return note, nil
}

// UpdateNote replaces the title and content of an owned note.
//
// The existence and ownership checks mirror [noteService.GetOwnedNote]; the
// UPDATE statement additionally binds the owner, so a note that changes hands
// between the check and the write still cannot be modified.
func (s *noteService) UpdateNote(ctx context.Context, requester string, id int64, form models.NoteForm) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetOwnedNote(ctx, requester, id); err != nil {
		return err
	}

	update := models.NoteUpdate{
		ID:      id,
		Owner:   requester,
		Title:   &form.Title,
		Content: &form.Content,
	}

	if err := s.noteRepository.UpdateNote(ctx, update); err != nil {
		log.Err(err).Int64("note_id", id).Str("owner", requester).Msg("note update ended with error")
		return fmt.Errorf("note update ended with error: %w", err)
	}

	return nil
}

// DeleteNote removes an owned note.
//
// Returns store.ErrNoteNotFound for an unknown id and ErrNotPermitted for a
// foreign note, matching [noteService.GetOwnedNote].
func (s *noteService) DeleteNote(ctx context.Context, requester string, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := s.GetOwnedNote(ctx, requester, id); err != nil {
		return err
	}

	if err := s.noteRepository.DeleteNote(ctx, id); err != nil {
		log.Err(err).Int64("note_id", id).Str("owner", requester).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}
