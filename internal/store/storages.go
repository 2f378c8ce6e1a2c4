package store

import (
	"context"
	"fmt"

	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/logger"
)

// Storages bundles all repositories backed by a single database connection.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
}

// NewStorages opens the configured database backend, brings its schema up to
// date, and constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.DB.Driver {
	case "pgx":
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to postgres: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to sqlite: %w", err)
		}
		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.DB.Driver)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
	}, nil
}
