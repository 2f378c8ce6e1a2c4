package store

import (
	"database/sql"

	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/migrations"
)

// DB wraps the standard library connection pool together with the error
// classifier used to tag driver errors as transient in log output.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isTransient reports whether err looks like a transient driver failure
// that could succeed on a later request. Used only to enrich log output;
// no operation in this application is retried (each request is a single
// read-decide-write transaction).
func (db *DB) isTransient(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
