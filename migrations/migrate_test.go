// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kim Deakers

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB directly

	err = Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "mysql")
	if err == nil {
		t.Fatal("expected error for unsupported driver, got nil")
	}

	if !strings.Contains(err.Error(), "unsupported driver") {
		t.Errorf("expected 'unsupported driver' error, got: %v", err)
	}
}

func TestMigrate_SQLiteProvisionsSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("failed to migrate sqlite database: %v", err)
	}

	// Both tables must exist and accept rows.
	_, err = db.Exec(`INSERT INTO users (username, password, email, first_name, last_name)
		VALUES ('alice', 'hash', 'alice@example.com', 'Alice', 'Smith')`)
	if err != nil {
		t.Fatalf("failed to insert into users: %v", err)
	}
	_, err = db.Exec(`INSERT INTO notes (title, content, owner) VALUES ('T', 'C', 'alice')`)
	if err != nil {
		t.Fatalf("failed to insert into notes: %v", err)
	}

	// A second run over an up-to-date schema is a no-op.
	if err := Migrate(db, "sqlite3"); err != nil {
		t.Fatalf("re-running migrations failed: %v", err)
	}
}
