// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB(), which loads db.GetSchemaSQL()
// so tests always run against the authoritative schema.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/desk/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedActivity inserts a raw activity row.
func seedActivity(t *testing.T, db *sql.DB, id, structure, action, elementID string) {
	t.Helper()
	var s any
	if structure != "" {
		s = structure
	}
	_, err := db.Exec("INSERT INTO activity_log (id, operator, structure, action, element_id) VALUES (?, 'tester', ?, ?, ?)", id, s, action, elementID)
	if err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
}
