package db

import "database/sql"

// SchemaSQL is the complete schema for the desk activity database.
//
// This is the single source of truth for the schema. Tests load it through
// GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- Activity log (one row per mutation of the queue or the history)
CREATE TABLE IF NOT EXISTS activity_log (
	id TEXT PRIMARY KEY,
	operator TEXT,
	structure TEXT CHECK(structure IN ('queue', 'history')),
	action TEXT NOT NULL CHECK(action IN ('seed', 'enqueue', 'dequeue', 'push', 'pop')),
	element_id TEXT,
	summary TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_log_structure ON activity_log(structure);
CREATE INDEX IF NOT EXISTS idx_activity_log_action ON activity_log(action);
`

// InitSchema creates any missing tables.
func InitSchema(database *sql.DB) error {
	_, err := database.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
