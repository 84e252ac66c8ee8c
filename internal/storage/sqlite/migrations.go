package sqlite

import "database/sql"

// schema sets up the snapshot table. It runs on startup to ensure the table exists.
const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
    key TEXT PRIMARY KEY,
    payload BLOB NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
