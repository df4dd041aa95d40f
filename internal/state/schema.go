package state

import (
	"database/sql"
)

const currentSchemaVersion = 2

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS positions (
			url TEXT PRIMARY KEY,
			frame INTEGER NOT NULL,
			frame_count INTEGER,
			updated_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_positions_updated_at ON positions(updated_at);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_url TEXT,
			autoplay INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	if err != nil {
		return err
	}

	// Migration: add autoplay column if missing
	_, _ = db.Exec(`ALTER TABLE session_state ADD COLUMN autoplay INTEGER NOT NULL DEFAULT 0`)

	return nil
}
