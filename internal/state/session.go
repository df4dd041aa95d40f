package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/scrubber/internal/db"
)

// Session is what the player reopens when started without a URL.
type Session struct {
	LastURL  string
	AutoPlay bool
}

func getSession(db *sql.DB) (*Session, error) {
	row := db.QueryRow(`SELECT last_url, autoplay FROM session_state WHERE id = 1`)

	var lastURL sql.Null[string]
	var s Session
	err := row.Scan(&lastURL, &s.AutoPlay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session on first run
	}
	if err != nil {
		return nil, err
	}
	s.LastURL = dbutil.Value(lastURL)

	return &s, nil
}

func saveSession(db *sql.DB, s Session) error {
	_, err := db.Exec(`
		INSERT INTO session_state (id, last_url, autoplay)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_url = excluded.last_url,
			autoplay = excluded.autoplay
	`, dbutil.NullIfZero(s.LastURL), s.AutoPlay)
	return err
}
