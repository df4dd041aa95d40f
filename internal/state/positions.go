package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/scrubber/internal/db"
)

// Position is the saved playback position of one media URL.
type Position struct {
	URL        string
	Frame      int64
	FrameCount int64 // 0 when unknown
	UpdatedAt  time.Time
}

// Finished reports whether the position is at the end of the media, where
// resuming makes no sense.
func (p Position) Finished() bool {
	return p.FrameCount > 0 && p.Frame >= p.FrameCount
}

func getPosition(db *sql.DB, url string) (*Position, error) {
	row := db.QueryRow(`
		SELECT url, frame, frame_count, updated_at
		FROM positions WHERE url = ?
	`, url)

	var pos Position
	var frameCount sql.Null[int64]
	var updatedAt int64

	err := row.Scan(&pos.URL, &pos.Frame, &frameCount, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved position is valid for new media
	}
	if err != nil {
		return nil, err
	}

	pos.FrameCount = dbutil.Value(frameCount)
	pos.UpdatedAt = time.Unix(updatedAt, 0)

	return &pos, nil
}

func savePositions(ctx context.Context, db *sql.DB, positions map[string]Position) error {
	return dbutil.WithTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO positions (url, frame, frame_count, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(url) DO UPDATE SET
				frame = excluded.frame,
				frame_count = excluded.frame_count,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, pos := range positions {
			frameCount := dbutil.NullIfZero(max(pos.FrameCount, 0))
			if _, err := stmt.ExecContext(ctx, pos.URL, pos.Frame, frameCount, pos.UpdatedAt.Unix()); err != nil {
				return err
			}
		}
		return nil
	})
}

func deletePosition(db *sql.DB, url string) error {
	_, err := db.Exec(`DELETE FROM positions WHERE url = ?`, url)
	return err
}
