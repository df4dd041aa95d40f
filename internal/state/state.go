package state

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "scrubber"
	dbFileName   = "scrubber.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager persists resume positions and the last session in SQLite.
// Position writes are debounced; reads see pending writes.
type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]Position
	writing   map[string]Position // snapshot being written by Flush

	flushMu sync.Mutex // serializes Flush and DeletePosition
}

// Open opens the database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the database at path. ":memory:" gives a private database.
func OpenPath(path string) (*Manager, error) {
	if path != ":memory:" {
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One connection: the debounced writer and readers share it, and an
	// in-memory database only exists on the connection that created it.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, pending: make(map[string]Position)}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	// Flush pending positions
	_ = m.Flush()

	m.flushMu.Lock()
	defer m.flushMu.Unlock()
	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// SavePosition records pos. The write happens after a short quiet period so
// that rapid seeks cost a single write.
func (m *Manager) SavePosition(pos Position) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	if pos.UpdatedAt.IsZero() {
		pos.UpdatedAt = time.Now()
	}
	m.pending[pos.URL] = pos

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		_ = m.Flush()
	})
}

// Flush writes pending positions immediately. Flushes are serialized and
// each one snapshots pending only once it holds the write lock, so an older
// snapshot can never land after a newer one.
func (m *Manager) Flush() error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	pending := m.pending
	m.pending = make(map[string]Position)
	m.writing = pending
	m.saveMu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	err := savePositions(context.Background(), m.db, pending)

	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.writing = nil
	if err != nil {
		// Keep the unsaved positions unless newer ones arrived meanwhile.
		for url, pos := range pending {
			if _, ok := m.pending[url]; !ok {
				m.pending[url] = pos
			}
		}
	}
	return err
}

// GetPosition returns the saved position for url, including writes that are
// pending or in flight. It returns nil when there is none.
func (m *Manager) GetPosition(url string) (*Position, error) {
	m.saveMu.Lock()
	pos, ok := m.pending[url]
	if !ok {
		pos, ok = m.writing[url]
	}
	m.saveMu.Unlock()
	if ok {
		return &pos, nil
	}
	return getPosition(m.db, url)
}

func (m *Manager) DeletePosition(url string) error {
	m.flushMu.Lock()
	defer m.flushMu.Unlock()

	m.saveMu.Lock()
	delete(m.pending, url)
	m.saveMu.Unlock()
	return deletePosition(m.db, url)
}

func (m *Manager) GetSession() (*Session, error) {
	return getSession(m.db)
}

func (m *Manager) SaveSession(s Session) error {
	return saveSession(m.db, s)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
