package state

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func setupTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := OpenPath(":memory:")
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestInitSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := initSchema(db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("read schema version: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestGetPosition_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	pos, err := getPosition(db, "sim://intro")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if pos != nil {
		t.Errorf("expected nil position on empty db, got %+v", pos)
	}
}

func TestSaveAndGetPositions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	updated := time.Unix(1_700_000_000, 0)
	positions := map[string]Position{
		"sim://a": {URL: "sim://a", Frame: 120, FrameCount: 240, UpdatedAt: updated},
		"sim://b": {URL: "sim://b", Frame: 7, UpdatedAt: updated},
	}
	if err := savePositions(context.Background(), db, positions); err != nil {
		t.Fatalf("savePositions failed: %v", err)
	}

	a, err := getPosition(db, "sim://a")
	if err != nil || a == nil {
		t.Fatalf("getPosition(a) = %v, %v", a, err)
	}
	if a.Frame != 120 || a.FrameCount != 240 || !a.UpdatedAt.Equal(updated) {
		t.Errorf("position a = %+v", a)
	}

	b, err := getPosition(db, "sim://b")
	if err != nil || b == nil {
		t.Fatalf("getPosition(b) = %v, %v", b, err)
	}
	if b.FrameCount != 0 {
		t.Errorf("FrameCount = %d, want 0 for unknown length", b.FrameCount)
	}
}

func TestSavePositions_Update(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := map[string]Position{"sim://a": {URL: "sim://a", Frame: 10, UpdatedAt: time.Unix(1, 0)}}
	second := map[string]Position{"sim://a": {URL: "sim://a", Frame: 99, FrameCount: 100, UpdatedAt: time.Unix(2, 0)}}
	if err := savePositions(context.Background(), db, first); err != nil {
		t.Fatal(err)
	}
	if err := savePositions(context.Background(), db, second); err != nil {
		t.Fatal(err)
	}

	pos, _ := getPosition(db, "sim://a")
	if pos == nil || pos.Frame != 99 || pos.FrameCount != 100 {
		t.Errorf("position = %+v, want frame 99 of 100", pos)
	}

	var count int
	_ = db.QueryRow(`SELECT COUNT(*) FROM positions`).Scan(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestDeletePosition(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_ = savePositions(context.Background(), db, map[string]Position{"sim://a": {URL: "sim://a", Frame: 1}})
	if err := deletePosition(db, "sim://a"); err != nil {
		t.Fatalf("deletePosition failed: %v", err)
	}
	if pos, _ := getPosition(db, "sim://a"); pos != nil {
		t.Errorf("expected nil after delete, got %+v", pos)
	}
	if err := deletePosition(db, "sim://missing"); err != nil {
		t.Errorf("deletePosition on missing url failed: %v", err)
	}
}

func TestPosition_Finished(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{Frame: 100, FrameCount: 100}, true},
		{Position{Frame: 99, FrameCount: 100}, false},
		{Position{Frame: 100}, false},
	}
	for _, tt := range tests {
		if got := tt.pos.Finished(); got != tt.want {
			t.Errorf("%+v.Finished() = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestSession(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	s, err := getSession(db)
	if err != nil {
		t.Fatalf("getSession failed: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil session on empty db, got %+v", s)
	}

	if err := saveSession(db, Session{LastURL: "sim://a", AutoPlay: true}); err != nil {
		t.Fatalf("saveSession failed: %v", err)
	}
	if err := saveSession(db, Session{LastURL: "sim://b"}); err != nil {
		t.Fatalf("saveSession (update) failed: %v", err)
	}

	s, err = getSession(db)
	if err != nil || s == nil {
		t.Fatalf("getSession = %v, %v", s, err)
	}
	if s.LastURL != "sim://b" || s.AutoPlay {
		t.Errorf("session = %+v, want sim://b without autoplay", s)
	}
}

// Manager tests

func TestManager_PendingPositionVisible(t *testing.T) {
	m := setupTestManager(t)

	m.SavePosition(Position{URL: "sim://a", Frame: 42})

	pos, err := m.GetPosition("sim://a")
	if err != nil {
		t.Fatalf("GetPosition failed: %v", err)
	}
	if pos == nil || pos.Frame != 42 {
		t.Errorf("GetPosition = %+v, want frame 42", pos)
	}
	if pos != nil && pos.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on save")
	}
}

func TestManager_FlushWritesLatest(t *testing.T) {
	m := setupTestManager(t)

	m.SavePosition(Position{URL: "sim://a", Frame: 1})
	m.SavePosition(Position{URL: "sim://a", Frame: 2})
	m.SavePosition(Position{URL: "sim://b", Frame: 3})

	if err := m.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	a, _ := getPosition(m.DB(), "sim://a")
	b, _ := getPosition(m.DB(), "sim://b")
	if a == nil || a.Frame != 2 {
		t.Errorf("stored a = %+v, want frame 2", a)
	}
	if b == nil || b.Frame != 3 {
		t.Errorf("stored b = %+v, want frame 3", b)
	}

	if err := m.Flush(); err != nil {
		t.Errorf("empty Flush failed: %v", err)
	}
}

func TestManager_QueuedFlushesKeepNewest(t *testing.T) {
	m := setupTestManager(t)

	// Both flushes queue behind a write in progress; the older save must not
	// land last.
	m.flushMu.Lock()
	var wg sync.WaitGroup
	flush := func() {
		defer wg.Done()
		if err := m.Flush(); err != nil {
			t.Errorf("Flush failed: %v", err)
		}
	}
	m.SavePosition(Position{URL: "sim://a", Frame: 10})
	wg.Add(1)
	go flush()
	m.SavePosition(Position{URL: "sim://a", Frame: 20})
	wg.Add(1)
	go flush()
	m.flushMu.Unlock()
	wg.Wait()

	stored, err := getPosition(m.DB(), "sim://a")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if stored == nil || stored.Frame != 20 {
		t.Errorf("stored = %+v, want frame 20", stored)
	}
}

func TestManager_InFlightPositionVisible(t *testing.T) {
	m := setupTestManager(t)

	m.saveMu.Lock()
	m.writing = map[string]Position{"sim://a": {URL: "sim://a", Frame: 7}}
	m.saveMu.Unlock()

	pos, err := m.GetPosition("sim://a")
	if err != nil {
		t.Fatalf("GetPosition failed: %v", err)
	}
	if pos == nil || pos.Frame != 7 {
		t.Errorf("GetPosition = %+v, want frame 7 while the write is in flight", pos)
	}
}

func TestManager_DeletePositionDropsPending(t *testing.T) {
	m := setupTestManager(t)

	m.SavePosition(Position{URL: "sim://a", Frame: 5})
	if err := m.DeletePosition("sim://a"); err != nil {
		t.Fatalf("DeletePosition failed: %v", err)
	}
	_ = m.Flush()

	if pos, _ := m.GetPosition("sim://a"); pos != nil {
		t.Errorf("GetPosition after delete = %+v, want nil", pos)
	}
}

func TestManager_CloseFlushes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scrubber.db")
	m, err := OpenPath(path)
	if err != nil {
		t.Fatalf("OpenPath failed: %v", err)
	}
	m.SavePosition(Position{URL: "sim://a", Frame: 77, FrameCount: 100})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := OpenPath(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	pos, err := reopened.GetPosition("sim://a")
	if err != nil || pos == nil {
		t.Fatalf("GetPosition = %v, %v", pos, err)
	}
	if pos.Frame != 77 || pos.FrameCount != 100 {
		t.Errorf("position = %+v, want 77 of 100", pos)
	}
}

func TestManager_Session(t *testing.T) {
	m := setupTestManager(t)

	if err := m.SaveSession(Session{LastURL: "sim://a"}); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	s, err := m.GetSession()
	if err != nil || s == nil || s.LastURL != "sim://a" {
		t.Errorf("GetSession = %+v, %v", s, err)
	}
}

func TestMock(t *testing.T) {
	m := NewMock()
	m.SavePosition(Position{URL: "sim://a", Frame: 3})

	pos, err := m.GetPosition("sim://a")
	if err != nil || pos == nil || pos.Frame != 3 {
		t.Errorf("GetPosition = %+v, %v", pos, err)
	}
	if m.Saves() != 1 {
		t.Errorf("Saves() = %d, want 1", m.Saves())
	}

	boom := errors.New("boom")
	m.SetError(boom)
	if _, err := m.GetPosition("sim://a"); !errors.Is(err, boom) {
		t.Errorf("GetPosition error = %v, want boom", err)
	}
}
