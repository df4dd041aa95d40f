// internal/state/mock.go
package state

import "database/sql"

// Mock is a test double for Manager. Positions are stored immediately.
type Mock struct {
	positions map[string]Position
	session   *Session
	saves     int
	flushes   int
	err       error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{positions: make(map[string]Position)}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SavePosition(pos Position) {
	m.saves++
	m.positions[pos.URL] = pos
}

func (m *Mock) GetPosition(url string) (*Position, error) {
	if m.err != nil {
		return nil, m.err
	}
	pos, ok := m.positions[url]
	if !ok {
		return nil, nil //nolint:nilnil // mirrors Manager
	}
	return &pos, nil
}

func (m *Mock) DeletePosition(url string) error {
	delete(m.positions, url)
	return m.err
}

func (m *Mock) SaveSession(s Session) error {
	m.session = &s
	return m.err
}

func (m *Mock) GetSession() (*Session, error) {
	return m.session, m.err
}

func (m *Mock) Flush() error {
	m.flushes++
	return m.err
}

func (m *Mock) Close() error {
	return nil
}

// Test helpers

func (m *Mock) SetError(err error) { m.err = err }

func (m *Mock) Saves() int { return m.saves }

func (m *Mock) Flushes() int { return m.flushes }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
