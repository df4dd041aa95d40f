// internal/state/interface.go
package state

import "database/sql"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SavePosition(pos Position)
	GetPosition(url string) (*Position, error)
	DeletePosition(url string) error
	SaveSession(s Session) error
	GetSession() (*Session, error)
	Flush() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
