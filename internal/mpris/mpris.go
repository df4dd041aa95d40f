//go:build linux

package mpris

import (
	"github.com/quarckster/go-mpris-server/pkg/server"
)

// Adapter exposes the player on the session bus as an MPRIS media player.
type Adapter struct {
	player *playerAdapter
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Remote requests are passed to
// dispatch from the D-Bus goroutine.
func New(dispatch func(Command)) (*Adapter, error) {
	a := &Adapter{player: newPlayerAdapter(dispatch)}
	a.server = server.NewServer("scrubber", &rootAdapter{dispatch: dispatch}, a.player)

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Update publishes the current player state.
func (a *Adapter) Update(s Snapshot) {
	a.player.update(s)
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}
