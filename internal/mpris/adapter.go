package mpris

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/scrubber/internal/playback"
)

// CommandKind identifies a remote-control request.
type CommandKind int

const (
	CommandPlay CommandKind = iota
	CommandPause
	CommandPlayPause
	CommandStop
	CommandSeek        // relative, by Offset
	CommandSetPosition // absolute, to Position
	CommandSetLoop
	CommandQuit
)

// Command is a remote-control request. It is handed to the dispatcher and
// must be applied on the goroutine that owns the playback controller.
type Command struct {
	Kind     CommandKind
	Offset   time.Duration
	Position time.Duration
	Loop     bool
}

// Snapshot is the player state reported over D-Bus.
type Snapshot struct {
	URL      string
	Title    string
	State    playback.State
	Position time.Duration
	Length   time.Duration
	Loop     bool
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and
// OrgMprisMediaPlayer2PlayerAdapterLoopStatus. D-Bus calls arrive on their
// own goroutine: reads use the last snapshot and writes become Commands.
type playerAdapter struct {
	mu       sync.RWMutex
	snap     Snapshot
	dispatch func(Command)
}

func newPlayerAdapter(dispatch func(Command)) *playerAdapter {
	return &playerAdapter{dispatch: dispatch, snap: Snapshot{State: playback.StateLoading}}
}

func (p *playerAdapter) update(s Snapshot) {
	p.mu.Lock()
	p.snap = s
	p.mu.Unlock()
}

func (p *playerAdapter) snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

func (p *playerAdapter) send(c Command) error {
	if p.dispatch != nil {
		p.dispatch(c)
	}
	return nil
}

func (p *playerAdapter) Next() error     { return nil }
func (p *playerAdapter) Previous() error { return nil }

func (p *playerAdapter) Pause() error     { return p.send(Command{Kind: CommandPause}) }
func (p *playerAdapter) PlayPause() error { return p.send(Command{Kind: CommandPlayPause}) }
func (p *playerAdapter) Stop() error      { return p.send(Command{Kind: CommandStop}) }
func (p *playerAdapter) Play() error      { return p.send(Command{Kind: CommandPlay}) }

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	return p.send(Command{Kind: CommandSeek, Offset: time.Duration(offset) * time.Microsecond})
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	return p.send(Command{Kind: CommandSetPosition, Position: time.Duration(position) * time.Microsecond})
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.snapshot().State), nil
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch s {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying
	case playback.StatePaused, playback.StatePrepared, playback.StateSkipping:
		return types.PlaybackStatusPaused
	case playback.StateLoading, playback.StateError, playback.StateExited:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.snapshot()
	if snap.URL == "" {
		return types.Metadata{}, nil
	}

	return types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(snap.URL)),
		Length:  types.Microseconds(snap.Length.Microseconds()),
		Title:   snap.Title,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	return p.snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	s := p.snapshot().State
	return s != playback.StateExited && s != playback.StateLoading, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.snapshot().State.CanSkip(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	snap := p.snapshot()
	return snap.State.CanSkip() && snap.Length > 0, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	if p.snapshot().Loop {
		return types.LoopStatusTrack, nil
	}
	return types.LoopStatusNone, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	return p.send(Command{Kind: CommandSetLoop, Loop: status != types.LoopStatusNone})
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct {
	dispatch func(Command)
}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	if r.dispatch != nil {
		r.dispatch(Command{Kind: CommandQuit})
	}
	return nil
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return true, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Scrubber", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"sim"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{}, nil
}

func formatTrackID(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
