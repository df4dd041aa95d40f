package app

import (
	"time"

	"github.com/llehouerou/scrubber/internal/mpris"
)

// TickMsg is sent once per rendered frame and drives the engine clock.
type TickMsg time.Time

// RemoteMsg carries a media-remote request into the update loop.
type RemoteMsg mpris.Command
