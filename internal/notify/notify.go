// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"html"
	"strings"
)

// Urgency is the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName      = "Scrubber"
	desktopEntry = "scrubber"
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify shows n and returns its ID. With n.ReplacesID set the server
	// updates that notification in place and returns the same ID.
	Notify(n Notification) (uint32, error)
	// Close withdraws a notification by ID.
	Close(id uint32) error
}

// PlaybackFailed builds the notification shown when the engine reports an
// error. Body text is escaped since servers interpret markup.
func PlaybackFailed(url, message string) Notification {
	lines := []string{html.EscapeString(message)}
	if url != "" {
		lines = append(lines, "<i>"+html.EscapeString(url)+"</i>")
	}
	return Notification{
		Title:   "Playback failed",
		Body:    strings.Join(lines, "\n"),
		Icon:    "dialog-error",
		Timeout: 5000,
		Urgency: UrgencyCritical,
	}
}

// Recorder is a Notifier that keeps what it was sent, for tests. IDs follow
// the server rules: a replacement keeps the replaced ID.
type Recorder struct {
	Sent   []Notification
	Closed []uint32
	nextID uint32
}

func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.Sent = append(r.Sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	r.nextID++
	return r.nextID, nil
}

func (r *Recorder) Close(id uint32) error {
	r.Closed = append(r.Closed, id)
	return nil
}
