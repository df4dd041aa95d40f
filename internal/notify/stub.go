//go:build !linux

package notify

import "errors"

// New fails outside Linux: there is no freedesktop notification server.
func New() (Notifier, error) {
	return nil, errors.New("desktop notifications need a freedesktop session bus")
}
