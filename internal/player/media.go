package player

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Scheme is the URL scheme understood by Sim.
const Scheme = "sim"

const (
	defaultFPS    = 24.0
	defaultAspect = 16.0 / 9.0
)

var (
	ErrNoMedia           = errors.New("no media url")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	ErrInvalidMedia      = errors.New("invalid media description")
)

// Media describes a simulated clip.
type Media struct {
	Name       string
	FrameCount int64
	FPS        float64
	Aspect     float64 // width / height
}

// Duration returns the clip length.
func (m Media) Duration() time.Duration {
	return m.FrameDuration(m.FrameCount)
}

// FrameDuration converts a frame index to a playback time.
func (m Media) FrameDuration(frame int64) time.Duration {
	if m.FPS <= 0 {
		return 0
	}
	return time.Duration(float64(frame) / m.FPS * float64(time.Second))
}

// FrameAt converts a playback time to the nearest frame index.
func (m Media) FrameAt(d time.Duration) int64 {
	return int64(math.Round(d.Seconds() * m.FPS))
}

// ParseMedia parses a clip description of the form
//
//	sim://name?frames=2400&fps=24&aspect=16:9
//
// duration=90s may replace frames. fail=<message> makes preparation fail with
// that message.
func ParseMedia(raw string) (Media, error) {
	if strings.TrimSpace(raw) == "" {
		return Media{}, ErrNoMedia
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Media{}, fmt.Errorf("%w: %w", ErrInvalidMedia, err)
	}
	if u.Scheme != Scheme {
		return Media{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	q := u.Query()
	if msg := q.Get("fail"); msg != "" {
		return Media{}, errors.New(msg)
	}

	m := Media{
		Name:   u.Host + u.Path,
		FPS:    defaultFPS,
		Aspect: defaultAspect,
	}
	if m.Name == "" {
		m.Name = u.Opaque
	}

	if v := q.Get("fps"); v != "" {
		fps, err := strconv.ParseFloat(v, 64)
		if err != nil || fps <= 0 || math.IsInf(fps, 0) {
			return Media{}, fmt.Errorf("%w: fps=%q", ErrInvalidMedia, v)
		}
		m.FPS = fps
	}

	if v := q.Get("aspect"); v != "" {
		aspect, err := parseAspect(v)
		if err != nil {
			return Media{}, err
		}
		m.Aspect = aspect
	}

	switch {
	case q.Get("frames") != "":
		v := q.Get("frames")
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Media{}, fmt.Errorf("%w: frames=%q", ErrInvalidMedia, v)
		}
		m.FrameCount = n
	case q.Get("duration") != "":
		v := q.Get("duration")
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Media{}, fmt.Errorf("%w: duration=%q", ErrInvalidMedia, v)
		}
		m.FrameCount = m.FrameAt(d)
	default:
		return Media{}, fmt.Errorf("%w: frames or duration required", ErrInvalidMedia)
	}

	return m, nil
}

// parseAspect accepts "16:9" or a plain ratio like "1.85".
func parseAspect(v string) (float64, error) {
	if w, h, ok := strings.Cut(v, ":"); ok {
		wf, err1 := strconv.ParseFloat(w, 64)
		hf, err2 := strconv.ParseFloat(h, 64)
		if err1 != nil || err2 != nil || wf <= 0 || hf <= 0 {
			return 0, fmt.Errorf("%w: aspect=%q", ErrInvalidMedia, v)
		}
		return wf / hf, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return 0, fmt.Errorf("%w: aspect=%q", ErrInvalidMedia, v)
	}
	return f, nil
}
