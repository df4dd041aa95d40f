package surface

import (
	"errors"
	"fmt"
)

// FitMode selects which side of the base size a fitted box keeps.
type FitMode int

const (
	FitHorizontally FitMode = iota
	FitVertically
)

// ErrUnsupportedFit is returned for unknown fit modes.
var ErrUnsupportedFit = errors.New("unsupported fit mode")

// ErrInvalidAspect is returned for non-positive aspect ratios.
var ErrInvalidAspect = errors.New("invalid aspect ratio")

// ParseFitMode parses "horizontal" or "vertical".
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "horizontal", "":
		return FitHorizontally, nil
	case "vertical":
		return FitVertically, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFit, s)
	}
}

// FitSize returns a box with the given aspect ratio (width/height) that keeps
// the base width (FitHorizontally) or the base height (FitVertically).
func FitSize(base Size, aspect float64, mode FitMode) (Size, error) {
	if aspect <= 0 || !finite(aspect) {
		return Size{}, fmt.Errorf("%w: %v", ErrInvalidAspect, aspect)
	}
	switch mode {
	case FitHorizontally:
		return Size{W: base.W, H: base.W / aspect}, nil
	case FitVertically:
		return Size{W: base.H * aspect, H: base.H}, nil
	default:
		return Size{}, fmt.Errorf("%w: %d", ErrUnsupportedFit, mode)
	}
}
