package playback

import (
	"math"
	"testing"

	"github.com/llehouerou/scrubber/internal/surface"
)

func TestSetFrame_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		frame int64
		want  int64
	}{
		{"inside", 42, 42},
		{"start", 0, 0},
		{"end", testFrameCount, testFrameCount},
		{"past end", testFrameCount + 1000, testFrameCount},
		{"negative", -5, 0},
		{"min int", math.MinInt64, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := playing(t)

			f.c.SetFrame(tt.frame)

			if f.c.Frame() != tt.want {
				t.Errorf("Frame() = %d, want %d", f.c.Frame(), tt.want)
			}
			writes := f.p.FrameWrites()
			if len(writes) == 0 || writes[len(writes)-1] != tt.want {
				t.Errorf("engine frame writes = %v, want last %d", writes, tt.want)
			}
		})
	}
}

func TestSetProgress_RoundTrip(t *testing.T) {
	f := playing(t)

	f.c.SetProgress(f.c.MaxProgress() * 0.5)

	if f.c.Frame() != 50 {
		t.Errorf("Frame() = %d, want 50", f.c.Frame())
	}
	if f.c.NormalizedProgress() != 0.5 {
		t.Errorf("NormalizedProgress() = %v, want 0.5", f.c.NormalizedProgress())
	}
	if f.c.Progress() != 100 {
		t.Errorf("Progress() = %v, want 100", f.c.Progress())
	}
}

func TestSetProgress_ZeroWidthTrackIgnored(t *testing.T) {
	f := playing(t)
	f.c.SetFrame(30)
	f.ui.SetTrack(surface.Rect{Size: surface.Size{W: 0, H: 10}, Scale: surface.Point{X: 1, Y: 1}})

	f.c.SetProgress(10)

	if f.c.Frame() != 30 {
		t.Errorf("Frame() = %d, want 30", f.c.Frame())
	}
}

func TestSetNormalizedProgress(t *testing.T) {
	f := playing(t)

	f.c.SetNormalizedProgress(0.25)
	if f.c.Frame() != 25 {
		t.Errorf("Frame() = %d, want 25", f.c.Frame())
	}

	f.c.SetNormalizedProgress(math.NaN())
	if f.c.Frame() != 25 {
		t.Errorf("Frame() = %d after NaN, want 25", f.c.Frame())
	}

	f.c.SetNormalizedProgress(3)
	if f.c.Frame() != testFrameCount {
		t.Errorf("Frame() = %d, want %d", f.c.Frame(), testFrameCount)
	}
}

func TestNormalizedProgress_UnknownLength(t *testing.T) {
	f := newFixture(t)

	f.c.SetFrame(10)

	if f.c.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0", f.c.Frame())
	}
	if f.c.NormalizedProgress() != 0 {
		t.Errorf("NormalizedProgress() = %v, want 0", f.c.NormalizedProgress())
	}
	if f.c.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", f.c.Progress())
	}
}

func TestProgressBar_Geometry(t *testing.T) {
	f := playing(t)

	if f.c.MaxProgress() != 200 {
		t.Errorf("MaxProgress() = %v, want 200", f.c.MaxProgress())
	}
	if f.c.MinProgress() != -5 {
		t.Errorf("MinProgress() = %v, want -5", f.c.MinProgress())
	}

	f.c.SetFrame(25)

	if f.ui.FillWidth() != 50 {
		t.Errorf("FillWidth() = %v, want 50", f.ui.FillWidth())
	}
	if f.ui.KnobX() != 45 {
		t.Errorf("KnobX() = %v, want 45", f.ui.KnobX())
	}
	if got := f.ui.Knob().Center.X; got != 50 {
		t.Errorf("knob centre = %v, want 50", got)
	}
	if got := f.c.NormalizedKnobValue(); got != 45.0/200 {
		t.Errorf("NormalizedKnobValue() = %v, want %v", got, 45.0/200)
	}
}

func TestProgressBar_ScaledTrack(t *testing.T) {
	f := playing(t)
	f.ui.SetTrack(surface.Rect{Size: surface.Size{W: 100, H: 10}, Scale: surface.Point{X: 2, Y: 1}})

	f.c.SetFrame(50)

	if f.c.MaxProgress() != 200 {
		t.Errorf("MaxProgress() = %v, want 200", f.c.MaxProgress())
	}
	if f.ui.FillWidth() != 100 {
		t.Errorf("FillWidth() = %v, want 100", f.ui.FillWidth())
	}
}

func TestRoundFrame(t *testing.T) {
	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1.4, 1},
		{1.5, 2},
		{-1.5, -2},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt64},
		{math.Inf(-1), math.MinInt64},
	}
	for _, tt := range tests {
		if got := roundFrame(tt.in); got != tt.want {
			t.Errorf("roundFrame(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
