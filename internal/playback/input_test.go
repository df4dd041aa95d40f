package playback

import (
	"testing"

	"github.com/llehouerou/scrubber/internal/surface"
)

func TestSkip_ResumesPlaying(t *testing.T) {
	f := playing(t)
	pauseCalls := f.p.PauseCalls()

	f.c.PointerDown(surface.TargetKnob, surface.Point{X: 0})

	if f.c.State() != StateSkipping {
		t.Fatalf("State() = %v, want Skipping", f.c.State())
	}
	if !f.c.Dragging() {
		t.Error("Dragging() = false during skip")
	}
	if f.p.PauseCalls() != pauseCalls+1 || f.p.IsPlaying() {
		t.Error("engine not paused on skip")
	}
	if f.pauses != 0 {
		t.Errorf("OnPause fired %d times during skip, want 0", f.pauses)
	}
	if f.c.Frame() != 50 {
		t.Errorf("Frame() = %d after press, want 50", f.c.Frame())
	}

	f.c.Drag(surface.Point{X: 50})
	if f.c.Frame() != 75 {
		t.Errorf("Frame() = %d after drag, want 75", f.c.Frame())
	}

	f.c.Drag(surface.Point{X: 500})
	if f.c.Frame() != testFrameCount {
		t.Errorf("Frame() = %d past the end, want %d", f.c.Frame(), testFrameCount)
	}

	f.c.PointerUp(surface.TargetKnob, surface.Point{X: 500})

	if f.c.State() != StatePlaying {
		t.Errorf("State() = %v after release, want Playing", f.c.State())
	}
	if f.c.Dragging() {
		t.Error("Dragging() = true after release")
	}
	if !f.p.IsPlaying() {
		t.Error("engine not playing after release")
	}
}

func TestSkip_ResumesPaused(t *testing.T) {
	f := playing(t)
	_ = f.c.Pause()

	f.c.PointerDown(surface.TargetTrack, surface.Point{X: -100})
	if f.c.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0", f.c.Frame())
	}
	f.c.PointerUp(surface.TargetTrack, surface.Point{X: -100})

	if f.c.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", f.c.State())
	}
	if f.p.IsPlaying() {
		t.Error("engine playing after skip from Paused")
	}
}

func TestPointerDown_Ignored(t *testing.T) {
	t.Run("not seekable", func(t *testing.T) {
		f := playing(t)
		f.c.PointerDown(surface.TargetNone, surface.Point{})
		if f.c.State() != StatePlaying || f.c.Dragging() {
			t.Errorf("State() = %v, Dragging() = %v", f.c.State(), f.c.Dragging())
		}
	})

	t.Run("loading", func(t *testing.T) {
		f := newFixture(t)
		f.c.PointerDown(surface.TargetKnob, surface.Point{})
		if f.c.State() != StateLoading || f.c.Dragging() {
			t.Errorf("State() = %v, Dragging() = %v", f.c.State(), f.c.Dragging())
		}
	})

	t.Run("error", func(t *testing.T) {
		f := playing(t)
		f.p.SimulateError("boom")
		f.c.PointerDown(surface.TargetKnob, surface.Point{})
		if f.c.State() != StateError {
			t.Errorf("State() = %v, want Error", f.c.State())
		}
	})

	t.Run("already dragging", func(t *testing.T) {
		f := playing(t)
		f.c.PointerDown(surface.TargetKnob, surface.Point{})
		f.c.PointerDown(surface.TargetKnob, surface.Point{X: 50})
		if f.c.Frame() != 50 {
			t.Errorf("Frame() = %d, want 50", f.c.Frame())
		}
		if prev, _ := f.c.PreviousState(); prev != StatePlaying {
			t.Errorf("PreviousState() = %v, want Playing", prev)
		}
	})
}

func TestDrag_WithoutSessionIgnored(t *testing.T) {
	f := playing(t)
	f.c.SetFrame(10)

	f.c.Drag(surface.Point{X: 50})

	if f.c.Frame() != 10 {
		t.Errorf("Frame() = %d, want 10", f.c.Frame())
	}
}

func TestDrag_UnmappablePointIgnored(t *testing.T) {
	f := playing(t)
	f.c.PointerDown(surface.TargetKnob, surface.Point{X: 0})
	f.ui.SetConvertFails(true)

	f.c.Drag(surface.Point{X: 50})

	if f.c.Frame() != 50 {
		t.Errorf("Frame() = %d, want 50", f.c.Frame())
	}
}

func TestPointerUp_WithoutSessionIgnored(t *testing.T) {
	f := playing(t)
	_ = f.c.Pause()

	f.c.PointerUp(surface.TargetKnob, surface.Point{})

	if f.c.State() != StatePaused {
		t.Errorf("State() = %v, want Paused", f.c.State())
	}
}

func TestTick_FollowsEngineWhilePlaying(t *testing.T) {
	f := playing(t)

	f.p.AdvanceTo(10)
	f.c.Tick()

	if f.updates != 1 {
		t.Errorf("OnUpdate fired %d times, want 1", f.updates)
	}
	if f.c.Frame() != 10 {
		t.Errorf("Frame() = %d, want 10", f.c.Frame())
	}
	if f.ui.KnobX() != 15 {
		t.Errorf("KnobX() = %v, want 15", f.ui.KnobX())
	}

	writes := f.ui.KnobWrites()
	f.c.Tick()
	if f.ui.KnobWrites() != writes {
		t.Errorf("KnobWrites() = %d, want %d: bar redrawn without a frame change", f.ui.KnobWrites(), writes)
	}
	if f.updates != 2 {
		t.Errorf("OnUpdate fired %d times, want 2", f.updates)
	}
}

func TestTick_IgnoresEngineWhenNotPlaying(t *testing.T) {
	f := playing(t)
	_ = f.c.Pause()

	f.p.AdvanceTo(30)
	f.c.Tick()

	if f.c.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0", f.c.Frame())
	}
	if f.updates != 1 {
		t.Errorf("OnUpdate fired %d times, want 1", f.updates)
	}
}
