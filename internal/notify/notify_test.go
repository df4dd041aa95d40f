package notify

import (
	"strings"
	"testing"
)

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestPlaybackFailed(t *testing.T) {
	n := PlaybackFailed("sim://clip?fail=<boom>", "decode <failed> & stopped")

	if n.Title != "Playback failed" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Urgency != UrgencyCritical {
		t.Errorf("Urgency = %d, want critical", n.Urgency)
	}
	if !strings.Contains(n.Body, "decode &lt;failed&gt; &amp; stopped") {
		t.Errorf("Body = %q, want escaped message", n.Body)
	}
	if !strings.Contains(n.Body, "<i>sim://clip?fail=&lt;boom&gt;</i>") {
		t.Errorf("Body = %q, want escaped url in italics", n.Body)
	}
}

func TestPlaybackFailed_NoURL(t *testing.T) {
	n := PlaybackFailed("", "no media")
	if n.Body != "no media" {
		t.Errorf("Body = %q, want %q", n.Body, "no media")
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var _ Notifier = &r

	id, err := r.Notify(Notification{Title: "a"})
	if err != nil || id != 1 {
		t.Errorf("Notify() = %d, %v, want 1, nil", id, err)
	}
	_ = r.Close(id)

	if len(r.Sent) != 1 || r.Sent[0].Title != "a" {
		t.Errorf("Sent = %+v", r.Sent)
	}
	if len(r.Closed) != 1 || r.Closed[0] != 1 {
		t.Errorf("Closed = %v", r.Closed)
	}

	replaced, _ := r.Notify(Notification{Title: "b", ReplacesID: id})
	if replaced != id {
		t.Errorf("replacing Notify() = %d, want %d", replaced, id)
	}
	if next, _ := r.Notify(Notification{Title: "c"}); next != 2 {
		t.Errorf("new Notify() = %d, want 2", next)
	}
}
