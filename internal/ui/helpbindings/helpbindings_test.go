package helpbindings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/scrubber/internal/ui/testutil"
)

func newTestHelp(width, height int) *Model {
	m := New()
	m.SetSize(width, height)
	return &m
}

func TestHandleKey_Close(t *testing.T) {
	for _, key := range []string{"?", "esc", "q"} {
		m := newTestHelp(80, 40)
		if !m.HandleKey(key) {
			t.Errorf("HandleKey(%q) = false, want true", key)
		}
	}
}

func TestHandleKey_OtherKeysKeepOpen(t *testing.T) {
	m := newTestHelp(80, 40)
	if m.HandleKey("x") {
		t.Error("HandleKey(\"x\") = true, want false")
	}
}

func TestHandleKey_Scroll(t *testing.T) {
	m := newTestHelp(80, 10)
	if m.maxScroll() == 0 {
		t.Fatal("expected content taller than the visible area")
	}

	m.HandleKey("down")
	m.HandleKey("j")
	assert.Equal(t, 2, m.scrollOffset)

	m.HandleKey("k")
	assert.Equal(t, 1, m.scrollOffset)

	m.HandleKey("up")
	m.HandleKey("up")
	assert.Equal(t, 0, m.scrollOffset)
}

func TestHandleKey_ScrollStopsAtEnd(t *testing.T) {
	m := newTestHelp(80, 10)
	for range 100 {
		m.HandleKey("j")
	}
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
}

func TestHandleKey_NoScrollWhenEverythingFits(t *testing.T) {
	m := newTestHelp(80, 100)
	m.HandleKey("j")
	assert.Equal(t, 0, m.scrollOffset)
}

func TestView_ListsBindings(t *testing.T) {
	m := newTestHelp(80, 100)
	view := m.View()

	assert.True(t, testutil.ContainsLine(view, "Help"))
	assert.True(t, testutil.ContainsLine(view, "Global"))
	assert.True(t, testutil.ContainsLine(view, "Playback"))
	assert.True(t, testutil.ContainsLine(view, "Jump to start"))
	assert.True(t, testutil.ContainsLine(view, "space"))
	assert.True(t, testutil.ContainsLine(view, "?/esc close"))
	assert.False(t, testutil.ContainsLine(view, "j/k scroll"))
}

func TestView_ScrollFooter(t *testing.T) {
	m := newTestHelp(80, 10)
	assert.True(t, testutil.ContainsLine(m.View(), "j/k scroll"))
}

func TestView_EmptyWithoutSize(t *testing.T) {
	m := New()
	assert.Empty(t, m.View())
}

func TestSetContexts_Filters(t *testing.T) {
	m := newTestHelp(80, 100)
	m.SetContexts([]string{"global"})

	view := m.View()
	assert.True(t, testutil.ContainsLine(view, "Quit"))
	assert.False(t, testutil.ContainsLine(view, "Seek forward"))
}
