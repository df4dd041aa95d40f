package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBlendColors_Endpoints(t *testing.T) {
	colors := blendColors(5, "#000000", "#ffffff")

	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if got := colorToHex(colors[0]); got != "#000000" {
		t.Errorf("first = %s, want #000000", got)
	}
	if got := colorToHex(colors[4]); got != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", got)
	}
}

func TestBlendColors_Single(t *testing.T) {
	colors := blendColors(1, "#a78bfa", "#f1a208")
	if len(colors) != 1 || colorToHex(colors[0]) != "#a78bfa" {
		t.Errorf("blendColors(1) = %v", colors)
	}
}

func TestLipglossToColor_ANSIFallback(t *testing.T) {
	if got := colorToHex(lipglossToColor(lipgloss.Color("240"))); got != "#808080" {
		t.Errorf("ANSI fallback = %s, want #808080", got)
	}
}

func TestGradientSpan_KeepsText(t *testing.T) {
	text := strings.Repeat("━", 4)

	got := GradientSpan(text, 10, T().FillFrom, T().FillTo)

	if ansi.Strip(got) != text {
		t.Errorf("stripped = %q, want %q", ansi.Strip(got), text)
	}
	if GradientSpan("", 10, T().FillFrom, T().FillTo) != "" {
		t.Error("empty text should render empty")
	}
	if ansi.Strip(ApplyGradient("ab", T().FillFrom, T().FillTo)) != "ab" {
		t.Error("ApplyGradient changed the text")
	}
}

func TestPanelStyle_HasBorder(t *testing.T) {
	out := PanelStyle(true).Render("x")
	if !strings.Contains(ansi.Strip(out), "╭") {
		t.Errorf("PanelStyle output %q has no rounded border", ansi.Strip(out))
	}
}
