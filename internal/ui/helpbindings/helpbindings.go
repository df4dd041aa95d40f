// Package helpbindings renders a scrollable list of key bindings.
package helpbindings

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/scrubber/internal/keymap"
	"github.com/llehouerou/scrubber/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	"global",
	"playback",
}

var categoryLabels = map[string]string{
	"global":   "Global",
	"playback": "Playback",
}

// Model holds the state for the help overlay.
type Model struct {
	width, height int
	bindings      []keymap.Binding
	scrollOffset  int
}

// New creates a help model listing every binding category.
func New() Model {
	m := Model{}
	m.SetContexts(categoryOrder)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// SetSize sets the area the overlay is drawn in.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.scrollOffset = min(m.scrollOffset, m.maxScroll())
}

// HandleKey scrolls the list. It returns true when the key closes the help.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "?", "esc", "q":
		return true
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return false
}

// View renders the help box.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width from all lines so scrolling does not resize the box
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]

	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	var sb strings.Builder
	sb.WriteString(styles.T().S().Title.Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(styles.T().S().Subtle.Render(m.buildFooter()))

	return styles.PanelStyle(true).Padding(0, 1).Render(sb.String())
}

func (m Model) buildContent() string {
	var sb strings.Builder

	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	descStyle := styles.T().S().Base
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)
	separatorStyle := styles.T().S().Subtle

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, len(keyLabel(b)))
	}

	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		key := keyLabel(b)
		sb.WriteString(keyStyle.Render(key + strings.Repeat(" ", maxKeyWidth-len(key))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins a binding's keys, skipping the literal space that
// duplicates "space".
func keyLabel(b keymap.Binding) string {
	keys := slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool { return k == " " })
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// Title, footer, blank lines and border
	return max(m.height-6, 3)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
