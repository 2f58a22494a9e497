package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	inputStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	statusStyle = lipgloss.NewStyle().Reverse(true)

	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
	pickedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
)

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.picker.Active {
		return m.viewPicker()
	}

	input := inputStyle.Width(max(m.width-2, 10)).Render(m.viewLine())
	items := barStyle.MaxWidth(m.width).Render(m.viewBar())
	status := m.viewStatus()

	used := lipgloss.Height(input) + lipgloss.Height(items) + lipgloss.Height(status)
	history := m.viewHistory(m.height - used)

	return lipgloss.JoinVertical(lipgloss.Left, history, items, input, status)
}

// viewHistory shows the last sent lines that fit in rows.
func (m Model) viewHistory(rows int) string {
	if rows < 1 {
		rows = 1
	}
	sent := m.session.Current().History()
	if len(sent) > rows {
		sent = sent[len(sent)-rows:]
	}
	lines := make([]string, 0, rows)
	for i := len(sent); i < rows; i++ {
		lines = append(lines, "")
	}
	for _, s := range sent {
		lines = append(lines, historyStyle.Render(runewidth.Truncate(s, max(m.width-1, 1), "…")))
	}
	return strings.Join(lines, "\n")
}

// viewBar renders the two suggestion items.
func (m Model) viewBar() string {
	switch {
	case m.bar.active == "" && m.bar.full == "":
		return " "
	case m.bar.full == "":
		return " " + m.bar.active
	}
	return fmt.Sprintf(" %s  [%s]", m.bar.active, m.bar.full)
}

// viewLine renders the input line with a block cursor.
func (m Model) viewLine() string {
	b := m.session.Current()
	runes := []rune(strings.ReplaceAll(b.Text(), "\n", "↵"))
	cursor := b.Cursor()
	if cursor > len(runes) {
		cursor = len(runes)
	}
	under := " "
	after := ""
	if cursor < len(runes) {
		under = string(runes[cursor])
		after = string(runes[cursor+1:])
	}
	return string(runes[:cursor]) + cursorStyle.Render(under) + after
}

func (m Model) viewStatus() string {
	s := m.session
	b := s.Current()
	info := ""
	if n := len(s.Buffers()); n > 1 {
		info = fmt.Sprintf("[%d/%d]", s.Index()+1, n)
	}
	left := m.status.FormatLeft(b.Name, info, b.SpellErrorCount())
	right := m.status.FormatRight(b.SpellErrorCount(), s.ActiveDictionaries(b.ID), len(b.History()))

	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) viewPicker() string {
	var rows []string
	for i, b := range m.session.Buffers() {
		name := fmt.Sprintf("%d %s", i+1, truncateName(b.Name, 30))
		if i == m.picker.Selected {
			name = pickedStyle.Render(name)
		}
		rows = append(rows, name)
	}
	return pickerStyle.Render(strings.Join(rows, "\n"))
}
