package table

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questor-cli/questor/internal/surface"
)

// ShowMenu runs an interactive single-row picker over the currently
// visible page. It returns the absolute index into the unfiltered row
// list for the highlighted row, or -1 when the user cancels. On
// non-terminal streams it degrades to a rendered table plus a numbered
// line prompt.
func (t *Table) ShowMenu(surf *surface.Surface) (int, error) {
	sess, err := surf.Acquire()
	if err != nil {
		return -1, err
	}
	defer sess.Release()

	visible := t.visible()
	if len(visible) == 0 {
		return -1, nil
	}

	if !sess.Interactive() {
		return t.menuLine(sess, visible)
	}

	model := menuModel{table: t, visible: visible, chosen: -1}
	out, err := sess.Run(model)
	if err != nil {
		return -1, err
	}
	final := out.(menuModel)
	if final.canceled || final.chosen < 0 {
		return -1, nil
	}
	return final.chosen, nil
}

func (t *Table) menuLine(sess *surface.Session, visible []int) (int, error) {
	w := sess.Writer()
	t.render(w)
	for {
		fmt.Fprintf(w, "row [1-%d]: \n", len(visible))
		line, err := sess.ReadLine()
		if err != nil {
			return -1, fmt.Errorf("read row selection: %w", err)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return -1, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil || n < 1 || n > len(visible) {
			fmt.Fprintf(w, "enter a number between 1 and %d\n", len(visible))
			continue
		}
		return visible[n-1], nil
	}
}

type menuModel struct {
	table   *Table
	visible []int // absolute row indices for the current page
	cursor  int

	chosen   int
	canceled bool
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyUp:
			m.cursor = (m.cursor - 1 + len(m.visible)) % len(m.visible)
			return m, nil
		case tea.KeyDown:
			m.cursor = (m.cursor + 1) % len(m.visible)
			return m, nil
		case tea.KeyEnter:
			m.chosen = m.visible[m.cursor]
			return m, tea.Quit
		case tea.KeyRunes:
			if len(msg.Runes) == 1 && msg.Runes[0] == 'q' {
				m.canceled = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	t := m.table
	var b strings.Builder
	b.WriteString(t.Render())
	for i, idx := range m.visible {
		pointer := " "
		row := t.rows[idx]
		summary := cellText(t.columns[0], row)
		if i == m.cursor {
			pointer = t.theme.Glyphs.Cursor
			if t.useColor {
				pointer = t.theme.Accent.Render(pointer)
				summary = t.theme.Highlight.Render(summary)
			}
		}
		fmt.Fprintf(&b, "%s %s\n", pointer, summary)
	}
	help := "↑/↓ move · enter pick · esc cancel"
	if t.useColor {
		help = t.theme.Muted.Render(help)
	}
	b.WriteString(help)
	b.WriteString("\n")
	return b.String()
}
