package questioner

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/theme"
)

// MultiSelect prompts for any number of choices. Space toggles the
// highlighted choice; enter resolves once the checked count is within
// [Min, Max], otherwise a transient error is shown and the prompt keeps
// its state. Cancellation resolves an empty, non-nil slice — it is not
// distinguishable from confirming an empty selection.
func (q *Questioner) MultiSelect(cfg MultiSelectConfig) ([]any, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return nil, err
	}
	defer sess.Release()

	if !sess.Interactive() {
		return q.multiSelectLine(sess, cfg)
	}

	model := newMultiSelectModel(cfg, q.theme, q.useColor)
	out, err := sess.Run(model)
	if err != nil {
		return nil, err
	}
	final := out.(multiSelectModel)
	if final.err != nil {
		return nil, final.err
	}
	if final.canceled {
		return []any{}, nil
	}
	return final.checkedValues(), nil
}

// multiSelectLine reads a comma-separated list of 1-based indices on
// non-terminal streams. An empty line cancels with an empty selection.
func (q *Questioner) multiSelectLine(sess *surface.Session, cfg MultiSelectConfig) ([]any, error) {
	r := q.renderer(sess)
	r.Section(cfg.Message)
	for i, choice := range cfg.Choices {
		r.Bullet(fmt.Sprintf("%d. %s", i+1, choice.Name))
	}
	for {
		r.Prompt("choices (e.g. 1,3)")
		line, err := sess.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("read selection: %w", err)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return []any{}, nil
		}
		indices, parseErr := parseIndexList(trimmed, len(cfg.Choices))
		if parseErr != "" {
			r.BulletError(parseErr)
			continue
		}
		if msg := countConstraintError(len(indices), cfg.Min, cfg.Max); msg != "" {
			r.BulletError(msg)
			continue
		}
		out := make([]any, 0, len(indices))
		for _, idx := range indices {
			out = append(out, cfg.Choices[idx].value())
		}
		return out, nil
	}
}

func parseIndexList(input string, n int) ([]int, string) {
	parts := strings.Split(input, ",")
	seen := make(map[int]struct{}, len(parts))
	var out []int
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmed)
		if err != nil || idx < 1 || idx > n {
			return nil, fmt.Sprintf("enter numbers between 1 and %d, separated by commas", n)
		}
		if _, dup := seen[idx-1]; dup {
			continue
		}
		seen[idx-1] = struct{}{}
		out = append(out, idx-1)
	}
	return out, ""
}

func countConstraintError(count, min, max int) string {
	if count < min {
		return fmt.Sprintf("select at least %d", min)
	}
	if max > 0 && count > max {
		return fmt.Sprintf("select at most %d", max)
	}
	return ""
}

type multiSelectModel struct {
	message  string
	choices  []Choice // local copy; Checked is the only mutated field
	min      int
	max      int
	pageSize int
	theme    theme.Theme
	useColor bool

	visible   []int
	cursor    int
	canceled  bool
	done      bool
	err       error
	errorLine string
}

func newMultiSelectModel(cfg MultiSelectConfig, th theme.Theme, useColor bool) multiSelectModel {
	choices := append([]Choice(nil), cfg.Choices...)
	visible := make([]int, len(choices))
	for i := range choices {
		visible[i] = i
	}
	return multiSelectModel{
		message:  cfg.Message,
		choices:  choices,
		min:      cfg.Min,
		max:      cfg.Max,
		pageSize: cfg.PageSize,
		theme:    th,
		useColor: useColor,
		visible:  visible,
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyUp:
			m.moveCursor(-1)
			return m, nil
		case tea.KeyDown:
			m.moveCursor(1)
			return m, nil
		case tea.KeySpace:
			if len(m.visible) == 0 {
				return m, nil
			}
			idx := m.visible[m.cursor]
			m.choices[idx].Checked = !m.choices[idx].Checked
			m.errorLine = ""
			return m, nil
		case tea.KeyEnter:
			count := len(m.checkedValues())
			if msg := countConstraintError(count, m.min, m.max); msg != "" {
				m.errorLine = msg
				return m, nil
			}
			m.done = true
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

func (m *multiSelectModel) moveCursor(delta int) {
	n := len(m.visible)
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m multiSelectModel) checkedValues() []any {
	out := make([]any, 0, len(m.choices))
	for _, choice := range m.choices {
		if choice.Checked {
			out = append(out, choice.value())
		}
	}
	return out
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	header := m.message
	if m.useColor {
		header = m.theme.Header.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")
	renderChoiceWindow(&b, m.choices, m.visible, m.cursor, m.pageSize, true, m.theme, m.useColor)
	if m.errorLine != "" {
		fmt.Fprintf(&b, "%s%s %s\n",
			theme.Indent+theme.Indent,
			mutedToken(m.theme, m.useColor, m.theme.Glyphs.Connector),
			errorText(m.theme, m.useColor, m.errorLine))
	}
	help := "↑/↓ move · space toggle · enter confirm · esc cancel"
	fmt.Fprintf(&b, "%s%s\n", theme.Indent, mutedToken(m.theme, m.useColor, help))
	return b.String()
}
