package questioner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/theme"
)

// Select prompts for a single choice and returns its value (the name when
// no value is set). Cancellation resolves (nil, nil), never an error.
//
// The plain variant wraps the cursor at both ends; the searchable variant
// filters by query and clamps without wraparound. The asymmetry is the
// contract, not an accident.
func (q *Questioner) Select(cfg SelectConfig) (any, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return nil, err
	}
	defer sess.Release()

	if len(cfg.Choices) == 0 {
		return nil, nil
	}
	if !sess.Interactive() {
		return q.selectLine(sess, cfg)
	}

	model := newSelectModel(cfg, q.theme, q.useColor)
	out, err := sess.Run(model)
	if err != nil {
		return nil, err
	}
	final := out.(selectModel)
	if final.err != nil {
		return nil, final.err
	}
	if final.canceled || final.chosen < 0 {
		return nil, nil
	}
	return cfg.Choices[final.chosen].value(), nil
}

// selectLine is the degraded numbered-list flow for non-terminal streams.
// An empty line cancels.
func (q *Questioner) selectLine(sess *surface.Session, cfg SelectConfig) (any, error) {
	r := q.renderer(sess)
	r.Section(cfg.Message)
	for i, choice := range cfg.Choices {
		r.Bullet(fmt.Sprintf("%d. %s", i+1, choice.Name))
	}
	for {
		r.Prompt(fmt.Sprintf("choice [1-%d]", len(cfg.Choices)))
		line, err := sess.ReadLine()
		if err != nil {
			return nil, fmt.Errorf("read selection: %w", err)
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil || n < 1 || n > len(cfg.Choices) {
			r.BulletError(fmt.Sprintf("enter a number between 1 and %d", len(cfg.Choices)))
			continue
		}
		return cfg.Choices[n-1].value(), nil
	}
}

type selectModel struct {
	message    string
	choices    []Choice
	searchable bool
	fuzzyMatch bool
	pageSize   int
	theme      theme.Theme
	useColor   bool

	search   textinput.Model
	visible  []int // indices into choices for the current view
	cursor   int   // index into visible, clamped on every mutation
	chosen   int   // index into choices, -1 until resolved
	canceled bool
	err      error
}

func newSelectModel(cfg SelectConfig, th theme.Theme, useColor bool) selectModel {
	search := textinput.New()
	search.Prompt = ""
	search.Placeholder = "search"
	if useColor {
		search.PlaceholderStyle = th.Muted
	}
	if cfg.Searchable {
		search.Focus()
	}
	m := selectModel{
		message:    cfg.Message,
		choices:    cfg.Choices,
		searchable: cfg.Searchable,
		fuzzyMatch: cfg.Fuzzy,
		pageSize:   cfg.PageSize,
		theme:      th,
		useColor:   useColor,
		search:     search,
		chosen:     -1,
	}
	m.visible = m.filterChoices()
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case tea.KeyEnter:
			if len(m.visible) == 0 {
				return m, nil
			}
			m.chosen = m.visible[m.cursor]
			return m, tea.Quit
		case tea.KeyRunes:
			if !m.searchable && len(msg.Runes) == 1 && msg.Runes[0] == 'q' {
				m.canceled = true
				return m, tea.Quit
			}
		}
	}

	if !m.searchable {
		return m, nil
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	after := m.search.Value()
	if after != before {
		m.visible = m.filterChoices()
		if len(after) > len(before) {
			m.cursor = 0
		} else if m.cursor >= len(m.visible) {
			m.cursor = max(0, len(m.visible)-1)
		}
	}
	return m, cmd
}

// moveCursor applies one up/down step: cyclic wraparound for the plain
// select, clamped movement for the searchable variant.
func (m *selectModel) moveCursor(delta int) {
	n := len(m.visible)
	if n == 0 {
		m.cursor = 0
		return
	}
	next := m.cursor + delta
	if m.searchable {
		if next < 0 {
			next = 0
		}
		if next > n-1 {
			next = n - 1
		}
	} else {
		next = (next + n) % n
	}
	m.cursor = next
}

func (m selectModel) filterChoices() []int {
	query := strings.TrimSpace(m.search.Value())
	if !m.searchable || query == "" {
		out := make([]int, len(m.choices))
		for i := range m.choices {
			out[i] = i
		}
		return out
	}
	if m.fuzzyMatch {
		matches := fuzzy.FindFrom(query, choiceSource(m.choices))
		out := make([]int, 0, len(matches))
		for _, match := range matches {
			out = append(out, match.Index)
		}
		return out
	}
	lowered := strings.ToLower(query)
	var out []int
	for i, choice := range m.choices {
		if strings.Contains(strings.ToLower(choice.Name), lowered) {
			out = append(out, i)
		}
	}
	return out
}

func (m selectModel) View() string {
	var b strings.Builder
	header := m.message
	if m.useColor {
		header = m.theme.Header.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")
	if m.searchable {
		prefix := promptPrefix(m.theme, m.useColor)
		label := promptLabel(m.theme, m.useColor, "filter")
		fmt.Fprintf(&b, "%s%s %s: %s\n", theme.Indent, prefix, label, m.search.View())
	}
	renderChoiceWindow(&b, m.choices, m.visible, m.cursor, m.pageSize, false, m.theme, m.useColor)
	help := "↑/↓ move · enter select · esc cancel"
	if m.searchable {
		help = "↑/↓ move · type to filter · enter select · esc cancel"
	}
	fmt.Fprintf(&b, "%s%s\n", theme.Indent, mutedToken(m.theme, m.useColor, help))
	return b.String()
}

// renderChoiceWindow writes the visible slice of a choice view with the
// cursor glyph and, for multi-selects, the checked markers.
func renderChoiceWindow(b *strings.Builder, choices []Choice, visible []int, cursor, pageSize int, marks bool, th theme.Theme, useColor bool) {
	if len(visible) == 0 {
		msg := "no matches"
		if useColor {
			msg = th.Muted.Render(msg)
		}
		fmt.Fprintf(b, "%s%s %s\n", theme.Indent+theme.Indent, mutedToken(th, useColor, th.Glyphs.Connector), msg)
		return
	}
	start, end := window(cursor, pageSize, len(visible))
	for i := start; i < end; i++ {
		choice := choices[visible[i]]
		pointer := strings.Repeat(" ", len([]rune(th.Glyphs.Cursor)))
		display := choice.Name
		if i == cursor {
			pointer = th.Glyphs.Cursor
			if useColor {
				pointer = th.Accent.Render(pointer)
				display = th.Highlight.Render(display)
			}
		}
		mark := ""
		if marks {
			mark = th.Glyphs.Unchecked + " "
			if choice.Checked {
				mark = th.Glyphs.Checked + " "
				if useColor {
					mark = th.Success.Render(th.Glyphs.Checked) + " "
				}
			}
		}
		fmt.Fprintf(b, "%s%s %s%s\n", theme.Indent, pointer, mark, display)
	}
}

type choiceSource []Choice

func (s choiceSource) String(i int) string {
	return s[i].Name
}

func (s choiceSource) Len() int {
	return len(s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
