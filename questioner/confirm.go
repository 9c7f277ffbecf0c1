package questioner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/questor-cli/questor/theme"
)

// Confirm collects a yes/no answer. Empty input accepts the default when
// one is configured; anything other than y/yes/n/no re-prompts.
func (q *Questioner) Confirm(cfg ConfirmConfig) (bool, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return false, err
	}
	defer sess.Release()

	if !sess.Interactive() {
		r := q.renderer(sess)
		for {
			r.Prompt(fmt.Sprintf("%s (%s)", cfg.Message, confirmHint(cfg.Default)))
			line, err := sess.ReadLine()
			if err != nil {
				return false, fmt.Errorf("read confirmation: %w", err)
			}
			value, ok := parseConfirm(line, cfg.Default)
			if !ok {
				r.BulletError("please answer yes or no")
				continue
			}
			return value, nil
		}
	}

	model := newConfirmModel(cfg, q.theme, q.useColor)
	out, err := sess.Run(model)
	if err != nil {
		return false, err
	}
	final := out.(confirmModel)
	if final.err != nil {
		return false, final.err
	}
	return final.value, nil
}

// parseConfirm maps y/yes/n/no (case-insensitive) or an empty line with a
// default to a boolean. ok is false when the answer is unusable.
func parseConfirm(line string, def *bool) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	case "":
		if def != nil {
			return *def, true
		}
		return false, false
	default:
		return false, false
	}
}

func confirmHint(def *bool) string {
	switch {
	case def == nil:
		return "y/n"
	case *def:
		return "Y/n"
	default:
		return "y/N"
	}
}

type confirmModel struct {
	message  string
	def      *bool
	theme    theme.Theme
	useColor bool

	input     textinput.Model
	value     bool
	err       error
	errorLine string
}

func newConfirmModel(cfg ConfirmConfig, th theme.Theme, useColor bool) confirmModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = confirmHint(cfg.Default)
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = th.Muted
	}
	return confirmModel{message: cfg.Message, def: cfg.Default, theme: th, useColor: useColor, input: ti}
}

func (m confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value, ok := parseConfirm(m.input.Value(), m.def)
			if !ok {
				m.errorLine = "please answer yes or no"
				return m, nil
			}
			m.value = value
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if strings.TrimSpace(m.input.Value()) != "" {
		m.errorLine = ""
	}
	return m, cmd
}

func (m confirmModel) View() string {
	var b strings.Builder
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.message)
	fmt.Fprintf(&b, "%s%s %s (%s): %s\n", theme.Indent, prefix, label, confirmHint(m.def), m.input.View())
	if m.errorLine != "" {
		fmt.Fprintf(&b, "%s%s %s\n",
			theme.Indent+theme.Indent,
			mutedToken(m.theme, m.useColor, m.theme.Glyphs.Connector),
			errorText(m.theme, m.useColor, m.errorLine))
	}
	return b.String()
}
