package questioner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/theme"
)

// Input collects one line of text: empty input takes the default, required
// rejects empty values, Validate gates acceptance with a redisplayed
// message, and Transform rewrites the accepted value.
func (q *Questioner) Input(cfg InputConfig) (string, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return "", err
	}
	defer sess.Release()

	if !sess.Interactive() {
		return q.inputLine(sess, cfg)
	}

	model := newInputModel(cfg, q.theme, q.useColor)
	out, err := sess.Run(model)
	if err != nil {
		return "", err
	}
	final := out.(inputModel)
	if final.err != nil {
		return "", final.err
	}
	return final.value, nil
}

// inputLine is the degraded ask/validate/retry loop for non-terminal
// streams.
func (q *Questioner) inputLine(sess *surface.Session, cfg InputConfig) (string, error) {
	r := q.renderer(sess)
	for {
		label := cfg.Message
		if strings.TrimSpace(cfg.Default) != "" {
			label = fmt.Sprintf("%s [default: %s]", cfg.Message, cfg.Default)
		}
		r.Prompt(label)
		line, err := sess.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		value, reject := resolveInput(line, cfg)
		if reject != "" {
			r.BulletError(reject)
			continue
		}
		return value, nil
	}
}

// resolveInput applies the default/required/validate/transform pipeline
// to one submitted line. A non-empty reject message means re-prompt.
func resolveInput(line string, cfg InputConfig) (value, reject string) {
	value = strings.TrimSpace(line)
	if value == "" {
		value = cfg.Default
	}
	if cfg.Required && value == "" {
		return "", "a value is required"
	}
	if cfg.Validate != nil {
		if err := cfg.Validate(value); err != nil {
			return "", err.Error()
		}
	}
	if cfg.Transform != nil {
		value = cfg.Transform(value)
	}
	return value, ""
}

type inputModel struct {
	cfg      InputConfig
	theme    theme.Theme
	useColor bool

	input     textinput.Model
	value     string
	err       error
	errorLine string
}

func newInputModel(cfg InputConfig, th theme.Theme, useColor bool) inputModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Default
	ti.Focus()
	if useColor {
		ti.PlaceholderStyle = th.Muted
	}
	return inputModel{
		cfg:      cfg,
		theme:    th,
		useColor: useColor,
		input:    ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			value, reject := resolveInput(m.input.Value(), m.cfg)
			if reject != "" {
				m.errorLine = reject
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

func (m inputModel) View() string {
	var b strings.Builder
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.cfg.Message)
	defaultText := ""
	if strings.TrimSpace(m.cfg.Default) != "" {
		defaultText = fmt.Sprintf(" [default: %s]", m.cfg.Default)
	}
	fmt.Fprintf(&b, "%s%s %s%s: %s\n", theme.Indent, prefix, label, defaultText, m.input.View())
	if m.errorLine != "" {
		fmt.Fprintf(&b, "%s%s %s\n",
			theme.Indent+theme.Indent,
			mutedToken(m.theme, m.useColor, m.theme.Glyphs.Connector),
			errorText(m.theme, m.useColor, m.errorLine))
	}
	return b.String()
}

// Password collects a masked line. On non-terminal streams the mask is a
// no-op and input is read line-buffered, a documented limitation.
func (q *Questioner) Password(cfg PasswordConfig) (string, error) {
	sess, err := q.surf.Acquire()
	if err != nil {
		return "", err
	}
	defer sess.Release()

	if !sess.Interactive() {
		r := q.renderer(sess)
		r.Prompt(cfg.Message)
		line, err := sess.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	model := newPasswordModel(cfg, q.theme, q.useColor)
	out, err := sess.Run(model)
	if err != nil {
		return "", err
	}
	final := out.(passwordModel)
	if final.err != nil {
		return "", final.err
	}
	return final.value, nil
}

type passwordModel struct {
	message  string
	theme    theme.Theme
	useColor bool

	input textinput.Model
	value string
	err   error
}

func newPasswordModel(cfg PasswordConfig, th theme.Theme, useColor bool) passwordModel {
	mask := cfg.Mask
	if mask == 0 {
		mask = '*'
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = mask
	ti.Focus()
	return passwordModel{message: cfg.Message, theme: th, useColor: useColor, input: ti}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.err = ErrCanceled
			return m, tea.Quit
		case tea.KeyEnter:
			m.value = m.input.Value()
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	prefix := promptPrefix(m.theme, m.useColor)
	label := promptLabel(m.theme, m.useColor, m.message)
	return fmt.Sprintf("%s%s %s: %s\n", theme.Indent, prefix, label, m.input.View())
}
