package theme

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Spinner wraps a bubbletea spinner for fire-and-forget use around slow
// operations. The frame set comes from the theme.
type Spinner struct {
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

type setMessageMsg string

type stopSpinnerMsg struct{}

type spinnerModel struct {
	spinner spinner.Model
	message string
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setMessageMsg:
		m.message = string(msg)
		return m, nil
	case stopSpinnerMsg:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.message == "" {
		return m.spinner.View()
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), m.message)
}

func NewSpinner(message string, t Theme, useColor bool) *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Spinner{Frames: t.Frames, FPS: time.Second / 10}
	if useColor {
		s.Style = t.Accent
	}
	sp := &Spinner{done: make(chan struct{})}
	sp.program = tea.NewProgram(spinnerModel{spinner: s, message: message})
	return sp
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
}

// UpdateMessage swaps the text shown next to the frames.
func (s *Spinner) UpdateMessage(message string) {
	s.program.Send(setMessageMsg(message))
}

// Stop ends the animation and waits for the program to restore the
// terminal.
func (s *Spinner) Stop() {
	s.program.Send(stopSpinnerMsg{})
	<-s.done
}
