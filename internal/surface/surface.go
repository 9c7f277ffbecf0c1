// Package surface owns the process's interactive input channel. Every
// prompt engine acquires the surface for the duration of one prompt and
// releases it before returning, so at most one engine listens to the
// terminal at a time.
package surface

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/questor-cli/questor/theme"
)

// ErrBusy is returned when a prompt tries to acquire the surface while
// another prompt still holds it.
var ErrBusy = errors.New("input surface already acquired")

const defaultWidth = 80

// Surface binds prompt engines to one reader/writer pair. The zero value
// is not usable; construct with New or NewWithIO.
type Surface struct {
	in  io.Reader
	out io.Writer

	mu          sync.Mutex
	held        bool
	interactive bool
	color       bool
	width       int
	reader      *bufio.Reader
}

// New binds a surface to the process's standard streams and detects
// terminal capabilities from the environment.
func New() *Surface {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	s := &Surface{
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: interactive,
		color:       detectColor(os.Stdout),
		width:       detectWidth(),
	}
	theme.SetWrapWidth(s.width)
	return s
}

// NewWithIO binds a surface to arbitrary streams. Interactive must be
// false unless in is a real terminal; keypress-driven prompts degrade to
// line-buffered input when it is false.
func NewWithIO(in io.Reader, out io.Writer, interactive bool) *Surface {
	return &Surface{
		in:          in,
		out:         out,
		interactive: interactive,
		width:       defaultWidth,
	}
}

// Color reports whether styled output should be emitted.
func (s *Surface) Color() bool {
	return s.color
}

// Width reports the detected terminal width.
func (s *Surface) Width() int {
	return s.width
}

// Acquire claims exclusive use of the surface. The returned session must
// be released before another prompt can start.
func (s *Surface) Acquire() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.held {
		return nil, ErrBusy
	}
	s.held = true
	if s.reader == nil {
		s.reader = bufio.NewReader(s.in)
	}
	return &Session{surface: s}, nil
}

// Session is one prompt's exclusive hold on the surface.
type Session struct {
	surface  *Surface
	released bool
}

// Interactive reports whether per-keystroke input is available. When it
// is false the terminal never enters raw mode and prompts fall back to
// line-buffered behaviour.
func (sess *Session) Interactive() bool {
	return sess.surface.interactive
}

// Writer returns the surface's output stream.
func (sess *Session) Writer() io.Writer {
	return sess.surface.out
}

// Run executes one bubbletea program over the surface's streams. The
// program enters raw mode on start and restores the previous mode before
// returning; the session stays held either way.
func (sess *Session) Run(model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model,
		tea.WithInput(sess.surface.in),
		tea.WithOutput(sess.surface.out),
	)
	return prog.Run()
}

// ReadLine reads one line of buffered input, without the trailing
// newline. It is the degraded path for non-interactive streams.
func (sess *Session) ReadLine() (string, error) {
	line, err := sess.surface.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Release returns the surface for the next prompt. It is idempotent.
func (sess *Session) Release() {
	if sess.released {
		return
	}
	sess.released = true
	sess.surface.mu.Lock()
	sess.surface.held = false
	sess.surface.mu.Unlock()
}

func detectColor(out *os.File) bool {
	if !isatty.IsTerminal(out.Fd()) {
		return false
	}
	o := termenv.NewOutput(out)
	if o.EnvNoColor() {
		return false
	}
	return o.ColorProfile() != termenv.Ascii
}

func detectWidth() int {
	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return defaultWidth
}
