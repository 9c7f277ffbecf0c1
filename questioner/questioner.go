// Package questioner implements interactive terminal prompts: validated
// text input, password, number, confirm, single and multiple selection,
// and a form orchestrator composing them. Keypress-driven prompts run a
// full-repaint render loop; on non-terminal streams they degrade to
// line-buffered behaviour instead of failing.
package questioner

import (
	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/theme"
)

// Questioner renders prompts with one theme over one input surface. A
// Questioner is constructed once and reused; all per-prompt state lives
// inside the single invocation.
type Questioner struct {
	theme    theme.Theme
	useColor bool
	surf     *surface.Surface
}

// New binds a questioner to the process's standard streams.
func New(th theme.Theme, useColor bool) *Questioner {
	return &Questioner{theme: th, useColor: useColor, surf: surface.New()}
}

// NewWithSurface binds a questioner to an explicit surface. Tests and
// embedding callers use this to script input.
func NewWithSurface(th theme.Theme, useColor bool, surf *surface.Surface) *Questioner {
	return &Questioner{theme: th, useColor: useColor, surf: surf}
}

func (q *Questioner) renderer(sess *surface.Session) *theme.Renderer {
	return theme.NewRenderer(sess.Writer(), q.theme, q.useColor)
}
