package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	Indent = "  "
)

// Renderer writes themed, width-aware lines to an output stream. Prompt
// engines use it for everything they print outside a live program view.
type Renderer struct {
	out       io.Writer
	theme     Theme
	useColor  bool
	wrapWidth int
}

func NewRenderer(out io.Writer, theme Theme, useColor bool) *Renderer {
	return &Renderer{
		out:       out,
		theme:     theme,
		useColor:  useColor,
		wrapWidth: WrapWidth(),
	}
}

func (r *Renderer) Header(text string) {
	r.writeLine(r.style(text, r.theme.Header))
}

func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

func (r *Renderer) Section(title string) {
	r.writeLine(r.style(title, r.theme.SectionTitle))
}

func (r *Renderer) Bullet(text string) {
	prefix := r.theme.Glyphs.Bullet + " "
	if r.useColor {
		prefix = r.theme.Muted.Render(r.theme.Glyphs.Bullet) + " "
	}
	r.writeWithPrefix(Indent+prefix, text)
}

func (r *Renderer) Prompt(text string) {
	prefix := r.theme.Glyphs.Bullet + " "
	if r.useColor {
		prefix = r.theme.Accent.Render(r.theme.Glyphs.Bullet) + " "
	}
	r.writeWithPrefix(Indent+prefix, text)
}

func (r *Renderer) BulletError(text string) {
	prefix := r.theme.Glyphs.Bullet + " "
	if r.useColor {
		prefix = r.theme.Error.Render(prefix)
		text = r.theme.Error.Render(text)
	}
	r.writeWithPrefix(Indent+prefix, text)
}

func (r *Renderer) Warn(text string) {
	r.writeWithPrefix(Indent, r.style(text, r.theme.Warn))
}

func (r *Renderer) Log(text string) {
	r.writeWithPrefix(Indent+Indent+r.theme.Glyphs.Connector+" ", r.style(text, r.theme.Muted))
}

func (r *Renderer) Line(text string) {
	r.writeWithPrefix("", text)
}

func (r *Renderer) style(text string, style lipgloss.Style) string {
	if !r.useColor {
		return text
	}
	return style.Render(text)
}

func (r *Renderer) writeWithPrefix(prefix, text string) {
	if r.wrapWidth <= 0 {
		r.writeLine(prefix + text)
		return
	}
	prefixWidth := lipgloss.Width(prefix)
	available := r.wrapWidth - prefixWidth
	if available <= 0 {
		r.writeLine(prefix + text)
		return
	}
	wrapped := ansi.Wrap(text, available, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) == 0 {
		return
	}
	r.writeLine(prefix + lines[0])
	if len(lines) == 1 {
		return
	}
	padding := strings.Repeat(" ", prefixWidth)
	for _, line := range lines[1:] {
		r.writeLine(padding + line)
	}
}

func (r *Renderer) writeLine(text string) {
	fmt.Fprintln(r.out, strings.TrimRight(text, "\n"))
}
