package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// Colored renders text with a style when colour is enabled.
func Colored(style lipgloss.Style, text string, useColor bool) string {
	if !useColor {
		return text
	}
	return style.Render(text)
}

// Box draws text inside a border using the given character set. Multi-line
// input is padded so the right border stays aligned.
func Box(text string, box BoxChars, style lipgloss.Style, useColor bool) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	width := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > width {
			width = w
		}
	}

	var b strings.Builder
	edge := func(s string) string {
		if useColor {
			return style.Render(s)
		}
		return s
	}
	b.WriteString(edge(box.TopLeft + strings.Repeat(box.Horizontal, width+2) + box.TopRight))
	b.WriteString("\n")
	for _, line := range lines {
		pad := strings.Repeat(" ", width-ansi.StringWidth(line))
		b.WriteString(edge(box.Vertical) + " " + line + pad + " " + edge(box.Vertical))
		b.WriteString("\n")
	}
	b.WriteString(edge(box.BottomLeft + strings.Repeat(box.Horizontal, width+2) + box.BottomRight))
	return b.String()
}

// Gradient renders text with a per-rune colour blend between two hex
// colours. Invalid colours fall back to plain text.
func Gradient(text, fromHex, toHex string, useColor bool) string {
	if !useColor {
		return text
	}
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return text
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return text
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}
	var b strings.Builder
	steps := len(runes) - 1
	for i, r := range runes {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		c := from.BlendLuv(to, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// ProgressBar renders a fraction in [0,1] as a fixed-width bar.
func ProgressBar(fraction float64, width int, theme Theme, useColor bool) string {
	if width <= 0 {
		return ""
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction*float64(width) + 0.5)
	bar := strings.Repeat(theme.Glyphs.BarFull, filled) + strings.Repeat(theme.Glyphs.BarEmpty, width-filled)
	if useColor {
		return theme.Accent.Render(bar)
	}
	return bar
}
