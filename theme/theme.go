// Package theme supplies the styling layer shared by every prompt and
// table component: named colour palettes, icon glyphs, spinner frame
// sets, box-drawing character sets, and helpers that render coloured,
// boxed, or gradient text. Engines hold a Theme value explicitly; there
// is no ambient global style state.
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header       lipgloss.Style
	SectionTitle lipgloss.Style
	Accent       lipgloss.Style
	Success      lipgloss.Style
	Warn         lipgloss.Style
	Error        lipgloss.Style
	Muted        lipgloss.Style
	Highlight    lipgloss.Style

	Glyphs  Glyphs
	Frames  SpinnerFrames
	Box     BoxChars
	palette Palette
}

// Palette names the raw colours a Theme is built from. Values are ANSI
// codes or hex strings accepted by lipgloss.Color.
type Palette struct {
	Name    string `yaml:"name"`
	Accent  string `yaml:"accent"`
	Success string `yaml:"success"`
	Warn    string `yaml:"warn"`
	Error   string `yaml:"error"`
	Muted   string `yaml:"muted"`
}

// Theme builds the style set for a palette.
func (p Palette) Theme() Theme {
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true),
		SectionTitle: lipgloss.NewStyle().Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.Accent)),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)),
		Warn:         lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warn)),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)),
		Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)),
		Highlight:    lipgloss.NewStyle().Bold(true),
		Glyphs:       DefaultGlyphs(),
		Frames:       FramesDots,
		Box:          BoxRound,
		palette:      p,
	}
}

// Palette returns the palette the theme was built from.
func (t Theme) Palette() Palette {
	return t.palette
}

func Default() Theme {
	return Named("default")
}

var palettes = map[string]Palette{
	"default": {
		Name:    "default",
		Accent:  "6",
		Success: "2",
		Warn:    "3",
		Error:   "1",
		Muted:   "8",
	},
	"mono": {
		Name:    "mono",
		Accent:  "7",
		Success: "7",
		Warn:    "7",
		Error:   "7",
		Muted:   "8",
	},
	"ocean": {
		Name:    "ocean",
		Accent:  "#00afd7",
		Success: "#5fd7a7",
		Warn:    "#d7af5f",
		Error:   "#d75f5f",
		Muted:   "#5f8787",
	},
}

// Named returns the theme for a built-in palette name. Unknown names
// fall back to the default palette.
func Named(name string) Theme {
	p, ok := palettes[name]
	if !ok {
		p = palettes["default"]
	}
	return p.Theme()
}

// Names lists the built-in palette names.
func Names() []string {
	out := make([]string, 0, len(palettes))
	for name := range palettes {
		out = append(out, name)
	}
	return out
}
