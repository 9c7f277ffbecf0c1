package theme

// Glyphs are the icon characters used by the prompt and table engines.
type Glyphs struct {
	Cursor    string
	Checked   string
	Unchecked string
	Bullet    string
	Connector string
	Ellipsis  string
	BarFull   string
	BarEmpty  string
}

func DefaultGlyphs() Glyphs {
	return Glyphs{
		Cursor:    "❯",
		Checked:   "◉",
		Unchecked: "◯",
		Bullet:    "•",
		Connector: "└─",
		Ellipsis:  "…",
		BarFull:   "█",
		BarEmpty:  "░",
	}
}

// ASCIIGlyphs is the fallback set for terminals without unicode support.
func ASCIIGlyphs() Glyphs {
	return Glyphs{
		Cursor:    ">",
		Checked:   "[x]",
		Unchecked: "[ ]",
		Bullet:    "*",
		Connector: "`-",
		Ellipsis:  "...",
		BarFull:   "#",
		BarEmpty:  "-",
	}
}

// SpinnerFrames is one animation cycle for a spinner.
type SpinnerFrames []string

var (
	FramesDots = SpinnerFrames{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	FramesLine = SpinnerFrames{"|", "/", "-", "\\"}
	FramesArc  = SpinnerFrames{"◜", "◠", "◝", "◞", "◡", "◟"}
)

// BoxChars is one box-drawing character set.
type BoxChars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	LeftT       string
	RightT      string
	TopT        string
	BottomT     string
	Cross       string
}

var (
	BoxRound = BoxChars{
		TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	}
	BoxSquare = BoxChars{
		TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘",
		Horizontal: "─", Vertical: "│",
		LeftT: "├", RightT: "┤", TopT: "┬", BottomT: "┴", Cross: "┼",
	}
	BoxDouble = BoxChars{
		TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝",
		Horizontal: "═", Vertical: "║",
		LeftT: "╠", RightT: "╣", TopT: "╦", BottomT: "╩", Cross: "╬",
	}
	BoxASCII = BoxChars{
		TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
		Horizontal: "-", Vertical: "|",
		LeftT: "+", RightT: "+", TopT: "+", BottomT: "+", Cross: "+",
	}
)
