package questioner

// Prompt configurations. All fields are optional; zero values mean "use
// the prompt kind's default". Configs are resolved once at call entry.

// InputConfig drives a single-line text prompt.
type InputConfig struct {
	Message  string
	Default  string
	Required bool
	// Validate returns a message error when the value is rejected; the
	// prompt redisplays with the message and waits for new input.
	Validate func(string) error
	// Transform rewrites the accepted value before it is returned.
	Transform func(string) string
}

// PasswordConfig drives a masked prompt. Mask defaults to '*'.
type PasswordConfig struct {
	Message string
	Mask    rune
}

// NumberConfig drives a numeric prompt. Min and Max are inclusive bounds;
// nil means unbounded. Integer rejects fractional input.
type NumberConfig struct {
	Message  string
	Default  string
	Required bool
	Integer  bool
	Min      *float64
	Max      *float64
}

// ConfirmConfig drives a yes/no prompt. A nil Default forces an explicit
// answer; otherwise empty input accepts the default.
type ConfirmConfig struct {
	Message string
	Default *bool
}

// SelectConfig drives a single-choice prompt. Searchable adds a query
// line that filters choices by case-insensitive substring match; Fuzzy
// switches the match to fuzzy ranking. PageSize limits the visible
// window (0 shows everything).
type SelectConfig struct {
	Message    string
	Choices    []Choice
	Searchable bool
	Fuzzy      bool
	PageSize   int
}

// MultiSelectConfig drives a toggle-list prompt. Min and Max bound the
// accepted selection count; Max 0 means unbounded.
type MultiSelectConfig struct {
	Message  string
	Choices  []Choice
	Min      int
	Max      int
	PageSize int
}

// LinesConfig drives multi-line collection. Input stops at the terminator
// line, which defaults to an empty line.
type LinesConfig struct {
	Message    string
	Terminator string
}

// Field is one entry of a form. Type selects the engine; unrecognized or
// empty types fall back to the plain input engine.
type Field struct {
	Name     string
	Type     string
	Message  string
	Default  string
	Required bool
	Integer  bool
	Min      int
	Max      int
	MinValue *float64
	MaxValue *float64
	Mask     rune
	Choices  []Choice
	Validate func(string) error
}

// FormConfig sequences fields strictly in declaration order.
type FormConfig struct {
	Fields []Field
}
