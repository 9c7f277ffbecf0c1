package questioner

import "errors"

// ErrCanceled is returned when the user aborts a text prompt with Esc or
// Ctrl-C. Selection prompts do not return it; they resolve with nil or an
// empty slice instead.
var ErrCanceled = errors.New("prompt canceled")

// Choice is one selectable option. Value is the opaque result handed
// back on selection and defaults to Name when nil. Checked marks the
// option as pre-selected in a multi-select.
type Choice struct {
	Name    string
	Value   any
	Checked bool
}

func (c Choice) value() any {
	if c.Value != nil {
		return c.Value
	}
	return c.Name
}
