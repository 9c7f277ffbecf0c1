package questioner

import "github.com/questor-cli/questor/theme"

func promptPrefix(th theme.Theme, useColor bool) string {
	prefix := th.Glyphs.Bullet
	if useColor {
		return th.Accent.Render(prefix)
	}
	return prefix
}

func promptLabel(th theme.Theme, useColor bool, label string) string {
	if useColor {
		return th.Accent.Render(label)
	}
	return label
}

func mutedToken(th theme.Theme, useColor bool, token string) string {
	if useColor {
		return th.Muted.Render(token)
	}
	return token
}

func errorText(th theme.Theme, useColor bool, text string) string {
	if useColor {
		return th.Error.Render(text)
	}
	return text
}

// window returns the half-open visible range around cursor for a paged
// list of n items.
func window(cursor, size, n int) (int, int) {
	if size <= 0 || n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start > n-size {
		start = n - size
	}
	return start, start + size
}
