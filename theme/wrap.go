package theme

import "sync/atomic"

// The wrap width mirrors the detected terminal width. Zero disables
// wrapping. It is set by the input surface, not by callers.
var wrapWidth atomic.Int64

func SetWrapWidth(width int) {
	if width <= 0 {
		return
	}
	wrapWidth.Store(int64(width))
}

func WrapWidth() int {
	return int(wrapWidth.Load())
}
