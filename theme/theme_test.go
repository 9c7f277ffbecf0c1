package theme

import "testing"

func TestNamed_UnknownFallsBackToDefault(t *testing.T) {
	def := Named("default")
	got := Named("no-such-palette")
	if got.Palette() != def.Palette() {
		t.Fatalf("unknown palette = %+v, want the default", got.Palette())
	}
}

func TestNamed_BuiltinsExist(t *testing.T) {
	for _, name := range []string{"default", "mono", "ocean"} {
		th := Named(name)
		if th.Palette().Name != name {
			t.Fatalf("Named(%q).Palette().Name = %q", name, th.Palette().Name)
		}
	}
}

func TestNames_ListsBuiltins(t *testing.T) {
	names := Names()
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{"default", "mono", "ocean"} {
		if !seen[want] {
			t.Fatalf("Names() = %v, missing %q", names, want)
		}
	}
}

func TestPaletteTheme_CarriesDefaults(t *testing.T) {
	th := Default()
	if th.Glyphs.Cursor == "" || th.Box.TopLeft == "" || len(th.Frames) == 0 {
		t.Fatalf("default theme missing glyphs, box chars, or frames")
	}
}

func TestWrapWidth_IgnoresNonPositive(t *testing.T) {
	SetWrapWidth(42)
	defer SetWrapWidth(80)

	SetWrapWidth(0)
	if got := WrapWidth(); got != 42 {
		t.Fatalf("WrapWidth after SetWrapWidth(0) = %d, want 42", got)
	}
	SetWrapWidth(-5)
	if got := WrapWidth(); got != 42 {
		t.Fatalf("WrapWidth after SetWrapWidth(-5) = %d, want 42", got)
	}
}
