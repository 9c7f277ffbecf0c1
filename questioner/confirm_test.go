package questioner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/theme"
)

func boolPtr(v bool) *bool { return &v }

func TestParseConfirm(t *testing.T) {
	cases := []struct {
		line     string
		def      *bool
		want, ok bool
	}{
		{line: "y", want: true, ok: true},
		{line: "YES", want: true, ok: true},
		{line: "n", ok: true},
		{line: " No ", ok: true},
		{line: "", def: boolPtr(true), want: true, ok: true},
		{line: "", def: boolPtr(false), ok: true},
		{line: ""},
		{line: "maybe"},
		{line: "maybe", def: boolPtr(true)},
	}
	for _, tc := range cases {
		got, ok := parseConfirm(tc.line, tc.def)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseConfirm(%q) = (%t, %t), want (%t, %t)", tc.line, got, ok, tc.want, tc.ok)
		}
	}
}

func TestConfirmHint(t *testing.T) {
	cases := []struct {
		def  *bool
		want string
	}{
		{def: nil, want: "y/n"},
		{def: boolPtr(true), want: "Y/n"},
		{def: boolPtr(false), want: "y/N"},
	}
	for _, tc := range cases {
		if got := confirmHint(tc.def); got != tc.want {
			t.Fatalf("confirmHint = %q, want %q", got, tc.want)
		}
	}
}

func TestConfirmModel_AnswerYes(t *testing.T) {
	m := newConfirmModel(ConfirmConfig{Message: "proceed?"}, theme.Default(), false)
	out := drive(m, keyRunes("y"), key(tea.KeyEnter))
	final := out.(confirmModel)
	if final.err != nil {
		t.Fatalf("unexpected error: %v", final.err)
	}
	if !final.value {
		t.Fatalf("value = false, want true for y")
	}
}

func TestConfirmModel_EmptyWithoutDefaultReprompts(t *testing.T) {
	m := newConfirmModel(ConfirmConfig{Message: "proceed?"}, theme.Default(), false)
	out := drive(m, key(tea.KeyEnter))
	final := out.(confirmModel)
	if final.errorLine != "please answer yes or no" {
		t.Fatalf("errorLine = %q, want the reprompt message", final.errorLine)
	}
}

func TestConfirmModel_EmptyAcceptsDefault(t *testing.T) {
	m := newConfirmModel(ConfirmConfig{Message: "proceed?", Default: boolPtr(true)}, theme.Default(), false)
	out := drive(m, key(tea.KeyEnter))
	final := out.(confirmModel)
	if final.errorLine != "" {
		t.Fatalf("errorLine = %q, want accepted default", final.errorLine)
	}
	if !final.value {
		t.Fatalf("value = false, want the default true")
	}
}

func TestConfirmModel_EscCancels(t *testing.T) {
	m := newConfirmModel(ConfirmConfig{Message: "proceed?"}, theme.Default(), false)
	out := drive(m, key(tea.KeyEsc))
	final := out.(confirmModel)
	if !errors.Is(final.err, ErrCanceled) {
		t.Fatalf("err = %v, want ErrCanceled", final.err)
	}
}

func TestConfirm_LineModeRepromptsOnGarbage(t *testing.T) {
	in := strings.NewReader("maybe\nno\n")
	var out bytes.Buffer
	q := NewWithSurface(theme.Default(), false, surface.NewWithIO(in, &out, false))

	value, err := q.Confirm(ConfirmConfig{Message: "proceed?"})
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if value {
		t.Fatalf("value = true, want false for no")
	}
	if !strings.Contains(out.String(), "please answer yes or no") {
		t.Fatalf("output missing reprompt message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "(y/n)") {
		t.Fatalf("output missing hint:\n%s", out.String())
	}
}
