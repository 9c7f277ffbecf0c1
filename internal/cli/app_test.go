package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_UnknownCommand(t *testing.T) {
	err := Run([]string{"bogus"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("Run(bogus) = %v, want unknown command error", err)
	}
}

func TestRun_HelpSucceeds(t *testing.T) {
	if err := Run([]string{"help"}); err != nil {
		t.Fatalf("Run(help) returned error: %v", err)
	}
	if err := Run(nil); err != nil {
		t.Fatalf("Run with no args returned error: %v", err)
	}
}

func TestPrintHelp_ListsCommands(t *testing.T) {
	var out bytes.Buffer
	printHelp(&out)
	for _, want := range []string{"ask", "confirm", "select", "multiselect", "form", "table"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("help missing %q:\n%s", want, out.String())
		}
	}
}
