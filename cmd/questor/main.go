package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/questor-cli/questor/internal/cli"
	"github.com/questor-cli/questor/theme"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			th := theme.Default()
			renderer := theme.NewRenderer(os.Stderr, th, true)
			renderer.Blank()
			renderer.BulletError(fmt.Sprintf("error: %s", err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "error:", err.Error())
		}
		os.Exit(1)
	}
}
