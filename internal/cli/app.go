// Package cli wires the demo binary: small subcommands that exercise
// each prompt engine and the interactive table.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/questor-cli/questor/internal/surface"
	"github.com/questor-cli/questor/questioner"
	"github.com/questor-cli/questor/table"
	"github.com/questor-cli/questor/theme"
)

func Run(argv []string) error {
	fs := flag.NewFlagSet("questor", flag.ContinueOnError)
	var themeName string
	var paletteFile string
	var noColor bool
	var helpFlag bool
	fs.StringVar(&themeName, "theme", "default", "palette name")
	fs.StringVar(&paletteFile, "palette", "", "YAML palette file")
	fs.BoolVar(&noColor, "no-color", false, "disable styled output")
	fs.BoolVar(&helpFlag, "help", false, "show help")
	fs.BoolVar(&helpFlag, "h", false, "show help")
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		printHelp(os.Stdout)
	}
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	args := fs.Args()
	if helpFlag || len(args) == 0 || args[0] == "help" {
		printHelp(os.Stdout)
		return nil
	}

	th := theme.Named(themeName)
	if strings.TrimSpace(paletteFile) != "" {
		palette, err := theme.LoadPaletteFile(paletteFile)
		if err != nil {
			return err
		}
		th = palette.Theme()
	}
	surf := surface.New()
	useColor := surf.Color() && !noColor
	q := questioner.NewWithSurface(th, useColor, surf)

	switch args[0] {
	case "ask":
		return runAsk(q, args[1:])
	case "confirm":
		return runConfirm(q, args[1:])
	case "select":
		return runSelect(q, args[1:])
	case "multiselect":
		return runMultiSelect(q, args[1:])
	case "form":
		return runForm(q)
	case "table":
		return runTable(th, useColor, surf, args[1:])
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runAsk(q *questioner.Questioner, args []string) error {
	message := "What is your name?"
	if len(args) > 0 {
		message = strings.Join(args, " ")
	}
	answer, err := q.Input(questioner.InputConfig{Message: message, Required: true})
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

func runConfirm(q *questioner.Questioner, args []string) error {
	message := "Continue?"
	if len(args) > 0 {
		message = strings.Join(args, " ")
	}
	yes := true
	answer, err := q.Confirm(questioner.ConfirmConfig{Message: message, Default: &yes})
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}

func runSelect(q *questioner.Questioner, args []string) error {
	fs := flag.NewFlagSet("select", flag.ContinueOnError)
	searchable := fs.Bool("searchable", false, "filter choices by typing")
	fuzzy := fs.Bool("fuzzy", false, "fuzzy query matching")
	pageSize := fs.Int("page-size", 0, "visible window size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	choices := demoChoices(fs.Args())
	value, err := q.Select(questioner.SelectConfig{
		Message:    "Pick one",
		Choices:    choices,
		Searchable: *searchable,
		Fuzzy:      *fuzzy,
		PageSize:   *pageSize,
	})
	if err != nil {
		return err
	}
	if value == nil {
		fmt.Println("(canceled)")
		return nil
	}
	fmt.Println(value)
	return nil
}

func runMultiSelect(q *questioner.Questioner, args []string) error {
	fs := flag.NewFlagSet("multiselect", flag.ContinueOnError)
	minSel := fs.Int("min", 0, "minimum selections")
	maxSel := fs.Int("max", 0, "maximum selections (0 = unbounded)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	values, err := q.MultiSelect(questioner.MultiSelectConfig{
		Message: "Pick any",
		Choices: demoChoices(fs.Args()),
		Min:     *minSel,
		Max:     *maxSel,
	})
	if err != nil {
		return err
	}
	for _, value := range values {
		fmt.Println(value)
	}
	return nil
}

func runForm(q *questioner.Questioner) error {
	answers, err := q.Form(questioner.FormConfig{Fields: []questioner.Field{
		{Name: "name", Type: "input", Message: "Name", Required: true},
		{Name: "age", Type: "number", Message: "Age", Integer: true},
		{Name: "lang", Type: "select", Message: "Language", Choices: demoChoices(nil)},
		{Name: "subscribe", Type: "confirm", Message: "Subscribe", Default: "yes"},
	}})
	if err != nil {
		return err
	}
	for name, value := range answers {
		fmt.Printf("%s=%v\n", name, value)
	}
	return nil
}

func runTable(th theme.Theme, useColor bool, surf *surface.Surface, args []string) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	interactive := fs.Bool("interactive", false, "pick a row")
	csv := fs.Bool("csv", false, "print CSV instead of the rendered table")
	sortBy := fs.String("sort", "", "sort column")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t := table.New(th, useColor).
		SetTitle("Languages").
		SetColumns([]table.Column{
			{Name: "name", Label: "Name", Sortable: true},
			{Name: "year", Label: "Year", Align: table.Right, Sortable: true},
			{Name: "note", Label: "Note", Width: 28},
		}).
		SetRows([]table.Row{
			{"name": "Go", "year": 2009, "note": "compiled, garbage-collected, built for concurrency"},
			{"name": "Rust", "year": 2015, "note": "ownership model, no runtime"},
			{"name": "Python", "year": 1991, "note": "dynamic, batteries included"},
			{"name": "C", "year": 1972, "note": "portable assembler"},
		})
	if *sortBy != "" {
		t.Sort(*sortBy, table.Asc)
	}

	if *csv {
		fmt.Print(t.ToCSV())
		return nil
	}
	if *interactive {
		idx, err := t.ShowMenu(surf)
		if err != nil {
			return err
		}
		if idx < 0 {
			fmt.Println("(canceled)")
			return nil
		}
		fmt.Printf("picked row %d\n", idx)
		return nil
	}
	fmt.Print(t.Render())
	return nil
}

func demoChoices(names []string) []questioner.Choice {
	if len(names) == 0 {
		names = []string{"Go", "Rust", "Python", "C", "Zig"}
	}
	choices := make([]questioner.Choice, 0, len(names))
	for _, name := range names {
		choices = append(choices, questioner.Choice{Name: name})
	}
	return choices
}
