package cli

import (
	"fmt"
	"io"
)

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "questor - interactive prompt toolkit demo")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  questor [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  ask [message]           single-line input prompt")
	fmt.Fprintln(w, "  confirm [message]       yes/no prompt")
	fmt.Fprintln(w, "  select [choices...]     single choice (-searchable, -fuzzy, -page-size N)")
	fmt.Fprintln(w, "  multiselect [choices...] multiple choices (-min N, -max N)")
	fmt.Fprintln(w, "  form                    sample multi-field form")
	fmt.Fprintln(w, "  table                   sample table (-interactive, -csv, -sort COL)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -theme NAME     palette name (default, mono, ocean)")
	fmt.Fprintln(w, "  -palette FILE   YAML palette file")
	fmt.Fprintln(w, "  -no-color       disable styled output")
}
