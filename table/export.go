package table

import (
	"encoding/json"
	"strings"
)

// ToCSV exports the filtered and sorted row set, ignoring pagination.
// Every field is wrapped in quotes and embedded quotes are doubled, so
// delimiters and newlines inside cells survive a round trip.
func (t *Table) ToCSV() string {
	var b strings.Builder
	fields := make([]string, len(t.columns))
	for i, col := range t.columns {
		label := col.Label
		if label == "" {
			label = col.Name
		}
		fields[i] = csvField(label)
	}
	b.WriteString(strings.Join(fields, ","))
	b.WriteString("\n")

	for _, idx := range t.processed() {
		for i, col := range t.columns {
			fields[i] = csvField(cellText(col, t.rows[idx]))
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func csvField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// ToJSON exports the filtered and sorted row set as a JSON array of raw
// records, ignoring pagination.
func (t *Table) ToJSON() (string, error) {
	rows := make([]Row, 0, len(t.rows))
	for _, idx := range t.processed() {
		rows = append(rows, t.rows[idx])
	}
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
