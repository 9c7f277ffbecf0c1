package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	cellPadding = 1
	minColWidth = 3
)

// Render draws the current page as a bordered table string.
func (t *Table) Render() string {
	var b strings.Builder
	_, _ = t.RenderTo(&b)
	return b.String()
}

// RenderTo writes the rendered table to w.
func (t *Table) RenderTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	t.render(cw)
	return cw.n, cw.err
}

func (t *Table) render(w io.Writer) {
	if len(t.columns) == 0 {
		return
	}
	widths := t.resolveWidths()
	box := t.theme.Box

	if strings.TrimSpace(t.title) != "" {
		title := t.title
		if t.useColor {
			title = t.theme.Header.Render(title)
		}
		fmt.Fprintln(w, title)
	}

	t.writeRule(w, widths, box.TopLeft, box.TopT, box.TopRight)
	t.writeCells(w, widths, t.headerCells(), true)
	t.writeRule(w, widths, box.LeftT, box.Cross, box.RightT)
	for _, idx := range t.visible() {
		cells := make([]string, len(t.columns))
		for c, col := range t.columns {
			cells[c] = cellText(col, t.rows[idx])
		}
		t.writeCells(w, widths, cells, false)
	}
	t.writeRule(w, widths, box.BottomLeft, box.BottomT, box.BottomRight)

	if t.pageSize > 0 {
		total := len(t.processed())
		pages := 1
		if total > 0 {
			pages = (total-1)/t.pageSize + 1
		}
		footer := fmt.Sprintf("page %d/%d (%d rows)", t.page+1, pages, total)
		if t.useColor {
			footer = t.theme.Muted.Render(footer)
		}
		fmt.Fprintln(w, footer)
	}
}

func (t *Table) headerCells() []string {
	cells := make([]string, len(t.columns))
	for i, col := range t.columns {
		cells[i] = t.headerLabel(col)
	}
	return cells
}

func (t *Table) headerLabel(col Column) string {
	label := col.Label
	if label == "" {
		label = col.Name
	}
	if col.Name == t.sortCol && t.sortCol != "" {
		if t.sortDir == Desc {
			label += " ▼"
		} else {
			label += " ▲"
		}
	}
	return label
}

// resolveWidths computes content widths: explicit widths are honored
// as-is, auto widths grow to the widest formatted cell, and any overflow
// past the terminal width is shaved evenly across all columns.
func (t *Table) resolveWidths() []int {
	widths := make([]int, len(t.columns))
	processed := t.processed()
	for i, col := range t.columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		width := runewidth.StringWidth(t.headerLabel(col))
		for _, idx := range processed {
			if w := runewidth.StringWidth(cellText(col, t.rows[idx])); w > width {
				width = w
			}
		}
		widths[i] = width + cellPadding
	}

	// Border glyphs plus one space of padding on each side of every cell.
	overhead := len(t.columns)*(2*cellPadding+1) + 1
	avail := t.width - overhead
	total := 0
	for _, w := range widths {
		total += w
	}
	if avail <= 0 || total <= avail {
		return widths
	}

	overflow := total - avail
	for overflow > 0 {
		shaved := false
		for i := range widths {
			if overflow == 0 {
				break
			}
			if widths[i] > minColWidth {
				widths[i]--
				overflow--
				shaved = true
			}
		}
		if !shaved {
			break
		}
	}
	return widths
}

func (t *Table) writeRule(w io.Writer, widths []int, left, mid, right string) {
	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat(t.theme.Box.Horizontal, width+2*cellPadding))
		if i < len(widths)-1 {
			b.WriteString(mid)
		}
	}
	b.WriteString(right)
	line := b.String()
	if t.useColor {
		line = t.theme.Muted.Render(line)
	}
	fmt.Fprintln(w, line)
}

// writeCells writes one logical row; cells wrapping to several lines
// share one row border.
func (t *Table) writeCells(w io.Writer, widths []int, cells []string, header bool) {
	wrapped := make([][]string, len(cells))
	height := 1
	for i, cell := range cells {
		wrapped[i] = wrapCell(cell, widths[i], t.theme.Glyphs.Ellipsis)
		if len(wrapped[i]) > height {
			height = len(wrapped[i])
		}
	}

	edge := t.theme.Box.Vertical
	if t.useColor {
		edge = t.theme.Muted.Render(edge)
	}
	for line := 0; line < height; line++ {
		var b strings.Builder
		b.WriteString(edge)
		for i := range cells {
			text := ""
			if line < len(wrapped[i]) {
				text = wrapped[i][line]
			}
			padded := alignCell(text, widths[i], t.columns[i].Align)
			if header && t.useColor {
				padded = t.theme.SectionTitle.Render(padded)
			}
			b.WriteString(" " + padded + " ")
			b.WriteString(edge)
		}
		fmt.Fprintln(w, b.String())
	}
}

// wrapCell breaks text on word boundaries to fit width. A single word
// wider than the column is truncated with the ellipsis instead of being
// split mid-word.
func wrapCell(text string, width int, ellipsis string) []string {
	if width <= 0 {
		return []string{""}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := ""
	for _, word := range words {
		if runewidth.StringWidth(word) > width {
			word = runewidth.Truncate(word, width, ellipsis)
		}
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func alignCell(text string, width int, align Align) string {
	gap := width - runewidth.StringWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case Right:
		return strings.Repeat(" ", gap) + text
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	if err != nil {
		cw.err = err
	}
	return n, err
}
