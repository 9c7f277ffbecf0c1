// Package table renders tabular data with column sizing, cell wrapping,
// sorting, filtering, and pagination, plus an interactive single-row
// picker sharing the prompt engines' render loop. A Table is constructed
// once and reused across renders.
package table

import (
	"sort"
	"strings"

	"github.com/questor-cli/questor/theme"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

type Align int

const (
	Left Align = iota
	Center
	Right
)

// Column describes one table column. Width 0 means auto-sizing from the
// label and cell contents. Formatter, when set, produces the display
// value; sorting always compares the raw value.
type Column struct {
	Name      string
	Label     string
	Width     int
	Align     Align
	Sortable  bool
	Formatter func(Row) string
}

// Row is one record keyed by column name.
type Row map[string]any

// Table holds the data model and display state. Mutators return the
// table for chaining.
type Table struct {
	title    string
	columns  []Column
	rows     []Row
	sortCol  string
	sortDir  Direction
	filters  map[string]string
	selected map[int]struct{}
	page     int
	pageSize int
	width    int

	theme    theme.Theme
	useColor bool
}

func New(th theme.Theme, useColor bool) *Table {
	width := theme.WrapWidth()
	if width <= 0 {
		width = 80
	}
	return &Table{
		filters:  make(map[string]string),
		selected: make(map[int]struct{}),
		width:    width,
		theme:    th,
		useColor: useColor,
	}
}

func (t *Table) SetTitle(title string) *Table {
	t.title = title
	return t
}

func (t *Table) SetColumns(columns []Column) *Table {
	t.columns = columns
	return t
}

func (t *Table) SetRows(rows []Row) *Table {
	t.rows = rows
	t.clampPage()
	return t
}

// SetWidth overrides the detected terminal width.
func (t *Table) SetWidth(width int) *Table {
	if width > 0 {
		t.width = width
	}
	return t
}

// SetPageSize enables pagination; zero disables it.
func (t *Table) SetPageSize(size int) *Table {
	t.pageSize = size
	t.clampPage()
	return t
}

// Page moves to a zero-based page, clamped into the filtered row count.
func (t *Table) Page(page int) *Table {
	t.page = page
	t.clampPage()
	return t
}

// CurrentPage reports the page after clamping.
func (t *Table) CurrentPage() int {
	return t.page
}

// Sort orders rows by a column. Ties keep their original relative order
// in both directions.
func (t *Table) Sort(column string, dir Direction) *Table {
	t.sortCol = column
	t.sortDir = dir
	t.clampPage()
	return t
}

// Filter keeps rows whose column contains value, case-insensitively.
// Filters on different columns combine with AND; an empty value clears
// the column's filter.
func (t *Table) Filter(column, value string) *Table {
	if strings.TrimSpace(value) == "" {
		delete(t.filters, column)
	} else {
		t.filters[column] = value
	}
	t.clampPage()
	return t
}

func (t *Table) ClearFilters() *Table {
	t.filters = make(map[string]string)
	t.clampPage()
	return t
}

// SelectRow marks a row by its index into the unfiltered row list, so
// selection survives re-filtering.
func (t *Table) SelectRow(index int) *Table {
	if index >= 0 && index < len(t.rows) {
		t.selected[index] = struct{}{}
	}
	return t
}

func (t *Table) DeselectRow(index int) *Table {
	delete(t.selected, index)
	return t
}

// SelectedRows lists the marked unfiltered row indices in order.
func (t *Table) SelectedRows() []int {
	out := make([]int, 0, len(t.selected))
	for idx := range t.selected {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// processed returns unfiltered row indices after filtering then sorting.
// Filters apply before sorting and before pagination.
func (t *Table) processed() []int {
	indices := make([]int, 0, len(t.rows))
	for i, row := range t.rows {
		if t.matchesFilters(row) {
			indices = append(indices, i)
		}
	}
	if t.sortCol != "" {
		sign := 1
		if t.sortDir == Desc {
			sign = -1
		}
		sort.SliceStable(indices, func(a, b int) bool {
			cmp := naturalCompare(t.rows[indices[a]][t.sortCol], t.rows[indices[b]][t.sortCol])
			return sign*cmp < 0
		})
	}
	return indices
}

func (t *Table) matchesFilters(row Row) bool {
	for column, query := range t.filters {
		cell := strings.ToLower(rawString(row[column]))
		if !strings.Contains(cell, strings.ToLower(query)) {
			return false
		}
	}
	return true
}

// visible returns the processed indices for the current page.
func (t *Table) visible() []int {
	processed := t.processed()
	if t.pageSize <= 0 {
		return processed
	}
	start := t.page * t.pageSize
	if start >= len(processed) {
		start = lastPageStart(len(processed), t.pageSize)
	}
	end := start + t.pageSize
	if end > len(processed) {
		end = len(processed)
	}
	return processed[start:end]
}

func (t *Table) clampPage() {
	if t.pageSize <= 0 {
		t.page = 0
		return
	}
	total := len(t.processed())
	last := lastPageStart(total, t.pageSize) / t.pageSize
	if t.page < 0 {
		t.page = 0
	}
	if t.page > last {
		t.page = last
	}
}

func lastPageStart(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	last := ((total - 1) / pageSize) * pageSize
	return last
}

// cellText is the display value of one cell: formatter output when the
// column has one, the raw value otherwise.
func cellText(col Column, row Row) string {
	if col.Formatter != nil {
		return col.Formatter(row)
	}
	return rawString(row[col.Name])
}
