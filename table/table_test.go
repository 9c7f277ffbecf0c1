package table

import (
	"reflect"
	"testing"

	"github.com/questor-cli/questor/theme"
)

func sampleTable() *Table {
	return New(theme.Default(), false).
		SetColumns([]Column{
			{Name: "name", Label: "Name", Sortable: true},
			{Name: "age", Label: "Age", Sortable: true, Align: Right},
			{Name: "city", Label: "City"},
		}).
		SetRows([]Row{
			{"name": "carol", "age": 30, "city": "Lisbon"},
			{"name": "alice", "age": 41, "city": "Berlin"},
			{"name": "bob", "age": 30, "city": "Madrid"},
		})
}

func names(t *Table, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = rawString(t.rows[idx]["name"])
	}
	return out
}

func TestSort_AscendingAndDescendingMirror(t *testing.T) {
	tbl := sampleTable()

	tbl.Sort("name", Asc)
	if got := names(tbl, tbl.processed()); !reflect.DeepEqual(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("asc sort = %v", got)
	}

	tbl.Sort("name", Desc)
	if got := names(tbl, tbl.processed()); !reflect.DeepEqual(got, []string{"carol", "bob", "alice"}) {
		t.Fatalf("desc sort = %v", got)
	}
}

func TestSort_TiesKeepInsertionOrderBothDirections(t *testing.T) {
	tbl := sampleTable()

	// carol and bob tie on age and must keep their insertion order in
	// both directions.
	tbl.Sort("age", Asc)
	if got := names(tbl, tbl.processed()); !reflect.DeepEqual(got, []string{"carol", "bob", "alice"}) {
		t.Fatalf("asc age sort = %v", got)
	}
	tbl.Sort("age", Desc)
	if got := names(tbl, tbl.processed()); !reflect.DeepEqual(got, []string{"alice", "carol", "bob"}) {
		t.Fatalf("desc age sort = %v", got)
	}
}

func TestSort_IsIdempotent(t *testing.T) {
	tbl := sampleTable()
	tbl.Sort("age", Asc)
	first := names(tbl, tbl.processed())
	tbl.Sort("age", Asc)
	second := names(tbl, tbl.processed())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-sorting changed the order: %v vs %v", first, second)
	}
}

func TestSort_NumericStringsCompareNumerically(t *testing.T) {
	tbl := New(theme.Default(), false).
		SetColumns([]Column{{Name: "v"}}).
		SetRows([]Row{{"v": "10"}, {"v": "9"}, {"v": "100"}})

	tbl.Sort("v", Asc)
	got := make([]string, 0, 3)
	for _, idx := range tbl.processed() {
		got = append(got, rawString(tbl.rows[idx]["v"]))
	}
	if !reflect.DeepEqual(got, []string{"9", "10", "100"}) {
		t.Fatalf("numeric string sort = %v", got)
	}
}

func TestFilter_CombinesWithAnd(t *testing.T) {
	tbl := sampleTable()

	tbl.Filter("age", "30")
	if got := len(tbl.processed()); got != 2 {
		t.Fatalf("one filter kept %d rows, want 2", got)
	}
	tbl.Filter("city", "mad")
	if got := names(tbl, tbl.processed()); !reflect.DeepEqual(got, []string{"bob"}) {
		t.Fatalf("two filters = %v, want [bob]", got)
	}

	// Empty value clears only that column's filter.
	tbl.Filter("city", "")
	if got := len(tbl.processed()); got != 2 {
		t.Fatalf("after clearing city filter kept %d rows, want 2", got)
	}
	tbl.ClearFilters()
	if got := len(tbl.processed()); got != 3 {
		t.Fatalf("after ClearFilters kept %d rows, want 3", got)
	}
}

func TestFilter_AppliesBeforeSortAndPagination(t *testing.T) {
	rows := make([]Row, 0, 30)
	for i := 0; i < 30; i++ {
		group := "keep"
		if i%2 == 1 {
			group = "drop"
		}
		rows = append(rows, Row{"id": i, "group": group})
	}
	tbl := New(theme.Default(), false).
		SetColumns([]Column{{Name: "id"}, {Name: "group"}}).
		SetRows(rows).
		SetPageSize(10).
		Filter("group", "keep").
		Sort("id", Desc)

	visible := tbl.visible()
	if len(visible) != 10 {
		t.Fatalf("page holds %d rows, want 10", len(visible))
	}
	for _, idx := range visible {
		if tbl.rows[idx]["group"] != "keep" {
			t.Fatalf("filtered-out row leaked onto the page")
		}
	}
	if first := tbl.rows[visible[0]]["id"]; first != 28 {
		t.Fatalf("first visible id = %v, want the highest kept id 28", first)
	}
}

func TestPage_ClampsPastEnd(t *testing.T) {
	rows := make([]Row, 25)
	for i := range rows {
		rows[i] = Row{"id": i}
	}
	tbl := New(theme.Default(), false).
		SetColumns([]Column{{Name: "id"}}).
		SetRows(rows).
		SetPageSize(10)

	tbl.Page(5)
	if got := tbl.CurrentPage(); got != 2 {
		t.Fatalf("CurrentPage = %d, want clamp to last page 2", got)
	}
	if got := len(tbl.visible()); got != 5 {
		t.Fatalf("last page holds %d rows, want 5", got)
	}

	tbl.Page(-3)
	if got := tbl.CurrentPage(); got != 0 {
		t.Fatalf("CurrentPage = %d, want clamp to 0", got)
	}
}

func TestPage_ReclampsWhenFilterShrinksRows(t *testing.T) {
	rows := make([]Row, 25)
	for i := range rows {
		rows[i] = Row{"id": i, "group": "keep"}
	}
	rows[3]["group"] = "other"
	tbl := New(theme.Default(), false).
		SetColumns([]Column{{Name: "id"}, {Name: "group"}}).
		SetRows(rows).
		SetPageSize(10).
		Page(2)

	tbl.Filter("group", "other")
	if got := tbl.CurrentPage(); got != 0 {
		t.Fatalf("CurrentPage = %d, want 0 after the row set shrank", got)
	}
	if got := len(tbl.visible()); got != 1 {
		t.Fatalf("visible = %d rows, want 1", got)
	}
}

func TestSelectRows_SurviveFiltering(t *testing.T) {
	tbl := sampleTable()
	tbl.SelectRow(2).SelectRow(0).SelectRow(99).SelectRow(-1)

	if got := tbl.SelectedRows(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("SelectedRows = %v, want [0 2]", got)
	}

	tbl.Filter("name", "alice")
	if got := tbl.SelectedRows(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("SelectedRows after filter = %v, want unchanged [0 2]", got)
	}

	tbl.DeselectRow(0)
	if got := tbl.SelectedRows(); !reflect.DeepEqual(got, []int{2}) {
		t.Fatalf("SelectedRows after deselect = %v, want [2]", got)
	}
}

func TestNaturalCompare(t *testing.T) {
	cases := []struct {
		a, b any
		want int
	}{
		{a: 1, b: 2, want: -1},
		{a: 2.5, b: 2.5, want: 0},
		{a: "10", b: "9", want: 1},
		{a: "10", b: 9, want: 1},
		{a: "b", b: "a", want: 1},
		{a: "a", b: "10", want: 1},
		{a: nil, b: "x", want: -1},
	}
	for _, tc := range cases {
		if got := naturalCompare(tc.a, tc.b); got != tc.want {
			t.Fatalf("naturalCompare(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCellText_FormatterOverridesRawValue(t *testing.T) {
	col := Column{Name: "age", Formatter: func(r Row) string {
		return "aged " + rawString(r["age"])
	}}
	if got := cellText(col, Row{"age": 30}); got != "aged 30" {
		t.Fatalf("cellText = %q", got)
	}
	if got := cellText(Column{Name: "age"}, Row{"age": 30}); got != "30" {
		t.Fatalf("cellText without formatter = %q", got)
	}
}
