package models

// Column names the pipelines read from the input export.
const (
	ColumnTitle       = "title"
	ColumnDescription = "description"
)

// Table is an in-memory copy of a delimited file. Rows keep file order and
// are never mutated after load.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// NewTable builds a Table and indexes its header. The first occurrence of a
// duplicated column name wins.
func NewTable(header []string, rows [][]string) *Table {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	return &Table{Header: header, Rows: rows, index: idx}
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Value returns the cell at row i for the named column. Missing columns and
// short rows yield an empty string.
func (t *Table) Value(i int, column string) string {
	col, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// Column returns every value of the named column in row order.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i := range t.Rows {
		values[i] = t.Value(i, name)
	}
	return values
}
