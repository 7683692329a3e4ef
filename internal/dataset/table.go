// Package dataset loads the raw referendum, regions and departments tables
// from delimited text files. Tables keep their source column structure; all
// renaming and typing happens in the merge stages.
package dataset

// Table is an in-memory delimited table: a header row plus string cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows (header excluded).
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column returns the index of the named header column, or -1 if the table
// has no such column.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
