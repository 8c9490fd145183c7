package models

import "sort"

// Row maps a column name to the cell value for one table row.
type Row map[string]Value

// Clone returns a shallow copy of the row (values are immutable).
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered collection of rows with named columns. It is the
// in-memory input the chart engine consumes; the supplying collaborator
// has already flattened remote trade statistics into this shape.
//
// Rows are append-only during construction and read-only afterwards.
// A column "exists" when at least one row carries it, mirroring how a
// frame built from records resolves its schema.
type Table struct {
	rows []Row
}

// NewTable builds a table from rows. The slice is retained, not copied;
// callers must not mutate it afterwards.
func NewTable(rows []Row) *Table {
	return &Table{rows: rows}
}

// Rows returns the backing row slice, in input order.
func (t *Table) Rows() []Row { return t.rows }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether any row carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, r := range t.rows {
		if _, ok := r[name]; ok {
			return true
		}
	}
	return false
}

// Columns returns the sorted union of column names across all rows.
func (t *Table) Columns() []string {
	seen := map[string]struct{}{}
	var cols []string
	for _, r := range t.rows {
		for k := range r {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
