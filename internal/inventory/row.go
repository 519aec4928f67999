package inventory

// Row is one inventory record: a sparse mapping from column name to cell
// value. Columns the source file never had are simply absent and read as
// Null.
type Row map[string]Value

// Value returns the cell for the named column. Absent columns yield the
// zero (Null) Value.
func (r Row) Value(column string) Value {
	return r[column]
}

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	c := make(Row, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}
