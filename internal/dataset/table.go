// Package dataset loads tabular x/y data from CSV files. Columns are
// always addressed by position: the first column is the horizontal series
// and the second the vertical one, regardless of header names.
package dataset

// Table is an in-memory two-column numeric table.
type Table struct {
	Path string
	X    []float64
	Y    []float64

	// Columns records how many columns the source file carried, which may
	// exceed the two this table retains.
	Columns int
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.X)
}
