package reference

import (
	"fmt"
	"math"
	"sort"
)

// Table is an immutable, column-oriented Dataset.
type Table struct {
	rows  int
	names []string
	cols  map[string][]float64
}

// NewTable copies cols into a Table. All columns must have equal length
// and hold finite values; an empty map yields a zero-row table.
// Column order for Columns() is alphabetical.
// Complexity: O(rows·cols).
func NewTable(cols map[string][]float64) (*Table, error) {
	names := make([]string, 0, len(cols))
	for name := range cols {
		names = append(names, name)
	}
	sort.Strings(names)

	return newTable(names, cols)
}

// newTable builds a Table keeping the given column order.
func newTable(names []string, cols map[string][]float64) (*Table, error) {
	t := &Table{
		rows:  -1,
		names: append([]string(nil), names...),
		cols:  make(map[string][]float64, len(cols)),
	}

	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyHeader
		}
		src := cols[name]
		if t.rows == -1 {
			t.rows = len(src)
		} else if len(src) != t.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrRaggedColumns, name, len(src), t.rows)
		}
		for i, v := range src {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q row %d", ErrBadValue, name, i)
			}
		}
		t.cols[name] = append([]float64(nil), src...)
	}
	if t.rows == -1 {
		t.rows = 0
	}

	return t, nil
}

// RowCount returns the number of frames.
func (t *Table) RowCount() int { return t.rows }

// Column returns the named column. The slice is shared and capacity-clipped.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col[:len(col):len(col)], nil
}

// Columns returns the column names.
func (t *Table) Columns() []string {
	return append([]string(nil), t.names...)
}
