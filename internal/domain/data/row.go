package data

import (
	"fmt"

	"github.com/leengari/constrec/internal/domain/errors"
)

// IDColumn is the implicit column holding a row's sequential id
const IDColumn = "id"

// Row represents a single constant record
// Key = column name, Value = cell value
type Row struct {
	id      int
	table   string
	columns []string
	values  map[string]interface{}
}

// NewRow creates a Row. The values map is copied so the caller's data
// cannot change the row afterwards.
func NewRow(table string, id int, columns []string, values map[string]interface{}) Row {
	copied := make(map[string]interface{}, len(columns))
	for _, col := range columns {
		copied[col] = values[col]
	}
	return Row{
		id:      id,
		table:   table,
		columns: columns,
		values:  copied,
	}
}

// ID returns the 1-based position of the row at load time
func (r Row) ID() int {
	return r.id
}

// IsZero reports whether r is the zero Row (what lookups return on a miss)
func (r Row) IsZero() bool {
	return r.id == 0
}

// Columns returns the declared columns of the owning table
func (r Row) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// HasColumn reports whether column is declared (id always is)
func (r Row) HasColumn(column string) bool {
	if column == IDColumn {
		return true
	}
	_, ok := r.values[column]
	return ok
}

// Get returns the value stored under column.
// Undeclared columns are an error, unlike a nil value.
func (r Row) Get(column string) (interface{}, error) {
	if column == IDColumn {
		return r.id, nil
	}
	val, ok := r.values[column]
	if !ok {
		return nil, &errors.UnknownAttributeError{Table: r.table, Attribute: column}
	}
	return val, nil
}

// Value is Get without the error; undeclared columns read as nil
func (r Row) Value(column string) interface{} {
	val, _ := r.Get(column)
	return val
}

// String formats the value of column for display. nil becomes "".
func (r Row) String(column string) string {
	val := r.Value(column)
	if val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

// Map returns a copy of the row data including the id
func (r Row) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(r.values)+1)
	for k, v := range r.values {
		out[k] = v
	}
	out[IDColumn] = r.id
	return out
}
