package schema

import (
	"strings"

	"github.com/leengari/constrec/internal/domain/data"
	"github.com/leengari/constrec/internal/domain/errors"
)

// IDs returns every row id in order
func (t *Table) IDs() []int {
	ids := make([]int, len(t.rows))
	for i, row := range t.rows {
		ids[i] = row.ID()
	}
	return ids
}

// Pluck returns the values of one column across all rows, in id order
func (t *Table) Pluck(column string) ([]interface{}, error) {
	if err := t.checkColumn(column); err != nil {
		return nil, err
	}
	values := make([]interface{}, len(t.rows))
	for i, row := range t.rows {
		values[i] = row.Value(column)
	}
	return values, nil
}

// Collect resolves a plural accessor such as "names", "albums" or "ids"
// to its column and plucks it. Validation lists are typically built with
// it, e.g. Collect("names").
func (t *Table) Collect(accessor string) ([]interface{}, error) {
	column, ok := strings.CutSuffix(accessor, "s")
	if !ok || column == "" || t.checkColumn(column) != nil {
		return nil, &errors.UnknownAttributeError{Table: t.name, Attribute: accessor}
	}
	if column == data.IDColumn {
		ids := t.IDs()
		values := make([]interface{}, len(ids))
		for i, id := range ids {
			values[i] = id
		}
		return values, nil
	}
	return t.Pluck(column)
}
