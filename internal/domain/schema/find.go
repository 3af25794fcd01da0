package schema

import (
	"strings"

	"github.com/leengari/constrec/internal/domain/data"
	"github.com/leengari/constrec/internal/domain/errors"
)

// QueryMode selects a group of rows instead of a single id
type QueryMode int

const (
	All QueryMode = iota + 1
	First
	Last
)

func (m QueryMode) String() string {
	switch m {
	case All:
		return "all"
	case First:
		return "first"
	case Last:
		return "last"
	}
	return "unknown"
}

// ParseQueryMode maps "all", "first" and "last" (any case) to a QueryMode
func ParseQueryMode(token string) (QueryMode, bool) {
	switch strings.ToLower(token) {
	case "all":
		return All, true
	case "first":
		return First, true
	case "last":
		return Last, true
	}
	return 0, false
}

// Conditions maps column → expected value; all must match
type Conditions map[string]interface{}

// FindOptionsFromMap extracts the "conditions" entry of a loose option map.
// Every other key is ignored.
func FindOptionsFromMap(opts map[string]interface{}) Conditions {
	switch c := opts["conditions"].(type) {
	case Conditions:
		return c
	case map[string]interface{}:
		return Conditions(c)
	case map[Symbol]interface{}:
		conds := make(Conditions, len(c))
		for k, v := range c {
			conds[string(k)] = v
		}
		return conds
	}
	return nil
}

// Get returns the row with the given id. ok is false unless 1 <= id <= Count().
func (t *Table) Get(id int) (data.Row, bool) {
	if id < 1 || id > len(t.rows) {
		return data.Row{}, false
	}
	return t.rows[id-1], true
}

// Find resolves selector to rows:
//   - nil: nothing
//   - an integer: the row with that id, if any
//   - a QueryMode or its token ("all", "first", "last"): every matching row,
//     or the first / last one
//
// conds filters the candidates in all three modes. Anything else is an
// InvalidArgumentError.
func (t *Table) Find(selector interface{}, conds Conditions) ([]data.Row, error) {
	if selector == nil {
		return nil, nil
	}

	if id, ok := asInt(selector); ok {
		row, found := t.Get(id)
		if !found {
			return nil, nil
		}
		return []data.Row{row}, nil
	}

	var mode QueryMode
	switch s := selector.(type) {
	case QueryMode:
		mode = s
	case string:
		m, ok := ParseQueryMode(s)
		if !ok {
			return nil, t.invalidSelector(selector)
		}
		mode = m
	case Symbol:
		m, ok := ParseQueryMode(string(s))
		if !ok {
			return nil, t.invalidSelector(selector)
		}
		mode = m
	default:
		return nil, t.invalidSelector(selector)
	}

	switch mode {
	case All:
		return t.Where(conds)
	case First, Last:
		rows, err := t.Where(conds)
		if err != nil || len(rows) == 0 {
			return nil, err
		}
		if mode == First {
			return rows[:1], nil
		}
		return rows[len(rows)-1:], nil
	}
	return nil, t.invalidSelector(selector)
}

func (t *Table) invalidSelector(selector interface{}) error {
	return &errors.InvalidArgumentError{
		Table:    t.name,
		Argument: selector,
		Reason:   "expected an id or one of all, first, last",
	}
}

// Rows returns every row in id order
func (t *Table) Rows() []data.Row {
	rows := make([]data.Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// First returns the first row, if the table has any
func (t *Table) First() (data.Row, bool) {
	return t.Get(1)
}

// Last returns the last row, if the table has any
func (t *Table) Last() (data.Row, bool) {
	return t.Get(len(t.rows))
}

// Where returns the rows matching every condition, in id order.
// Empty conditions return all rows.
func (t *Table) Where(conds Conditions) ([]data.Row, error) {
	for col := range conds {
		if err := t.checkColumn(col); err != nil {
			return nil, err
		}
	}
	if len(conds) == 0 {
		return t.Rows(), nil
	}

	var result []data.Row
	for _, row := range t.rows {
		if matches(row, conds) {
			result = append(result, row)
		}
	}
	return result, nil
}

// FirstWhere returns the first row matching conds
func (t *Table) FirstWhere(conds Conditions) (data.Row, bool, error) {
	rows, err := t.Find(First, conds)
	if err != nil || len(rows) == 0 {
		return data.Row{}, false, err
	}
	return rows[0], true, nil
}

func matches(row data.Row, conds Conditions) bool {
	for col, want := range conds {
		if !LooseEqual(row.Value(col), want) {
			return false
		}
	}
	return true
}

// FindBy returns the first row whose column loosely equals value.
// A miss is (zero, false, nil); an undeclared column is an UnknownAttributeError.
func (t *Table) FindBy(column string, value interface{}) (data.Row, bool, error) {
	if err := t.checkColumn(column); err != nil {
		return data.Row{}, false, err
	}

	if column == data.IDColumn {
		key, isNull := normalize(value)
		if isNull {
			return data.Row{}, false, nil
		}
		for _, row := range t.rows {
			if k, _ := normalize(row.ID()); k == key {
				return row, true, nil
			}
		}
		return data.Row{}, false, nil
	}

	key, isNull := normalize(value)
	pos, ok := t.indexes[column].First(key, isNull)
	if !ok {
		return data.Row{}, false, nil
	}
	return t.rows[pos], true, nil
}
