package schema

import (
	"fmt"

	"github.com/leengari/constrec/internal/domain/data"
	"github.com/leengari/constrec/internal/domain/errors"
	"github.com/leengari/constrec/internal/logging"
	"github.com/leengari/constrec/internal/validation"
)

// DefaultColumn is used when a definition declares no columns
const DefaultColumn = "name"

// Definition describes a constant table before it is built
type Definition struct {
	Name    string
	Columns []string // defaults to []string{"name"}

	// Data holds one element per row: a scalar, a positional []interface{}
	// in column order, or a map keyed by string or Symbol.
	Data []interface{}

	CreateConstants bool
	Logger          logging.Warner // defaults to logging.NopWarner
}

// Table is an immutable set of constant rows.
// It is never modified after New returns, so concurrent reads are safe.
type Table struct {
	name      string
	columns   []string
	rows      []data.Row
	indexes   map[string]*data.Index
	constants map[string]interface{}
	logger    logging.Warner
}

// New builds a table from def. Either the whole table is built or an
// error is returned.
func New(def Definition) (*Table, error) {
	logger := def.Logger
	if logger == nil {
		logger = logging.NopWarner{}
	}

	columns := def.Columns
	if len(columns) == 0 {
		columns = []string{DefaultColumn}
	}
	columns = append([]string(nil), columns...)

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col]; dup {
			return nil, &errors.InvalidArgumentError{
				Table:    def.Name,
				Argument: col,
				Reason:   "duplicate column name",
			}
		}
		seen[col] = struct{}{}
	}
	ValidateColumns(columns, logger)

	t := &Table{
		name:    def.Name,
		columns: columns,
		rows:    make([]data.Row, 0, len(def.Data)),
		indexes: make(map[string]*data.Index, len(columns)),
		logger:  logger,
	}

	for i, elem := range def.Data {
		values, err := t.rowValues(elem)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		t.rows = append(t.rows, data.NewRow(t.name, i+1, t.columns, values))
	}

	t.buildIndexes()

	if def.CreateConstants {
		t.constants = t.generateConstants()
	}

	return t, nil
}

// MustNew is New for package-level table variables; it panics on error
func MustNew(def Definition) *Table {
	t, err := New(def)
	if err != nil {
		panic(err)
	}
	return t
}

// ValidateColumns sends one warning to w per unusable column name and
// returns how many were sent. Columns are still accepted.
func ValidateColumns(columns []string, w logging.Warner) int {
	if w == nil {
		w = logging.NopWarner{}
	}
	warned := 0
	for _, col := range columns {
		if err := validation.ValidateColumnName(col); err != nil {
			w.Warn(err.Error())
			warned++
		}
	}
	return warned
}

// rowValues turns one data element into a column → value map
func (t *Table) rowValues(elem interface{}) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(t.columns))

	switch v := elem.(type) {
	case []interface{}:
		if len(v) > len(t.columns) {
			return nil, &errors.InvalidArgumentError{
				Table:  t.name,
				Reason: fmt.Sprintf("%d values for %d columns", len(v), len(t.columns)),
			}
		}
		for i, val := range v {
			values[t.columns[i]] = val
		}
	case map[string]interface{}:
		for _, col := range t.columns {
			values[col] = v[col]
		}
	case map[Symbol]interface{}:
		for _, col := range t.columns {
			values[col] = v[Symbol(col)]
		}
	case map[interface{}]interface{}:
		for key, val := range v {
			var col string
			switch k := key.(type) {
			case string:
				col = k
			case Symbol:
				col = string(k)
			default:
				return nil, &errors.InvalidArgumentError{
					Table:    t.name,
					Argument: key,
					Reason:   "map keys must be string or Symbol",
				}
			}
			if t.hasColumn(col) {
				values[col] = val
			}
		}
	default:
		if !isScalar(elem) {
			return nil, &errors.InvalidArgumentError{
				Table:    t.name,
				Argument: elem,
				Reason:   "unsupported row type",
			}
		}
		values[t.columns[0]] = elem
	}

	for col, val := range values {
		if !isScalar(val) {
			return nil, &errors.InvalidArgumentError{
				Table:    t.name,
				Argument: val,
				Reason:   fmt.Sprintf("column %s holds a non-scalar value", col),
			}
		}
		if sym, ok := val.(Symbol); ok {
			values[col] = string(sym)
		}
	}
	return values, nil
}

// buildIndexes indexes every declared column by normalized value
func (t *Table) buildIndexes() {
	for _, col := range t.columns {
		idx := data.NewIndex(col)
		for pos, row := range t.rows {
			key, isNull := normalize(row.Value(col))
			idx.Add(key, isNull, pos)
		}
		t.indexes[col] = idx
	}
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Columns returns the declared columns in order
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Count returns the number of rows
func (t *Table) Count() int {
	return len(t.rows)
}

func (t *Table) hasColumn(col string) bool {
	for _, c := range t.columns {
		if c == col {
			return true
		}
	}
	return false
}

// HasColumn reports whether col is declared or is the implicit id
func (t *Table) HasColumn(col string) bool {
	return col == data.IDColumn || t.hasColumn(col)
}

// checkColumn accepts declared columns and the implicit id
func (t *Table) checkColumn(col string) error {
	if t.HasColumn(col) {
		return nil
	}
	return &errors.UnknownAttributeError{Table: t.name, Attribute: col}
}

// labelColumn is "name" when declared, else the first column
func (t *Table) labelColumn() string {
	if t.hasColumn(DefaultColumn) {
		return DefaultColumn
	}
	return t.columns[0]
}
