package schema

import (
	"fmt"

	"github.com/leengari/constrec/internal/domain/data"
	"github.com/leengari/constrec/internal/domain/errors"
	"github.com/leengari/constrec/internal/validation"
)

// valueColumn is "value" when declared, else the second column, else the id
func (t *Table) valueColumn() string {
	if t.hasColumn("value") {
		return "value"
	}
	if len(t.columns) > 1 {
		return t.columns[1]
	}
	return data.IDColumn
}

// generateConstants binds NAME → value for every row whose label yields a
// valid constant name. The first row claiming a name keeps it.
func (t *Table) generateConstants() map[string]interface{} {
	label, value := t.labelColumn(), t.valueColumn()
	constants := make(map[string]interface{}, len(t.rows))
	for _, row := range t.rows {
		name, ok := validation.ConstantName(row.String(label))
		if !ok {
			continue
		}
		if _, taken := constants[name]; taken {
			t.logger.Warn(fmt.Sprintf("%s: constant %s already defined, row %d skipped", t.name, name, row.ID()))
			continue
		}
		constants[name] = row.Value(value)
	}
	return constants
}

// Const returns the value bound to a generated constant
func (t *Table) Const(name string) (interface{}, error) {
	val, ok := t.constants[name]
	if !ok {
		return nil, &errors.UndefinedReferenceError{Table: t.name, Name: name}
	}
	return val, nil
}

// Constants returns a copy of every generated constant.
// It is empty unless the table was defined with CreateConstants.
func (t *Table) Constants() map[string]interface{} {
	out := make(map[string]interface{}, len(t.constants))
	for k, v := range t.constants {
		out[k] = v
	}
	return out
}

// Lookup matches key against the first column and returns the second
// column of that row (the id for single-column tables). Unlike FindBy a
// miss is an error: callers indexing by key expect it to exist.
func (t *Table) Lookup(key interface{}) (interface{}, error) {
	row, ok, err := t.FindBy(t.columns[0], key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &errors.ConstantNotFoundError{Table: t.name, Key: key}
	}
	if len(t.columns) > 1 {
		return row.Value(t.columns[1]), nil
	}
	return row.ID(), nil
}
