package schema

import (
	"github.com/leengari/constrec/internal/domain/data"
)

// DefaultNullText labels the prepended null option
const DefaultNullText = "-"

// Option is one (label, value) pair of a select list
type Option struct {
	Label string
	Value interface{}
}

// SelectOptions configures OptionsForSelect. The zero value lists the
// label column against row ids.
type SelectOptions struct {
	Display     string                // label column; "name" or the first column when empty
	DisplayFunc func(data.Row) string // computed label, wins over Display
	Value       string                // value column; "id" when empty

	IncludeNull bool
	NullText    string      // "-" when empty
	NullValue   interface{} // nil unless set
}

// SelectOptionsFromMap reads display, value, include_null, null_text and
// null_value from a loose option map. Unknown keys and values of the wrong
// type are ignored.
func SelectOptionsFromMap(opts map[string]interface{}) SelectOptions {
	var so SelectOptions
	switch d := opts["display"].(type) {
	case string:
		so.Display = d
	case Symbol:
		so.Display = string(d)
	case func(data.Row) string:
		so.DisplayFunc = d
	}
	switch v := opts["value"].(type) {
	case string:
		so.Value = v
	case Symbol:
		so.Value = string(v)
	}
	if inc, ok := opts["include_null"].(bool); ok {
		so.IncludeNull = inc
	}
	if text, ok := opts["null_text"].(string); ok {
		so.NullText = text
	}
	if nv, ok := opts["null_value"]; ok {
		so.NullValue = nv
	}
	return so
}

// OptionsForSelect lists every row as a (label, value) pair in id order.
// With IncludeNull the null pair always comes first.
func (t *Table) OptionsForSelect(opts SelectOptions) ([]Option, error) {
	display := opts.Display
	if display == "" {
		display = t.labelColumn()
	}
	value := opts.Value
	if value == "" {
		value = data.IDColumn
	}

	if opts.DisplayFunc == nil {
		if err := t.checkColumn(display); err != nil {
			return nil, err
		}
	}
	if err := t.checkColumn(value); err != nil {
		return nil, err
	}

	result := make([]Option, 0, len(t.rows)+1)
	if opts.IncludeNull {
		text := opts.NullText
		if text == "" {
			text = DefaultNullText
		}
		result = append(result, Option{Label: text, Value: opts.NullValue})
	}

	for _, row := range t.rows {
		var label string
		if opts.DisplayFunc != nil {
			label = opts.DisplayFunc(row)
		} else {
			label = row.String(display)
		}
		result = append(result, Option{Label: label, Value: row.Value(value)})
	}
	return result, nil
}
