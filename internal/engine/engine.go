package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/constrec/internal/catalog"
	"github.com/leengari/constrec/internal/domain/data"
	"github.com/leengari/constrec/internal/domain/schema"
)

// Result is the outcome of one command
type Result struct {
	Columns []string
	Rows    []map[string]interface{}
	Message string
}

// Engine runs text commands against the tables of a registry
type Engine struct {
	registry  *catalog.Registry
	observers []Observer
}

// New creates a new Engine instance
func New(registry *catalog.Registry) *Engine {
	return &Engine{
		registry:  registry,
		observers: make([]Observer, 0),
	}
}

// Execute parses and runs one command line
func (e *Engine) Execute(line string) (*Result, error) {
	queryID := uuid.New().String()

	e.notify(Event{Type: EventParseStart, QueryID: queryID, Data: line})
	cmd, err := Parse(line)
	if err != nil {
		return nil, err
	}
	e.notify(Event{Type: EventParseEnd, QueryID: queryID, Data: cmd.Name})

	e.notify(Event{Type: EventExecStart, QueryID: queryID})
	start := time.Now()
	result, err := e.run(cmd)
	outcome := map[string]interface{}{"duration": time.Since(start).String()}
	if err != nil {
		outcome["error"] = err.Error()
	} else {
		outcome["rows"] = len(result.Rows)
	}
	e.notify(Event{Type: EventExecEnd, QueryID: queryID, Data: outcome})

	return result, err
}

func (e *Engine) run(cmd *Command) (*Result, error) {
	if cmd.Name == "help" {
		return &Result{Message: helpText}, nil
	}
	if cmd.Name == "tables" {
		return e.listTables()
	}

	name, err := cmd.arg(0, "table name")
	if err != nil {
		return nil, err
	}
	table, err := e.registry.Get(name)
	if err != nil {
		return nil, err
	}

	switch cmd.Name {
	case "describe":
		return describe(table), nil
	case "count":
		return &Result{Message: strconv.Itoa(table.Count())}, nil
	case "find":
		return find(table, cmd)
	case "findby":
		return findBy(table, cmd)
	case "pluck":
		return pluck(table, cmd)
	case "lookup":
		return lookup(table, cmd)
	case "options":
		return options(table, cmd)
	case "const":
		return constant(table, cmd)
	case "constants":
		return constants(table), nil
	}
	return nil, fmt.Errorf("unknown command: %s (try 'help')", cmd.Name)
}

func (e *Engine) listTables() (*Result, error) {
	res := &Result{Columns: []string{"table", "columns", "rows", "constants"}}
	for _, name := range e.registry.List() {
		t, err := e.registry.Get(name)
		if err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, map[string]interface{}{
			"table":     name,
			"columns":   strings.Join(t.Columns(), ", "),
			"rows":      t.Count(),
			"constants": len(t.Constants()),
		})
	}
	return res, nil
}

func describe(t *schema.Table) *Result {
	res := &Result{Columns: []string{"column"}}
	res.Rows = append(res.Rows, map[string]interface{}{"column": data.IDColumn})
	for _, col := range t.Columns() {
		res.Rows = append(res.Rows, map[string]interface{}{"column": col})
	}
	return res
}

func rowsResult(t *schema.Table, rows []data.Row) *Result {
	res := &Result{Columns: append([]string{data.IDColumn}, t.Columns()...)}
	for _, row := range rows {
		res.Rows = append(res.Rows, row.Map())
	}
	if len(rows) == 0 {
		res.Message = "not found"
	}
	return res
}

// find T <id|all|first|last> [column=value ...]
// Keys naming no column are ignored.
func find(t *schema.Table, cmd *Command) (*Result, error) {
	selector, err := cmd.arg(1, "id or all|first|last")
	if err != nil {
		return nil, err
	}
	conds := make(schema.Conditions, len(cmd.Options))
	for key, val := range cmd.Options {
		if t.HasColumn(key) {
			conds[key] = val
		}
	}
	rows, err := t.Find(ParseValue(selector), conds)
	if err != nil {
		return nil, err
	}
	return rowsResult(t, rows), nil
}

// findby T column value
func findBy(t *schema.Table, cmd *Command) (*Result, error) {
	column, err := cmd.arg(1, "column")
	if err != nil {
		return nil, err
	}
	value, err := cmd.arg(2, "value")
	if err != nil {
		return nil, err
	}
	row, ok, err := t.FindBy(column, ParseValue(value))
	if err != nil {
		return nil, err
	}
	if !ok {
		return rowsResult(t, nil), nil
	}
	return rowsResult(t, []data.Row{row}), nil
}

// pluck T column|plural
func pluck(t *schema.Table, cmd *Command) (*Result, error) {
	accessor, err := cmd.arg(1, "column")
	if err != nil {
		return nil, err
	}
	values, err := t.Pluck(accessor)
	if err != nil {
		values, err = t.Collect(accessor)
	}
	if err != nil {
		return nil, err
	}
	res := &Result{Columns: []string{accessor}}
	for _, v := range values {
		res.Rows = append(res.Rows, map[string]interface{}{accessor: v})
	}
	return res, nil
}

// lookup T key
func lookup(t *schema.Table, cmd *Command) (*Result, error) {
	key, err := cmd.arg(1, "key")
	if err != nil {
		return nil, err
	}
	val, err := t.Lookup(ParseValue(key))
	if err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("%v", val)}, nil
}

// options T [display=c] [value=c] [include_null=true] [null_text=..] [null_value=..]
func options(t *schema.Table, cmd *Command) (*Result, error) {
	opts := cmd.Options
	if text, ok := opts["null_text"]; ok {
		opts["null_text"] = fmt.Sprintf("%v", text)
	}
	list, err := t.OptionsForSelect(schema.SelectOptionsFromMap(opts))
	if err != nil {
		return nil, err
	}
	res := &Result{Columns: []string{"label", "value"}}
	for _, opt := range list {
		res.Rows = append(res.Rows, map[string]interface{}{"label": opt.Label, "value": opt.Value})
	}
	return res, nil
}

// const T NAME
func constant(t *schema.Table, cmd *Command) (*Result, error) {
	name, err := cmd.arg(1, "constant name")
	if err != nil {
		return nil, err
	}
	val, err := t.Const(name)
	if err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("%v", val)}, nil
}

func constants(t *schema.Table) *Result {
	consts := t.Constants()
	names := make([]string, 0, len(consts))
	for name := range consts {
		names = append(names, name)
	}
	sort.Strings(names)

	res := &Result{Columns: []string{"constant", "value"}}
	for _, name := range names {
		res.Rows = append(res.Rows, map[string]interface{}{"constant": name, "value": consts[name]})
	}
	return res
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}

const helpText = `commands:
  tables
  describe T
  count T
  find T <id|all|first|last> [column=value ...]
  findby T column value
  pluck T column|plural
  lookup T key
  options T [display=c] [value=c] [include_null=true] [null_text=..] [null_value=..]
  const T NAME
  constants T`
