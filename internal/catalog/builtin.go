package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/leengari/constrec/internal/domain/schema"
	"github.com/leengari/constrec/internal/logging"
)

var (
	builtinOnce     sync.Once
	builtinRegistry *Registry
	builtinErr      error
)

// Builtin returns the registry of shipped datasets. The tables are built
// and registered on the first call only; later calls (from any goroutine)
// see the fully built registry. The logger of the first call wins.
func Builtin(logger *slog.Logger) (*Registry, error) {
	builtinOnce.Do(func() {
		builtinRegistry, builtinErr = buildBuiltin(logger)
	})
	return builtinRegistry, builtinErr
}

func buildBuiltin(logger *slog.Logger) (*Registry, error) {
	reg := NewRegistry(logger)
	warner := logging.NewSlogWarner(logger)

	for _, def := range builtinDefinitions() {
		def.Logger = warner
		t, err := schema.New(def)
		if err != nil {
			return nil, fmt.Errorf("failed to build table %s: %w", def.Name, err)
		}
		if err := reg.Register(t); err != nil {
			return nil, err
		}
	}

	reg.logger.Info("builtin tables loaded", slog.Int("table_count", len(reg.List())))
	return reg, nil
}

func builtinDefinitions() []schema.Definition {
	return []schema.Definition{
		{
			Name: "countries",
			Data: []interface{}{"Lithuania", "Latvia", "Estonia"},
		},
		{
			Name:    "currencies",
			Columns: []string{"short", "description"},
			Data: []interface{}{
				[]interface{}{"EUR", "Euro"},
				[]interface{}{"USD", "US Dollar"},
				[]interface{}{"CAD", "Canadian Dollar"},
				[]interface{}{"GBP", "British Pound sterling"},
				[]interface{}{"CHF", "Swiss franc"},
			},
		},
		{
			Name:    "albums",
			Columns: []string{"album"},
			Data:    []interface{}{"Sgt. Pepper", "Magical Mystery Tour", "Abbey Road"},
		},
		{
			Name:    "primes",
			Columns: []string{"prime", "bool"},
			Data: []interface{}{
				[]interface{}{11, false},
				[]interface{}{13, false},
				[]interface{}{17, true},
				[]interface{}{19, false},
			},
		},
		{
			Name:            "beatles",
			Columns:         []string{"name", "value"},
			CreateConstants: true,
			Data: []interface{}{
				map[schema.Symbol]interface{}{"name": "john", "value": 1},
				map[schema.Symbol]interface{}{"name": "paul", "value": 2},
				map[schema.Symbol]interface{}{"name": "george", "value": 3},
				map[schema.Symbol]interface{}{"name": "ringo", "value": 4},
			},
		},
	}
}
