package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/leengari/constrec/internal/domain/schema"
)

// Registry holds named tables in a thread-safe way.
// Tables themselves are immutable; the lock only guards the name map.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*schema.Table
	logger *slog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		tables: make(map[string]*schema.Table),
		logger: logger,
	}
}

// Register adds a table under its name
func (r *Registry) Register(t *schema.Table) error {
	if t == nil {
		return fmt.Errorf("cannot register a nil table")
	}
	if t.Name() == "" {
		return fmt.Errorf("cannot register an unnamed table")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tables[t.Name()]; ok {
		return fmt.Errorf("table '%s' already registered", t.Name())
	}
	r.tables[t.Name()] = t

	r.logger.Debug("table registered",
		slog.String("table", t.Name()),
		slog.Int("rows", t.Count()),
		slog.Any("columns", t.Columns()),
	)
	return nil
}

// Get returns the table registered under name
func (r *Registry) Get(name string) (*schema.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("table '%s' not found", name)
	}
	return t, nil
}

// List returns the registered table names, sorted
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
