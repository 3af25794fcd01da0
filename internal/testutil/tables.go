package testutil

import (
	"github.com/leengari/constrec/internal/domain/schema"
	"github.com/leengari/constrec/internal/logging"
)

// CountriesTable is a single-column table using the default "name" column
func CountriesTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name: "countries",
		Data: []interface{}{"Lithuania", "Latvia", "Estonia"},
	})
}

// HashyCountriesTable holds the same rows as CountriesTable given as maps
// with both Symbol and string keys
func HashyCountriesTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name: "hashy_countries",
		Data: []interface{}{
			map[schema.Symbol]interface{}{"name": "Lithuania"},
			map[schema.Symbol]interface{}{"name": "Latvia"},
			map[string]interface{}{"name": "Estonia"},
		},
	})
}

// AlbumsTable is a single-column table with a custom column name
func AlbumsTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:    "albums",
		Columns: []string{"album"},
		Data:    []interface{}{"Sgt. Pepper", "Magical Mystery Tour", "Abbey Road"},
	})
}

// CurrenciesTable has two columns given as positional rows
func CurrenciesTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:    "currencies",
		Columns: []string{"short", "description"},
		Data: []interface{}{
			[]interface{}{"EUR", "Euro"},
			[]interface{}{"USD", "US Dollar"},
			[]interface{}{"CAD", "Canadian Dollar"},
			[]interface{}{"GBP", "British Pound sterling"},
			[]interface{}{"CHF", "Swiss franc"},
		},
	})
}

// HashyCurrenciesTable holds the same rows as CurrenciesTable given as maps
func HashyCurrenciesTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:    "hashy_currencies",
		Columns: []string{"short", "description"},
		Data: []interface{}{
			map[schema.Symbol]interface{}{"short": "EUR", "description": "Euro"},
			map[schema.Symbol]interface{}{"short": "USD", "description": "US Dollar"},
			map[schema.Symbol]interface{}{"short": "CAD", "description": "Canadian Dollar"},
			map[schema.Symbol]interface{}{"short": "GBP", "description": "British Pound sterling"},
			map[schema.Symbol]interface{}{"short": "CHF", "description": "Swiss franc"},
		},
	})
}

// PrimesTable mixes integers and booleans
func PrimesTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:    "primes",
		Columns: []string{"prime", "bool"},
		Data: []interface{}{
			[]interface{}{11, false},
			[]interface{}{13, false},
			[]interface{}{17, true},
			[]interface{}{19, false},
		},
	})
}

// ValidationTable has name/value columns without constants
func ValidationTable() *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:    "for_validation",
		Columns: []string{"name", "value"},
		Data: []interface{}{
			[]interface{}{"normal", 1},
			[]interface{}{"gift", 2},
			[]interface{}{"friend", 3},
		},
	})
}

// BeatlesTable generates a constant per row
func BeatlesTable(w logging.Warner) *schema.Table {
	return schema.MustNew(schema.Definition{
		Name:            "beatles",
		Columns:         []string{"name", "value"},
		CreateConstants: true,
		Logger:          w,
		Data: []interface{}{
			[]interface{}{"john", 1},
			[]interface{}{"paul", 2},
			[]interface{}{"george", 3},
			[]interface{}{"ringo", 4},
		},
	})
}
