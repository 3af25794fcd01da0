package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	constantPattern   = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
	nonAlnumRun       = regexp.MustCompile(`[^A-Z0-9]+`)
)

// reservedColumns collide with the row id or with table accessor names
var reservedColumns = map[string]struct{}{
	"id":                 {},
	"all":                {},
	"collect":            {},
	"columns":            {},
	"const":              {},
	"constants":          {},
	"count":              {},
	"find":               {},
	"find_by":            {},
	"first":              {},
	"first_where":        {},
	"get":                {},
	"ids":                {},
	"last":               {},
	"lookup":             {},
	"options_for_select": {},
	"pluck":              {},
	"rows":               {},
	"where":              {},
}

// ValidateColumnName reports why name cannot be used as a column, or nil
func ValidateColumnName(name string) error {
	if name == "" {
		return fmt.Errorf("column name cannot be empty")
	}
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("column name %q is not a valid identifier", name)
	}
	if _, ok := reservedColumns[strings.ToLower(name)]; ok {
		return fmt.Errorf("column name %q is reserved", name)
	}
	return nil
}

// ConstantName derives an upper-case constant identifier from a label,
// e.g. "Sgt. Pepper" -> "SGT_PEPPER". ok is false when nothing usable remains
// or the result does not start with a letter.
func ConstantName(label string) (string, bool) {
	name := nonAlnumRun.ReplaceAllString(strings.ToUpper(label), "_")
	name = strings.Trim(name, "_")
	if !constantPattern.MatchString(name) {
		return "", false
	}
	return name, true
}
