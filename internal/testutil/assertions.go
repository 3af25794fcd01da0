package testutil

import (
	"testing"

	"github.com/leengari/constrec/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertIDs checks the ids of rows, in order
func AssertIDs(t *testing.T, rows []data.Row, expected []int, context string) {
	t.Helper()
	if len(rows) != len(expected) {
		t.Errorf("%s: expected ids %v, got %d rows", context, expected, len(rows))
		return
	}
	for i, row := range rows {
		if row.ID() != expected[i] {
			t.Errorf("%s: row %d: expected id %d, got %d", context, i, expected[i], row.ID())
		}
	}
}

// AssertColumnValues checks one column across rows, in order
func AssertColumnValues(t *testing.T, rows []data.Row, column string, expected []interface{}, context string) {
	t.Helper()
	if len(rows) != len(expected) {
		t.Errorf("%s: expected %d rows, got %d", context, len(expected), len(rows))
		return
	}
	for i, row := range rows {
		if got := row.Value(column); got != expected[i] {
			t.Errorf("%s: row %d: expected %s=%v, got %v", context, i, column, expected[i], got)
		}
	}
}
