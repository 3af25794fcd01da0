package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is checks. The typed errors below match them.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnknownAttribute   = errors.New("unknown attribute")
	ErrConstantNotFound   = errors.New("constant not found")
	ErrUndefinedReference = errors.New("undefined reference")
)

// InvalidArgumentError is returned for unsupported query modes, selector
// types and malformed table definitions.
type InvalidArgumentError struct {
	Table    string      // table name (may be empty for anonymous tables)
	Argument interface{} // offending value
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("invalid argument for %s", tableLabel(e.Table)))
	if e.Argument != nil {
		parts = append(parts, fmt.Sprintf("value=%v (%T)", e.Argument, e.Argument))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return strings.Join(parts, " - ")
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// UnknownAttributeError means a finder or accessor was invoked for a column
// the table never declared. It is a caller mistake, not a lookup miss.
type UnknownAttributeError struct {
	Table     string
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q on %s", e.Attribute, tableLabel(e.Table))
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// ConstantNotFoundError is returned by direct value lookups that miss.
type ConstantNotFoundError struct {
	Table string
	Key   interface{}
}

func (e *ConstantNotFoundError) Error() string {
	return fmt.Sprintf("constant %v not found in %s", e.Key, tableLabel(e.Table))
}

func (e *ConstantNotFoundError) Is(target error) bool {
	return target == ErrConstantNotFound
}

// UndefinedReferenceError is returned when a named constant was never generated.
type UndefinedReferenceError struct {
	Table string
	Name  string
}

func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("undefined reference %s::%s", tableLabel(e.Table), e.Name)
}

func (e *UndefinedReferenceError) Is(target error) bool {
	return target == ErrUndefinedReference
}

func tableLabel(name string) string {
	if name == "" {
		return "<anonymous table>"
	}
	return name
}
