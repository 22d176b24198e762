package tomlq

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyQuery    = errors.New("empty query")
	ErrNonEmptyTable = errors.New("refusing to delete non-empty table")
	ErrNonEmptyArray = errors.New("refusing to delete non-empty array")
)

// TypeError reports a resolved node whose shape does not match what a
// typed accessor asked for.
type TypeError struct {
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Actual)
}

// NotAvailableError reports a query whose target does not exist.
type NotAvailableError struct {
	Query string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("query %q: no such element", e.Query)
}
