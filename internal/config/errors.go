package config

import (
	"fmt"
	"slices"
	"strings"
)

// Error reports an invalid configuration key.
type Error struct {
	Name   string // Key name, "facts.<fact>" for fact overrides.
	Value  any    // Rejected value, nil when the key itself is the problem.
	Reason string
}

// Error implements the error interface.
func (e Error) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("cannot set '%s': %s", e.Name, e.Reason)
	}

	return fmt.Sprintf("cannot set '%s' to '%v': %s", e.Name, e.Value, e.Reason)
}

// ErrorList collects every invalid key found while validating a configuration.
// Its message is the first error followed by the count of the others.
type ErrorList struct {
	errors []Error
}

// Error implements the error interface.
func (l *ErrorList) Error() string {
	switch len(l.errors) {
	case 0:
		return "no errors"
	case 1:
		return l.errors[0].Error()
	}

	return fmt.Sprintf("%s (and %d more errors)", l.errors[0].Error(), len(l.errors)-1)
}

// Unwrap returns the individual errors so errors.As can reach them.
func (l *ErrorList) Unwrap() []error {
	errs := make([]error, 0, len(l.errors))
	for _, e := range l.errors {
		errs = append(errs, e)
	}

	return errs
}

// Len returns the number of errors in the list.
func (l *ErrorList) Len() int {
	return len(l.errors)
}

// sort orders the errors by key name.
func (l *ErrorList) sort() {
	slices.SortStableFunc(l.errors, func(a Error, b Error) int {
		return strings.Compare(a.Name, b.Name)
	})
}

func (l *ErrorList) add(name string, value any, reason string) {
	l.errors = append(l.errors, Error{Name: name, Value: value, Reason: reason})
}
