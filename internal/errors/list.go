package errors

import (
	"errors"
	"strings"
)

// List is an ordered collection of errors reported by a single query.
type List []error

// Flatten expands err into a List. Joined errors (errors.Join or any error
// with Unwrap() []error) contribute one entry per wrapped error; nil yields nil.
func Flatten(err error) List {
	if err == nil {
		return nil
	}
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var out List
		for _, e := range multi.Unwrap() {
			out = append(out, Flatten(e)...)
		}
		return out
	}
	return List{err}
}

// Err returns the list as a single error, or nil when empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return errors.Join(l...)
}

// FormatList renders every entry on one line, in order, joined by newlines.
// Structured errors are rendered via Summary so their multi-line layout
// doesn't leak into a single-line banner. Empty lists format to "".
func FormatList(l List) string {
	lines := make([]string, 0, len(l))
	for _, err := range l {
		if err == nil {
			continue
		}
		var upErr *Error
		if errors.As(err, &upErr) {
			lines = append(lines, upErr.Summary())
			continue
		}
		lines = append(lines, firstLine(err.Error()))
	}
	return strings.Join(lines, "\n")
}
