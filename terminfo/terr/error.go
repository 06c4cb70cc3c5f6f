// Package terr holds the error types shared by the terminfo decoder packages.
package terr

import (
	"fmt"
	"strings"
)

type (
	// IOError is returned when a resolved terminfo file cannot be read.
	IOError struct {
		Path string
		Err  error
	}
	// NotFoundError is returned when no terminfo file matches a terminal name,
	// including the single retry against "xterm".
	NotFoundError struct {
		Term     string
		Searched []string
	}
	// FormatError is returned when the binary data cannot be decoded safely.
	FormatError struct {
		Section string
		Reason  string
	}
)

func (r *IOError) Error() string {
	return fmt.Sprintf("terminfo: cannot read %q: %v", r.Path, r.Err)
}

func (r *IOError) Unwrap() error {
	return r.Err
}

func (r *IOError) Cause() error {
	return r.Err
}

func (r *NotFoundError) Error() string {
	return fmt.Sprintf(
		"terminfo: no entry for %q in [%s]",
		r.Term, strings.Join(r.Searched, ", "),
	)
}

func (r *FormatError) Error() string {
	if r.Section == "" {
		return "terminfo: " + r.Reason
	}
	return fmt.Sprintf("terminfo: %s section: %s", r.Section, r.Reason)
}

// Truncated creates the FormatError for a section whose declared range passes
// the end of the data.
func Truncated(section string) *FormatError {
	return &FormatError{
		Section: section,
		Reason:  "truncated data",
	}
}
