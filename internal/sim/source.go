// Package sim provides the owning world context, the command
// dispatcher, and the run loop that drives the simulation from a line
// source.
package sim

import (
	"bufio"
	"io"
	"strings"
)

// Source yields trimmed, non-empty command lines from a reader until
// it is exhausted.
type Source struct {
	scanner *bufio.Scanner
}

// NewSource creates a Source over r.
//
// Precondition: r must be non-nil.
func NewSource(r io.Reader) *Source {
	return &Source{scanner: bufio.NewScanner(r)}
}

// Next returns the next non-blank line with leading and trailing
// whitespace removed.
//
// Postcondition: Returns (line, true) with a non-empty line, or
// ("", false) when the source is exhausted.
func (s *Source) Next() (string, bool) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line != "" {
			return line, true
		}
	}
	return "", false
}

// Err returns the first error encountered while reading, if any.
func (s *Source) Err() error {
	return s.scanner.Err()
}
