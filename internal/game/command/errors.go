package command

import "fmt"

// ParseError reports a line that could not be parsed: an unknown verb
// or malformed arguments. It is recovered per line; the run loop
// reports it and continues.
type ParseError struct {
	// Line is the offending input line.
	Line string
	// Reason describes what was wrong with it.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %s", e.Line, e.Reason)
}

// InvalidDirectionError reports a direction token that is not one of
// the recognized compass forms.
type InvalidDirectionError struct {
	// Token is the unrecognized direction token.
	Token string
	// Verb is the verb whose arguments required a direction.
	Verb string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("%s: invalid direction %q", e.Verb, e.Token)
}
