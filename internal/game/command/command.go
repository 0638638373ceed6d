// Package command provides the command value, the verb vocabulary, and
// the line parser for the simulator's input grammar.
package command

import "github.com/cory-johannsen/robosim/internal/game/world"

// Canonical verb names.
const (
	VerbCreate = "create"
	VerbTable  = "table"
	VerbPlace  = "place"
	VerbMove   = "move"
	VerbLeft   = "left"
	VerbRight  = "right"
	VerbReport = "report"
	VerbRemove = "remove"
	VerbHelp   = "help"
	VerbQuit   = "quit"
)

// PlaceArgs holds the parsed fields of a "place" command.
type PlaceArgs struct {
	X      int
	Y      int
	Facing world.Direction
}

// Command is one parsed instruction. It is created by the Parser for a
// single input line, handed to the dispatcher once, and discarded.
type Command struct {
	// Verb is the lowercased command verb, a member of the vocabulary.
	Verb string
	// Target is the entity name resolved from a "<name>:" prefix.
	// Empty means the command is broadcast to every listener.
	Target string
	// Args are the raw tokens following the verb.
	Args []string
	// Place holds the parsed fields when Verb is "place".
	Place *PlaceArgs
	// Bounds holds the parsed fields when Verb is "table".
	Bounds *world.Bounds
}
