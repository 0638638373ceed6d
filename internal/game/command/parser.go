package command

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cory-johannsen/robosim/internal/game/world"
)

// EntityLookup resolves targeting-prefix names against the live
// entity set.
type EntityLookup interface {
	// Contains reports whether an entity with the exact
	// (case-sensitive) name is registered.
	Contains(name string) bool
}

// Parser turns raw text lines into Commands.
type Parser struct {
	vocab    *Vocabulary
	entities EntityLookup
}

// NewParser creates a Parser over the given vocabulary and entity set.
//
// Precondition: vocab and entities must be non-nil.
func NewParser(vocab *Vocabulary, entities EntityLookup) *Parser {
	return &Parser{vocab: vocab, entities: entities}
}

// Parse parses one input line into a Command.
//
// The first whitespace-delimited token may be a "<name>:" targeting
// prefix. If the name (colon stripped, case-sensitive) matches a
// registered entity, the remaining text is parsed as the command with
// that entity bound as the explicit target. If it does not match, the
// colon-bearing token falls through as the verb and fails vocabulary
// validation.
//
// Precondition: line should be trimmed of leading/trailing whitespace.
// Postcondition: Returns a Command, or a *ParseError /
// *InvalidDirectionError describing the first problem found.
func (p *Parser) Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, &ParseError{Line: line, Reason: "empty command"}
	}

	first, rest := splitFirst(line)

	target := ""
	if name, ok := strings.CutSuffix(first, ":"); ok && p.entities.Contains(name) {
		target = name
		if rest == "" {
			return Command{}, &ParseError{Line: line, Reason: fmt.Sprintf("no command follows target %q", name)}
		}
		first, rest = splitFirst(rest)
	}

	verb := strings.ToLower(first)
	if _, ok := p.vocab.Resolve(verb); !ok {
		return Command{}, &ParseError{Line: line, Reason: fmt.Sprintf("unknown command %q", first)}
	}

	cmd := Command{Verb: verb, Target: target, Args: splitArgs(rest)}

	switch verb {
	case VerbCreate:
		if len(cmd.Args) != 1 {
			return Command{}, &ParseError{Line: line, Reason: "create takes exactly one name"}
		}
	case VerbPlace:
		place, err := parsePlaceArgs(line, cmd.Args)
		if err != nil {
			return Command{}, err
		}
		cmd.Place = place
	case VerbTable:
		bounds, err := parseTableArgs(line, cmd.Args)
		if err != nil {
			return Command{}, err
		}
		cmd.Bounds = bounds
	}

	return cmd, nil
}

func parsePlaceArgs(line string, args []string) (*PlaceArgs, error) {
	if len(args) != 3 {
		return nil, &ParseError{Line: line, Reason: "place takes <x> <y> <direction>"}
	}
	x, err := parseInt(line, args[0])
	if err != nil {
		return nil, err
	}
	y, err := parseInt(line, args[1])
	if err != nil {
		return nil, err
	}
	facing, ok := world.ParseDirection(args[2])
	if !ok {
		return nil, &InvalidDirectionError{Token: args[2], Verb: VerbPlace}
	}
	return &PlaceArgs{X: x, Y: y, Facing: facing}, nil
}

func parseTableArgs(line string, args []string) (*world.Bounds, error) {
	if len(args) != 4 {
		return nil, &ParseError{Line: line, Reason: "table takes <xmin> <ymin> <xmax> <ymax>"}
	}
	values := make([]int, 4)
	for i, arg := range args {
		n, err := parseInt(line, arg)
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	return &world.Bounds{XMin: values[0], YMin: values[1], XMax: values[2], YMax: values[3]}, nil
}

// parseInt parses a numeric token. Unparseable tokens are a hard
// error, never a silent zero.
func parseInt(line, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &ParseError{Line: line, Reason: fmt.Sprintf("expected an integer, got %q", token)}
	}
	return n, nil
}

// splitFirst splits off the first whitespace-delimited token.
func splitFirst(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], strings.TrimSpace(s[idx+1:])
}

// splitArgs tokenizes argument text on whitespace-and-comma
// boundaries, skipping empty tokens.
func splitArgs(s string) []string {
	args := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(args) == 0 {
		return nil
	}
	return args
}
