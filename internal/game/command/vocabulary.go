package command

import "fmt"

// Definition describes one verb in the vocabulary.
type Definition struct {
	// Name is the canonical verb.
	Name string
	// Usage is the argument synopsis shown by help.
	Usage string
	// Help is the short help text shown by help.
	Help string
}

// Vocabulary maps verbs to their definitions. The verb set is fixed at
// construction; parsing validates every line against it.
type Vocabulary struct {
	defs  map[string]*Definition
	order []string
}

// NewVocabulary creates a Vocabulary from the given definitions.
//
// Precondition: No two definitions may share a name.
// Postcondition: Returns a Vocabulary or an error on a name collision.
func NewVocabulary(defs []Definition) (*Vocabulary, error) {
	v := &Vocabulary{
		defs:  make(map[string]*Definition, len(defs)),
		order: make([]string, 0, len(defs)),
	}
	for i := range defs {
		def := &defs[i]
		if _, exists := v.defs[def.Name]; exists {
			return nil, fmt.Errorf("duplicate verb: %q", def.Name)
		}
		v.defs[def.Name] = def
		v.order = append(v.order, def.Name)
	}
	return v, nil
}

// DefaultVocabulary creates a Vocabulary with all built-in verbs.
//
// Postcondition: Returns a Vocabulary with the full command grammar registered.
func DefaultVocabulary() *Vocabulary {
	v, err := NewVocabulary(builtinDefinitions())
	if err != nil {
		panic(fmt.Sprintf("building default vocabulary: %v", err))
	}
	return v
}

func builtinDefinitions() []Definition {
	return []Definition{
		{Name: VerbCreate, Usage: "create <name>", Help: "Create a new robot"},
		{Name: VerbTable, Usage: "table <xmin> <ymin> <xmax> <ymax>", Help: "Redefine the table surface"},
		{Name: VerbPlace, Usage: "[<name>:] place <x> <y> <direction>", Help: "Put a robot on the table"},
		{Name: VerbMove, Usage: "[<name>:] move", Help: "Move one cell in the facing direction"},
		{Name: VerbLeft, Usage: "[<name>:] left", Help: "Rotate 90 degrees counter-clockwise"},
		{Name: VerbRight, Usage: "[<name>:] right", Help: "Rotate 90 degrees clockwise"},
		{Name: VerbReport, Usage: "[<name>:] report", Help: "Report position and facing"},
		{Name: VerbRemove, Usage: "[<name>:] remove", Help: "Take a robot off the table"},
		{Name: VerbHelp, Usage: "help", Help: "Show available commands"},
		{Name: VerbQuit, Usage: "quit", Help: "End the simulation"},
	}
}

// Resolve looks up a verb definition.
//
// Postcondition: Returns (definition, true) if found, or (nil, false).
func (v *Vocabulary) Resolve(verb string) (*Definition, bool) {
	def, ok := v.defs[verb]
	return def, ok
}

// Definitions returns all verb definitions in registration order.
func (v *Vocabulary) Definitions() []*Definition {
	result := make([]*Definition, 0, len(v.order))
	for _, name := range v.order {
		result = append(result, v.defs[name])
	}
	return result
}
