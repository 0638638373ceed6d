// Package table provides the table entity: the bounded surface robots
// are placed on. It votes on placements and responds to the "table"
// and "report" verbs.
package table

import (
	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/entity"
	"github.com/cory-johannsen/robosim/internal/game/world"
)

// EntityName is the table's fixed name in the entity registry.
const EntityName = "table"

// Table is the playing surface. At most one exists per world; its
// bounds can be redefined at runtime.
type Table struct {
	bounds world.Bounds
}

// New creates a Table with the given bounds.
//
// Precondition: bounds must satisfy bounds.Validate().
func New(bounds world.Bounds) *Table {
	return &Table{bounds: bounds}
}

// Name returns the table's registry name.
func (t *Table) Name() string { return EntityName }

// Bounds returns the current surface bounds.
func (t *Table) Bounds() world.Bounds { return t.bounds }

// Resize replaces the table bounds unconditionally. Robots already
// placed are never moved or re-validated; a robot stranded outside the
// new bounds simply finds its next move judged against them.
func (t *Table) Resize(bounds world.Bounds) {
	t.bounds = bounds
}

// HandleCommand applies one command to the table.
//
// Postcondition: Returns the user-facing message, or "" when the verb
// does not concern the table.
func (t *Table) HandleCommand(cmd command.Command) string {
	switch cmd.Verb {
	case command.VerbTable:
		t.Resize(*cmd.Bounds)
		return ""
	case command.VerbReport:
		return t.bounds.String()
	default:
		return ""
	}
}

// Approve votes on a proposed placement. The table always approves
// proposals about itself and candidates that would be off the table;
// otherwise the proposed cell must lie within the current bounds.
func (t *Table) Approve(candidate entity.Entity, pose entity.Pose) bool {
	if candidate.Name() == t.Name() {
		return true
	}
	if !pose.OnTable {
		return true
	}
	return t.bounds.Contains(pose.X, pose.Y)
}
