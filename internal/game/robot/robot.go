// Package robot provides the robot entity: a state machine over
// Unplaced and Placed(x, y, facing) that consults the constraint
// engine before every placement or move.
package robot

import (
	"fmt"

	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/constraint"
	"github.com/cory-johannsen/robosim/internal/game/entity"
	"github.com/cory-johannsen/robosim/internal/game/world"
)

// notOnTable is the report a robot gives when it is not placed.
const notOnTable = "not on table"

// Robot is a movable entity on the table.
//
// Invariant: X and Y are only meaningful while onTable is true; when
// the robot is removed, Facing resets to Invalid.
type Robot struct {
	name    string
	engine  *constraint.Engine
	x, y    int
	facing  world.Direction
	onTable bool
}

// New creates an unplaced Robot.
//
// Precondition: name must be non-empty and unique; engine must be non-nil.
func New(name string, engine *constraint.Engine) *Robot {
	return &Robot{name: name, engine: engine, facing: world.Invalid}
}

// Name returns the robot's unique name.
func (r *Robot) Name() string { return r.name }

// OnTable reports whether the robot is currently placed.
func (r *Robot) OnTable() bool { return r.onTable }

// Position returns the current coordinates and facing.
//
// Precondition: only meaningful while OnTable() is true.
func (r *Robot) Position() (x, y int, facing world.Direction) {
	return r.x, r.y, r.facing
}

// Place proposes putting the robot at (x, y) facing the given
// direction. Valid from any state.
//
// Postcondition: Returns true and commits the new state if every
// constraint voter approves; otherwise returns false and the robot is
// unchanged.
func (r *Robot) Place(x, y int, facing world.Direction) bool {
	if !r.engine.Acceptable(r, entity.Pose{X: x, Y: y, Facing: facing, OnTable: true}) {
		return false
	}
	r.x, r.y, r.facing = x, y, facing
	r.onTable = true
	return true
}

// Move proposes a one-cell move in the current facing direction.
//
// Precondition: the robot must be on the table.
// Postcondition: Returns true and commits the new position if every
// constraint voter approves; otherwise returns false and the robot
// stays put.
func (r *Robot) Move() bool {
	dx, dy := r.facing.Offset()
	pose := entity.Pose{X: r.x + dx, Y: r.y + dy, Facing: r.facing, OnTable: true}
	if !r.engine.Acceptable(r, pose) {
		return false
	}
	r.x, r.y = pose.X, pose.Y
	return true
}

// Left rotates the facing 90 degrees counter-clockwise. Rotation never
// changes position and is not constraint-checked.
func (r *Robot) Left() { r.facing = r.facing.Left() }

// Right rotates the facing 90 degrees clockwise.
func (r *Robot) Right() { r.facing = r.facing.Right() }

// Remove takes the robot off the table. Unconditional from any state.
func (r *Robot) Remove() {
	r.onTable = false
	r.facing = world.Invalid
}

// Report returns the robot's state without side effects.
func (r *Robot) Report() string {
	if !r.onTable {
		return notOnTable
	}
	return fmt.Sprintf("%d,%d,%s", r.x, r.y, r.facing)
}

// HandleCommand applies one command to the robot.
//
// Postcondition: Returns the user-facing message, or "" for a silent
// success or a verb that does not concern robots. Rejections leave the
// robot unchanged and are reported, never raised as errors.
func (r *Robot) HandleCommand(cmd command.Command) string {
	switch cmd.Verb {
	case command.VerbPlace:
		p := cmd.Place
		if !r.Place(p.X, p.Y, p.Facing) {
			return fmt.Sprintf("place %d,%d,%s ignored", p.X, p.Y, p.Facing)
		}
		return ""
	case command.VerbMove:
		if !r.onTable {
			return notOnTable
		}
		if !r.Move() {
			return "move ignored"
		}
		return ""
	case command.VerbLeft:
		if !r.onTable {
			return notOnTable
		}
		r.Left()
		return ""
	case command.VerbRight:
		if !r.onTable {
			return notOnTable
		}
		r.Right()
		return ""
	case command.VerbReport:
		return r.Report()
	case command.VerbRemove:
		r.Remove()
		return ""
	default:
		return ""
	}
}

// Approve votes on another entity's proposed placement. A robot
// approves proposals about itself, anything while it is off the table,
// and any proposal that would leave the candidate off the table. It
// rejects only a proposal for the exact cell it occupies; collision
// detection is a same-cell check, not a path check.
func (r *Robot) Approve(candidate entity.Entity, pose entity.Pose) bool {
	if candidate.Name() == r.name {
		return true
	}
	if !r.onTable || !pose.OnTable {
		return true
	}
	return !(pose.X == r.x && pose.Y == r.y)
}
