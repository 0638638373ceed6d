// Package entity defines the capability interfaces shared by every
// addressable simulation object and the registry that tracks them.
package entity

import (
	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/world"
)

// Entity is any addressable simulation object.
type Entity interface {
	// Name is the unique, immutable entity name.
	Name() string
}

// Pose is a proposed entity state submitted for constraint approval.
type Pose struct {
	// X, Y are the proposed cell coordinates. Only meaningful when
	// OnTable is true.
	X int
	Y int
	// Facing is the proposed direction.
	Facing world.Direction
	// OnTable reports whether the candidate would be on the table.
	OnTable bool
}

// Target is an entity that responds to dispatched commands.
type Target interface {
	Entity
	// HandleCommand applies one command and returns the user-facing
	// message, or "" when there is nothing to say.
	HandleCommand(cmd command.Command) string
}

// Voter is an entity that approves or rejects proposed placements.
type Voter interface {
	Entity
	// Approve answers, strictly from this entity's own perspective,
	// whether the candidate may assume the proposed pose.
	Approve(candidate Entity, pose Pose) bool
}
