// Package constraint provides the multi-party approval engine that
// every state-changing placement must pass before it is committed.
package constraint

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/robosim/internal/game/entity"
)

// Engine polls registered voters about proposed placements. Approval
// requires unanimity: the first rejection decides.
type Engine struct {
	logger *zap.Logger
	voters []entity.Voter
}

// NewEngine creates an Engine with no voters.
//
// Precondition: logger must be non-nil (use zap.NewNop() to discard).
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger}
}

// Register adds a voter. Voters are polled in registration order and
// never removed.
func (e *Engine) Register(v entity.Voter) {
	e.voters = append(e.voters, v)
	e.logger.Debug("constraint voter registered",
		zap.String("name", v.Name()),
		zap.Int("voters", len(e.voters)),
	)
}

// Acceptable reports whether the candidate may assume the proposed
// pose. A pose with an invalid direction is rejected outright;
// otherwise every registered voter is polled in registration order,
// short-circuiting on the first rejection.
//
// Precondition: candidate must be non-nil.
// Postcondition: Returns true only if every voter approves. No state
// is mutated either way.
func (e *Engine) Acceptable(candidate entity.Entity, pose entity.Pose) bool {
	if !pose.Facing.IsValid() {
		e.logger.Debug("proposal rejected: invalid direction",
			zap.String("candidate", candidate.Name()),
		)
		return false
	}
	for _, v := range e.voters {
		if !v.Approve(candidate, pose) {
			e.logger.Debug("proposal rejected",
				zap.String("candidate", candidate.Name()),
				zap.String("rejected_by", v.Name()),
				zap.Int("x", pose.X),
				zap.Int("y", pose.Y),
				zap.Stringer("facing", pose.Facing),
				zap.Bool("on_table", pose.OnTable),
			)
			return false
		}
	}
	return true
}

// VoterCount returns the number of registered voters.
func (e *Engine) VoterCount() int {
	return len(e.voters)
}
