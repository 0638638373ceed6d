package robot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/constraint"
	"github.com/cory-johannsen/robosim/internal/game/entity"
	"github.com/cory-johannsen/robosim/internal/game/table"
	"github.com/cory-johannsen/robosim/internal/game/world"
)

// newWorld builds an engine with one table voter and returns both.
func newWorld(t *testing.T, bounds world.Bounds) (*constraint.Engine, *table.Table) {
	t.Helper()
	engine := constraint.NewEngine(zap.NewNop())
	tbl := table.New(bounds)
	engine.Register(tbl)
	return engine, tbl
}

func bounds(xmax, ymax int) world.Bounds {
	return world.Bounds{XMin: 0, YMin: 0, XMax: xmax, YMax: ymax}
}

func TestRobot_StartsUnplaced(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	assert.False(t, r.OnTable())
	assert.Equal(t, "not on table", r.Report())
}

func TestRobot_PlaceAndReport(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(2, 3, world.East))
	assert.True(t, r.OnTable())
	assert.Equal(t, "2,3,east", r.Report())
}

func TestRobot_PlaceOutsideBoundsRejected(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	assert.False(t, r.Place(5, 0, world.North))
	assert.False(t, r.OnTable(), "rejected place must leave the robot unplaced")
}

func TestRobot_PlaceIsValidFromPlacedState(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(0, 0, world.North))
	require.True(t, r.Place(4, 4, world.South))
	assert.Equal(t, "4,4,south", r.Report())
}

func TestRobot_MoveUnplacedIsNoOp(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	msg := r.HandleCommand(command.Command{Verb: command.VerbMove})
	assert.Equal(t, "not on table", msg)
	assert.False(t, r.OnTable())
}

func TestRobot_RoundTrip(t *testing.T) {
	// place 0 0 north; move; left; report on a 10x10 table.
	engine, _ := newWorld(t, bounds(10, 10))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(0, 0, world.North))
	require.True(t, r.Move())
	r.Left()
	assert.Equal(t, "0,1,west", r.Report())
}

func TestRobot_MoveOffTableEdgeRejected(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(4, 4, world.North))
	assert.False(t, r.Move(), "moving north off the edge must be rejected")
	assert.Equal(t, "4,4,north", r.Report())
}

func TestRobot_MoveOffsets(t *testing.T) {
	cases := []struct {
		facing world.Direction
		want   string
	}{
		{world.North, "2,3,north"},
		{world.South, "2,1,south"},
		{world.East, "3,2,east"},
		{world.West, "1,2,west"},
	}
	for _, tc := range cases {
		engine, _ := newWorld(t, bounds(5, 5))
		r := New("robbie", engine)
		engine.Register(r)
		require.True(t, r.Place(2, 2, tc.facing))
		require.True(t, r.Move(), "facing %s", tc.facing)
		assert.Equal(t, tc.want, r.Report())
	}
}

func TestRobot_CollisionSameCellOnly(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	robbie := New("robbie", engine)
	bertie := New("bertie", engine)
	engine.Register(robbie)
	engine.Register(bertie)

	require.True(t, robbie.Place(1, 1, world.East))
	require.True(t, bertie.Place(2, 1, world.West))

	// robbie faces bertie's cell: rejected, state unchanged.
	assert.False(t, robbie.Move())
	assert.Equal(t, "1,1,east", robbie.Report())

	// Any other cell is fine.
	robbie.Left()
	require.True(t, robbie.Move())
	assert.Equal(t, "1,2,north", robbie.Report())
}

func TestRobot_PlaceOntoOccupiedCellRejected(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	robbie := New("robbie", engine)
	bertie := New("bertie", engine)
	engine.Register(robbie)
	engine.Register(bertie)

	require.True(t, robbie.Place(2, 2, world.North))
	assert.False(t, bertie.Place(2, 2, world.South))
	assert.False(t, bertie.OnTable())
}

func TestRobot_RemovedRobotDoesNotBlock(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	robbie := New("robbie", engine)
	bertie := New("bertie", engine)
	engine.Register(robbie)
	engine.Register(bertie)

	require.True(t, robbie.Place(2, 2, world.North))
	robbie.Remove()
	assert.True(t, bertie.Place(2, 2, world.South))
}

func TestRobot_RemoveResetsFacing(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(1, 1, world.North))
	r.Remove()
	assert.False(t, r.OnTable())
	_, _, facing := r.Position()
	assert.Equal(t, world.Invalid, facing)
	assert.Equal(t, "not on table", r.Report())
}

func TestRobot_RotateUnplacedReportsNotOnTable(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	assert.Equal(t, "not on table", r.HandleCommand(command.Command{Verb: command.VerbLeft}))
	assert.Equal(t, "not on table", r.HandleCommand(command.Command{Verb: command.VerbRight}))
}

func TestRobot_HandlePlaceRejectionMessage(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	msg := r.HandleCommand(command.Command{
		Verb:  command.VerbPlace,
		Place: &command.PlaceArgs{X: 9, Y: 9, Facing: world.North},
	})
	assert.Equal(t, "place 9,9,north ignored", msg)
}

func TestRobot_HandleMoveRejectionMessage(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	r := New("robbie", engine)
	engine.Register(r)

	require.True(t, r.Place(0, 0, world.South))
	msg := r.HandleCommand(command.Command{Verb: command.VerbMove})
	assert.Equal(t, "move ignored", msg)
}

func TestRobot_ApproveSelfAndOffTable(t *testing.T) {
	engine, _ := newWorld(t, bounds(5, 5))
	robbie := New("robbie", engine)
	bertie := New("bertie", engine)

	require.True(t, robbie.Place(1, 1, world.North))

	// Same cell, but the proposal is about robbie itself.
	assert.True(t, robbie.Approve(robbie, poseAt(1, 1)))
	// Off-table proposal passes regardless of cell.
	offPose := poseAt(1, 1)
	offPose.OnTable = false
	assert.True(t, robbie.Approve(bertie, offPose))
	// Occupied cell for another robot is rejected.
	assert.False(t, robbie.Approve(bertie, poseAt(1, 1)))
	// An unplaced voter approves everything.
	assert.True(t, bertie.Approve(robbie, poseAt(1, 1)))
}

func poseAt(x, y int) entity.Pose {
	return entity.Pose{X: x, Y: y, Facing: world.North, OnTable: true}
}

func TestPropertyFourRotationsPreserveState(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		engine := constraint.NewEngine(zap.NewNop())
		engine.Register(table.New(bounds(5, 5)))
		r := New("robbie", engine)
		engine.Register(r)

		x := rapid.IntRange(0, 4).Draw(t, "x")
		y := rapid.IntRange(0, 4).Draw(t, "y")
		facing := rapid.SampledFrom(world.Directions).Draw(t, "facing")
		if !r.Place(x, y, facing) {
			t.Fatalf("place %d,%d,%s should succeed on an empty table", x, y, facing)
		}

		before := r.Report()
		turns := rapid.IntRange(1, 4).Draw(t, "turns")
		rotate := rapid.Bool().Draw(t, "use_left")
		for i := 0; i < 4; i++ {
			for j := 0; j < turns; j++ {
				if rotate {
					r.Left()
				} else {
					r.Right()
				}
			}
		}
		if got := r.Report(); got != before {
			t.Fatalf("4x%d rotations changed state: %s -> %s", turns, before, got)
		}
	})
}
