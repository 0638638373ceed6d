package sim

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/robosim/internal/game/command"
	"github.com/cory-johannsen/robosim/internal/game/constraint"
	"github.com/cory-johannsen/robosim/internal/game/entity"
	"github.com/cory-johannsen/robosim/internal/game/robot"
	"github.com/cory-johannsen/robosim/internal/game/table"
	"github.com/cory-johannsen/robosim/internal/game/world"
)

// World owns all long-lived simulation state: the entity registry, the
// constraint engine, the table, and the parser. It is built once at
// startup and threaded explicitly through the run loop; there is no
// global state, so each test can construct a fresh World.
//
// The simulation is strictly single-threaded: one command is fully
// parsed, constraint-checked, and applied before the next line is
// read. World methods are not safe for concurrent use.
type World struct {
	logger   *zap.Logger
	out      io.Writer
	errOut   io.Writer
	entities *entity.Registry
	engine   *constraint.Engine
	table    *table.Table
	vocab    *command.Vocabulary
	parser   *command.Parser
}

// NewWorld builds a World from a scenario: one table and the initial
// robot roster, all registered with the entity registry and the
// constraint engine.
//
// Precondition: logger, out, and errOut must be non-nil.
// Postcondition: Returns a ready World, or an error if the scenario is
// invalid.
func NewWorld(scenario *world.Scenario, logger *zap.Logger, out, errOut io.Writer) (*World, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	w := &World{
		logger:   logger,
		out:      out,
		errOut:   errOut,
		entities: entity.NewRegistry(logger),
		engine:   constraint.NewEngine(logger),
		vocab:    command.DefaultVocabulary(),
	}
	w.parser = command.NewParser(w.vocab, w.entities)

	w.table = table.New(scenario.Table)
	if err := w.entities.Add(w.table); err != nil {
		return nil, fmt.Errorf("registering table: %w", err)
	}
	w.engine.Register(w.table)

	for _, name := range scenario.Robots {
		if err := w.CreateRobot(name); err != nil {
			return nil, err
		}
	}

	logger.Info("world initialized",
		zap.Stringer("table", scenario.Table),
		zap.Strings("robots", scenario.Robots),
	)
	return w, nil
}

// CreateRobot instantiates a new unplaced robot and registers it with
// the entity registry and the constraint engine.
//
// Postcondition: The robot participates in lookup, broadcast delivery,
// and constraint voting, or an error is returned and nothing is
// registered.
func (w *World) CreateRobot(name string) error {
	if err := world.ValidateEntityName(name); err != nil {
		return err
	}
	r := robot.New(name, w.engine)
	if err := w.entities.Add(r); err != nil {
		return err
	}
	w.engine.Register(r)
	return nil
}

// Table returns the table entity.
func (w *World) Table() *table.Table { return w.table }

// Entities returns the entity registry.
func (w *World) Entities() *entity.Registry { return w.entities }
