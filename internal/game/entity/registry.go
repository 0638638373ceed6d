package entity

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry tracks live addressable entities by name. Iteration order
// is registration order. Entities are never unregistered during a run.
type Registry struct {
	logger  *zap.Logger
	byName  map[string]Entity
	ids     map[string]string // name → instance id, for log correlation
	ordered []Entity
}

// NewRegistry creates an empty Registry.
//
// Precondition: logger must be non-nil (use zap.NewNop() to discard).
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger: logger,
		byName: make(map[string]Entity),
		ids:    make(map[string]string),
	}
}

// Add registers an entity under its name.
//
// Precondition: e must have a non-empty name.
// Postcondition: The entity is registered, or an error is returned if
// the name is already taken.
func (r *Registry) Add(e Entity) error {
	name := e.Name()
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("entity %q already exists", name)
	}
	r.byName[name] = e
	r.ids[name] = uuid.New().String()
	r.ordered = append(r.ordered, e)
	r.logger.Debug("entity registered",
		zap.String("name", name),
		zap.String("instance_id", r.ids[name]),
		zap.Int("count", len(r.ordered)),
	)
	return nil
}

// InstanceID returns the unique id assigned to the named entity at
// registration.
//
// Postcondition: Returns (id, true) if the entity is registered, or
// ("", false) otherwise.
func (r *Registry) InstanceID(name string) (string, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Lookup returns the entity with the exact (case-sensitive) name.
//
// Postcondition: Returns (entity, true) if found, or (nil, false).
func (r *Registry) Lookup(name string) (Entity, bool) {
	e, ok := r.byName[name]
	return e, ok
}

// Contains reports whether an entity with the exact name is registered.
func (r *Registry) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// All returns every registered entity in registration order.
func (r *Registry) All() []Entity {
	result := make([]Entity, len(r.ordered))
	copy(result, r.ordered)
	return result
}

// Targets returns every registered entity that responds to commands,
// in registration order.
func (r *Registry) Targets() []Target {
	result := make([]Target, 0, len(r.ordered))
	for _, e := range r.ordered {
		if t, ok := e.(Target); ok {
			result = append(result, t)
		}
	}
	return result
}

// Count returns the number of registered entities.
func (r *Registry) Count() int {
	return len(r.ordered)
}
