package migrate

import (
	"fmt"
	"slices"

	"github.com/pocketbase/pocketbase/core"
)

// StepFunc is the signature shared by every migration transformation. It
// matches the collection migration functions, so step bodies work against
// whichever app instance the engine hands them.
type StepFunc func(app core.App) error

// Step is a single schema migration, identified by the version it upgrades
// the data model to. Up introduces that version's changes. Down restores
// the data model to that version's shape when migrating back down through
// it, and may be nil when no reverse transformation exists.
type Step struct {
	Version Version
	Up      StepFunc
	Down    StepFunc
}

// Registry holds the migration steps known to the engine, keyed by version.
type Registry struct {
	steps map[string]*Step
}

func NewRegistry() *Registry {
	return &Registry{steps: map[string]*Step{}}
}

// Add registers a step. It panics on a malformed or duplicate version since
// steps register from init functions, where no caller can recover.
func (r *Registry) Add(version string, up, down StepFunc) {
	v, err := ParseVersion(version)
	if err != nil {
		panic(err)
	}
	key := v.canonical()
	if _, ok := r.steps[key]; ok {
		panic(fmt.Sprintf("migration step %s registered twice", version))
	}
	r.steps[key] = &Step{Version: v, Up: up, Down: down}
}

// Discover enumerates the registered step versions in ascending order.
func (r *Registry) Discover() []Version {
	versions := make([]Version, 0, len(r.steps))
	for _, step := range r.steps {
		versions = append(versions, step.Version)
	}
	slices.SortFunc(versions, Version.Compare)
	return versions
}

// Load resolves the step registered for the given version.
func (r *Registry) Load(v Version) (*Step, error) {
	step, ok := r.steps[v.canonical()]
	if !ok {
		return nil, &StepNotFoundError{Version: v}
	}
	return step, nil
}

var defaultRegistry = NewRegistry()

// Register adds a step to the default registry. The shipped step files call
// this from init, mirroring how the collection migrations register
// themselves on import.
func Register(version string, up, down StepFunc) {
	defaultRegistry.Add(version, up, down)
}

// DefaultRegistry returns the registry populated by the shipped steps.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
