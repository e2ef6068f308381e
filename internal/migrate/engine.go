// Package migrate tracks which data-model version is persisted and moves
// stored data between schema versions by running ordered migration steps.
//
// The installed version lives in a single marker record. Each run reads the
// marker once, plans the directional path to the target and executes it one
// step at a time, rewriting the marker after every step so that partial
// progress is durable.
package migrate

import (
	"errors"
	"log/slog"

	"github.com/pocketbase/pocketbase/core"
)

// Engine orchestrates one migration run.
type Engine struct {
	app      core.App
	registry *Registry
	marker   MarkerStore
	prober   RecordProber
	logger   *slog.Logger
	baseline Version
}

// New returns an engine wired to the app's store, the shipped migration
// steps and the app logger.
func New(app core.App) *Engine {
	return &Engine{
		app:      app,
		registry: DefaultRegistry(),
		marker:   NewMarkerStore(app),
		prober:   NewRecordProber(app),
		logger:   app.Logger(),
		baseline: MustParseVersion(BaselineVersion),
	}
}

// Result summarizes a completed run.
type Result struct {
	Version  Version // installed version after the run
	Steps    int     // transformations executed
	Fresh    bool    // store was brand new, marker written directly
	UpToDate bool    // store was already at the target
}

// Run migrates the store to the given version, or to the newest known
// version when to is nil. Only one run may execute against a store at a
// time. The marker advances after every completed step, so an aborted run
// resumes from the last step that finished, not from the original version.
func (e *Engine) Run(to *Version) (*Result, error) {
	available := e.registry.Discover()
	if len(available) == 0 {
		return nil, errors.New("no migration steps registered")
	}
	newest := available[len(available)-1]

	installed, err := e.marker.Read()
	if err != nil {
		return nil, err
	}

	fresh := false
	if installed == nil {
		current, isFresh, err := e.resolveInstalled(newest)
		if err != nil {
			return nil, err
		}
		installed, fresh = &current, isFresh
	}

	plan, err := BuildPlan(*installed, to, available)
	if err != nil {
		return nil, err
	}

	if plan.Empty() {
		e.logger.Debug("schema already at target", "version", installed.String())
		return &Result{Version: *installed, Fresh: fresh, UpToDate: !fresh}, nil
	}

	e.logger.Info("running schema migration",
		"from", installed.String(),
		"direction", plan.Direction.String(),
		"steps", plan.Len())

	final, steps, err := e.execute(plan)
	if err != nil {
		return nil, err
	}

	return &Result{Version: final, Steps: steps}, nil
}
