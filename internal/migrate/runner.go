package migrate

// execute runs the plan to completion, consuming it one step at a time.
// The marker is rewritten after every transformation, which makes each
// step's completion independently durable: an abort, crash or missing
// reverse transformation leaves the marker at the last step that fully
// applied. Step failures are never retried.
func (e *Engine) execute(plan *Plan) (Version, int, error) {
	var last Version
	steps := 0

	for {
		version, ok := plan.Next()
		if !ok {
			break
		}

		step, err := e.registry.Load(version)
		if err != nil {
			return last, steps, err
		}

		fn := step.Up
		if plan.Direction == DirectionDown {
			fn = step.Down
		}
		if fn == nil {
			return last, steps, &MissingTransformationError{Version: version, Direction: plan.Direction}
		}

		e.logger.Info("applying migration step",
			"version", version.String(),
			"direction", plan.Direction.String())

		if err := fn(e.app); err != nil {
			return last, steps, &StepExecutionError{Version: version, Direction: plan.Direction, Err: err}
		}
		if err := e.marker.Write(version); err != nil {
			return last, steps, err
		}

		last = version
		steps++
	}

	return last, steps, nil
}
