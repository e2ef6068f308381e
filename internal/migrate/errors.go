package migrate

import "fmt"

// InvalidVersionError reports a malformed version string. It is returned
// before any state is touched.
type InvalidVersionError struct {
	Raw string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: expected dot-delimited non-negative integers", e.Raw)
}

// ConsistencyError reports more than one version marker record in the
// store. The engine never repairs this on its own.
type ConsistencyError struct {
	Count int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("found %d version marker records, expected at most one", e.Count)
}

// UnknownVersionError reports that the installed or requested version has
// no registered migration step.
type UnknownVersionError struct {
	Version Version
	Role    string // "installed" or "requested"
}

func (e *UnknownVersionError) Error() string {
	return fmt.Sprintf("no migration step registered for %s version %s", e.Role, e.Version)
}

// StepNotFoundError reports a version with no registered step.
type StepNotFoundError struct {
	Version Version
}

func (e *StepNotFoundError) Error() string {
	return fmt.Sprintf("migration step %s is not registered", e.Version)
}

// MissingTransformationError reports a step that lacks the transformation
// required by the plan's direction. The run aborts and the marker stays at
// the last step that completed.
type MissingTransformationError struct {
	Version   Version
	Direction Direction
}

func (e *MissingTransformationError) Error() string {
	return fmt.Sprintf("migration step %s has no %s transformation", e.Version, e.Direction)
}

// StepExecutionError reports a failure inside a step's own transformation
// logic. The underlying error is wrapped unmodified.
type StepExecutionError struct {
	Version   Version
	Direction Direction
	Err       error
}

func (e *StepExecutionError) Error() string {
	return fmt.Sprintf("migration step %s (%s) failed: %v", e.Version, e.Direction, e.Err)
}

func (e *StepExecutionError) Unwrap() error {
	return e.Err
}
