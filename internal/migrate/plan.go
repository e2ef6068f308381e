package migrate

import "slices"

// Direction of a migration plan.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionDown {
		return "down"
	}
	return "up"
}

// Plan is the ordered, directional sequence of steps computed for one
// migration run. It is consumed destructively: Next removes steps as they
// are handed out.
type Plan struct {
	Direction Direction
	steps     []Version
}

func (p *Plan) Empty() bool {
	return len(p.steps) == 0
}

func (p *Plan) Len() int {
	return len(p.steps)
}

// Versions returns the remaining steps without consuming them.
func (p *Plan) Versions() []Version {
	return slices.Clone(p.steps)
}

// Next removes and returns the next step to run.
func (p *Plan) Next() (Version, bool) {
	if len(p.steps) == 0 {
		return Version{}, false
	}
	v := p.steps[0]
	p.steps = p.steps[1:]
	return v, true
}

// BuildPlan computes the steps to run between the installed version and the
// target. A nil target means the newest available version. Both endpoints
// must have a registered step: the closed interval between them is sliced
// out of the ascending version list and the already-applied end is dropped.
// Upgrades run the remaining steps ascending, downgrades descending.
func BuildPlan(from Version, to *Version, available []Version) (*Plan, error) {
	sorted := slices.Clone(available)
	slices.SortFunc(sorted, Version.Compare)

	var target Version
	if to != nil {
		target = *to
	} else {
		if len(sorted) == 0 {
			return nil, &UnknownVersionError{Version: from, Role: "installed"}
		}
		target = sorted[len(sorted)-1]
	}

	if from.Equal(target) {
		return &Plan{}, nil
	}

	iFrom := indexOf(sorted, from)
	if iFrom < 0 {
		return nil, &UnknownVersionError{Version: from, Role: "installed"}
	}
	iTo := indexOf(sorted, target)
	if iTo < 0 {
		return nil, &UnknownVersionError{Version: target, Role: "requested"}
	}

	if iFrom < iTo {
		return &Plan{Direction: DirectionUp, steps: slices.Clone(sorted[iFrom+1 : iTo+1])}, nil
	}

	steps := slices.Clone(sorted[iTo:iFrom])
	slices.Reverse(steps)
	return &Plan{Direction: DirectionDown, steps: steps}, nil
}

func indexOf(sorted []Version, v Version) int {
	for i, candidate := range sorted {
		if candidate.Equal(v) {
			return i
		}
	}
	return -1
}
