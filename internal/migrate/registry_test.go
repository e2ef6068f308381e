package migrate

import (
	"errors"
	"slices"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func noopStep(app core.App) error { return nil }

func TestRegistryDiscoverOrdersNumerically(t *testing.T) {
	registry := NewRegistry()
	// Registered out of order on purpose; "0.10.0" must sort after "0.9.0",
	// which lexicographic ordering gets wrong.
	for _, raw := range []string{"0.10.0", "0.6.0", "1.0.0", "0.9.0", "0.7.0"} {
		registry.Add(raw, noopStep, nil)
	}

	got := make([]string, 0)
	for _, v := range registry.Discover() {
		got = append(got, v.String())
	}

	want := []string{"0.6.0", "0.7.0", "0.9.0", "0.10.0", "1.0.0"}
	if !slices.Equal(got, want) {
		t.Errorf("Discover() = %v, want %v", got, want)
	}
}

func TestRegistryLoad(t *testing.T) {
	registry := NewRegistry()
	registry.Add("1.0.0", noopStep, noopStep)

	step, err := registry.Load(MustParseVersion("1.0.0"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if step.Up == nil || step.Down == nil {
		t.Error("loaded step lost its transformations")
	}

	// Any spelling of the version resolves to the same step.
	if _, err := registry.Load(MustParseVersion("1.0")); err != nil {
		t.Errorf("Load(1.0): %v", err)
	}

	_, err = registry.Load(MustParseVersion("9.9.9"))
	var notFoundErr *StepNotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Errorf("expected StepNotFoundError, got %v", err)
	}
}

func TestRegistryAddPanics(t *testing.T) {
	registry := NewRegistry()
	registry.Add("1.0.0", noopStep, nil)

	assertPanics := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}

	assertPanics("duplicate version", func() {
		registry.Add("1.0", noopStep, nil)
	})
	assertPanics("malformed version", func() {
		registry.Add("not-a-version", noopStep, nil)
	})
}
