package migrate

import (
	"errors"
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"
)

func newStoreApp(t *testing.T) *tests.TestApp {
	t.Helper()

	app, err := tests.NewTestApp(t.TempDir())
	if err != nil {
		t.Fatalf("test app: %v", err)
	}
	t.Cleanup(app.Cleanup)
	return app
}

func TestMarkerStoreReadEmpty(t *testing.T) {
	app := newStoreApp(t)
	store := NewMarkerStore(app)

	v, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v != nil {
		t.Errorf("Read() = %s, want nil on an empty store", v)
	}

	// Reading creates the collection so later writes always have a home.
	if _, err := app.FindCollectionByNameOrId(markerCollection); err != nil {
		t.Errorf("%s collection was not created: %v", markerCollection, err)
	}
}

func TestMarkerStoreWriteReplacesWholesale(t *testing.T) {
	app := newStoreApp(t)
	store := NewMarkerStore(app)

	if err := store.Write(MustParseVersion("1.0.0")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := store.Write(MustParseVersion("1.1.0")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	v, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if v == nil || v.String() != "1.1.0" {
		t.Errorf("Read() = %v, want 1.1.0", v)
	}

	// Replacement must never accumulate records.
	total, err := app.CountRecords(markerCollection)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if total != 1 {
		t.Errorf("marker records = %d, want 1", total)
	}
}

func TestMarkerStoreReadRejectsMultipleMarkers(t *testing.T) {
	app := newStoreApp(t)
	store := NewMarkerStore(app)

	if err := store.Write(MustParseVersion("1.0.0")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Sneak in a second record behind the store's back.
	collection, err := app.FindCollectionByNameOrId(markerCollection)
	if err != nil {
		t.Fatalf("find collection: %v", err)
	}
	record := core.NewRecord(collection)
	record.Set("version", "1.1.0")
	if err := app.Save(record); err != nil {
		t.Fatalf("save second marker: %v", err)
	}

	_, err = store.Read()
	var consistencyErr *ConsistencyError
	if !errors.As(err, &consistencyErr) {
		t.Fatalf("expected ConsistencyError, got %v", err)
	}
	if consistencyErr.Count != 2 {
		t.Errorf("Count = %d, want 2", consistencyErr.Count)
	}
}

func TestMarkerStoreReadRejectsMalformedVersion(t *testing.T) {
	app := newStoreApp(t)
	store := NewMarkerStore(app)

	if err := store.Write(MustParseVersion("1.0.0")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := app.FindAllRecords(markerCollection)
	if err != nil || len(records) != 1 {
		t.Fatalf("find marker: %v (%d records)", err, len(records))
	}
	records[0].Set("version", "not-a-version")
	if err := app.Save(records[0]); err != nil {
		t.Fatalf("corrupt marker: %v", err)
	}

	_, err = store.Read()
	var invalidErr *InvalidVersionError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidVersionError, got %v", err)
	}
}
