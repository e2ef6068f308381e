package migrate

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// The installed schema version lives in its own single-record collection.
// The record is only ever replaced wholesale (delete then insert) so a
// crash can never leave a partially written version behind.
const markerCollection = "server_data"

// MarkerStore reads and writes the persisted record naming the installed
// schema version.
type MarkerStore interface {
	// Read returns the installed version, or nil when no marker exists.
	Read() (*Version, error)

	// Write replaces the marker with one naming the given version.
	Write(v Version) error
}

type appMarkerStore struct {
	app core.App
}

// NewMarkerStore returns a MarkerStore backed by the app's server_data
// collection. The collection is created on first use and carries no API
// rules, so only superusers can touch it over the REST surface.
func NewMarkerStore(app core.App) MarkerStore {
	return &appMarkerStore{app: app}
}

func (s *appMarkerStore) Read() (*Version, error) {
	if _, err := s.ensureCollection(); err != nil {
		return nil, err
	}

	records, err := s.app.FindAllRecords(markerCollection)
	if err != nil {
		return nil, fmt.Errorf("read version marker: %w", err)
	}

	switch len(records) {
	case 0:
		return nil, nil
	case 1:
		v, err := ParseVersion(records[0].GetString("version"))
		if err != nil {
			return nil, fmt.Errorf("stored version marker is malformed: %w", err)
		}
		return &v, nil
	default:
		return nil, &ConsistencyError{Count: len(records)}
	}
}

func (s *appMarkerStore) Write(v Version) error {
	collection, err := s.ensureCollection()
	if err != nil {
		return err
	}

	return s.app.RunInTransaction(func(tx core.App) error {
		records, err := tx.FindAllRecords(markerCollection)
		if err != nil {
			return fmt.Errorf("read version marker: %w", err)
		}
		for _, record := range records {
			if err := tx.Delete(record); err != nil {
				return fmt.Errorf("replace version marker: %w", err)
			}
		}

		record := core.NewRecord(collection)
		record.Set("version", v.String())
		if err := tx.Save(record); err != nil {
			return fmt.Errorf("write version marker %s: %w", v, err)
		}
		return nil
	})
}

func (s *appMarkerStore) ensureCollection() (*core.Collection, error) {
	collection, err := s.app.FindCollectionByNameOrId(markerCollection)
	if err == nil {
		return collection, nil
	}

	collection = core.NewBaseCollection(markerCollection)
	collection.Fields.Add(&core.TextField{
		Name:     "version",
		Required: true,
		Max:      100,
	})
	if err := s.app.Save(collection); err != nil {
		return nil, fmt.Errorf("create %s collection: %w", markerCollection, err)
	}
	return collection, nil
}
