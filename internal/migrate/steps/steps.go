// Package steps holds the shipped schema migration steps. Each file covers
// one version and registers its transformations with the engine on import.
//
// A step's Up introduces that version's data-model changes. Its Down
// restores the data model to that version's shape, undoing the changes of
// the version above it, which is why the newest step carries none.
//
// Step bodies are written to be idempotent: the engine offers no rollback
// within a single step, so every transformation checks what is already in
// place before changing anything.
package steps

import "github.com/pocketbase/pocketbase/core"

// removeField drops a field from a collection if both exist. Collections
// can legitimately be missing on stores that predate them.
func removeField(app core.App, collectionName, fieldName string) error {
	collection, err := app.FindCollectionByNameOrId(collectionName)
	if err != nil {
		return nil
	}
	if collection.Fields.GetByName(fieldName) == nil {
		return nil
	}
	collection.Fields.RemoveByName(fieldName)
	return app.Save(collection)
}

// addField adds a field to a collection unless it is already there.
func addField(app core.App, collectionName string, field core.Field) error {
	collection, err := app.FindCollectionByNameOrId(collectionName)
	if err != nil {
		return nil
	}
	if collection.Fields.GetByName(field.GetName()) != nil {
		return nil
	}
	collection.Fields.Add(field)
	return app.Save(collection)
}
