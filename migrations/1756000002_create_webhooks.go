package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("webhooks"); err == nil {
			return nil
		}

		collection := core.NewBaseCollection("webhooks")

		collection.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Min:      1,
			Max:      255,
		})

		collection.Fields.Add(&core.URLField{
			Name:     "url",
			Required: true,
		})

		// Event types to deliver, e.g. "elements.created" or "projects.*".
		// Empty means every event.
		collection.Fields.Add(&core.JSONField{
			Name:    "triggers",
			MaxSize: 10000,
		})

		collection.Fields.Add(&core.BoolField{
			Name: "enabled",
		})

		collection.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		collection.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		collection.ListRule = ptrStr("@request.auth.admin = true")
		collection.ViewRule = ptrStr("@request.auth.admin = true")
		collection.CreateRule = ptrStr("@request.auth.admin = true")
		collection.UpdateRule = ptrStr("@request.auth.admin = true")
		collection.DeleteRule = ptrStr("@request.auth.admin = true")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("webhooks")
		if err != nil {
			return err
		}

		return app.Delete(collection)
	})
}
