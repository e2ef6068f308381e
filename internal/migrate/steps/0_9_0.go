package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 0.9.0 introduced project visibility levels. Existing projects were only
// ever reachable by their members, so they backfill as private. Down
// restores the 0.9.0 element shape by dropping the lookup index added in
// 0.10.0.
func init() {
	migrate.Register("0.9.0",
		func(app core.App) error {
			if _, err := app.FindCollectionByNameOrId("projects"); err != nil {
				return nil
			}

			err := addField(app, "projects", &core.SelectField{
				Name:      "visibility",
				MaxSelect: 1,
				Values:    []string{"private", "internal", "public"},
			})
			if err != nil {
				return err
			}

			records, err := app.FindAllRecords("projects")
			if err != nil {
				return err
			}
			for _, record := range records {
				if record.GetString("visibility") != "" {
					continue
				}
				record.Set("visibility", "private")
				if err := app.Save(record); err != nil {
					return err
				}
			}
			return nil
		},
		func(app core.App) error {
			collection, err := app.FindCollectionByNameOrId("elements")
			if err != nil {
				return nil
			}
			collection.RemoveIndex("idx_elements_branch_name")
			return app.Save(collection)
		})
}
