package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 0.10.0 added the index backing element lookups by branch and name, which
// the tree traversal endpoints lean on. Down restores the 0.10.0 shape by
// removing the tag fields added in 1.0.0.
func init() {
	migrate.Register("0.10.0",
		func(app core.App) error {
			collection, err := app.FindCollectionByNameOrId("elements")
			if err != nil {
				return nil
			}
			collection.RemoveIndex("idx_elements_branch_name")
			collection.AddIndex("idx_elements_branch_name", false, "branchId, name", "")
			return app.Save(collection)
		},
		func(app core.App) error {
			if err := removeField(app, "branches", "tags"); err != nil {
				return err
			}
			return removeField(app, "elements", "tags")
		})
}
