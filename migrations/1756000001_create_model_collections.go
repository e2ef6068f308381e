package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Creates the model hierarchy at its current data-model shape:
// organizations own projects, projects own branches, branches hold elements
// and artifacts. Legacy stores reach the same shape through the schema
// version steps instead.
func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("organizations"); err == nil {
			return nil // Collections already exist
		}

		organizations := core.NewBaseCollection("organizations")

		organizations.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Min:      1,
			Max:      255,
		})

		organizations.Fields.Add(&core.TextField{
			Name: "description",
			Max:  1000,
		})

		organizations.Fields.Add(&core.JSONField{
			Name:    "permissions",
			MaxSize: 2000000,
		})

		organizations.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		organizations.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		organizations.ListRule = ptrStr("@request.auth.id != ''")
		organizations.ViewRule = ptrStr("@request.auth.id != ''")
		organizations.CreateRule = ptrStr("@request.auth.id != ''")
		organizations.UpdateRule = ptrStr("@request.auth.id != ''")
		organizations.DeleteRule = ptrStr("@request.auth.admin = true")

		if err := app.Save(organizations); err != nil {
			return err
		}

		projects := core.NewBaseCollection("projects")

		projects.Fields.Add(&core.RelationField{
			Name:          "orgId",
			Required:      true,
			CollectionId:  organizations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})

		projects.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Min:      1,
			Max:      255,
		})

		projects.Fields.Add(&core.TextField{
			Name: "description",
			Max:  1000,
		})

		projects.Fields.Add(&core.JSONField{
			Name:    "permissions",
			MaxSize: 2000000,
		})

		projects.Fields.Add(&core.SelectField{
			Name:      "visibility",
			MaxSelect: 1,
			Values:    []string{"private", "internal", "public"},
		})

		projects.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		projects.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		projects.ListRule = ptrStr("@request.auth.id != ''")
		projects.ViewRule = ptrStr("@request.auth.id != '' || visibility = 'public'")
		projects.CreateRule = ptrStr("@request.auth.id != ''")
		projects.UpdateRule = ptrStr("@request.auth.id != ''")
		projects.DeleteRule = ptrStr("@request.auth.admin = true")

		if err := app.Save(projects); err != nil {
			return err
		}

		branches := core.NewBaseCollection("branches")

		branches.Fields.Add(&core.RelationField{
			Name:          "projectId",
			Required:      true,
			CollectionId:  projects.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})

		branches.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Min:      1,
			Max:      255,
		})

		branches.Fields.Add(&core.JSONField{
			Name:    "tags",
			MaxSize: 100000,
		})

		branches.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		branches.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		branches.ListRule = ptrStr("@request.auth.id != ''")
		branches.ViewRule = ptrStr("@request.auth.id != ''")
		branches.CreateRule = ptrStr("@request.auth.id != ''")
		branches.UpdateRule = ptrStr("@request.auth.id != ''")
		branches.DeleteRule = ptrStr("@request.auth.id != ''")

		if err := app.Save(branches); err != nil {
			return err
		}

		// Branches fork from each other, so the source relation can only be
		// added once the collection has an id.
		branches.Fields.Add(&core.RelationField{
			Name:         "source",
			CollectionId: branches.Id,
			MaxSelect:    1,
		})

		if err := app.Save(branches); err != nil {
			return err
		}

		elements := core.NewBaseCollection("elements")

		elements.Fields.Add(&core.RelationField{
			Name:          "branchId",
			Required:      true,
			CollectionId:  branches.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})

		elements.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Min:      1,
			Max:      255,
		})

		elements.Fields.Add(&core.TextField{
			Name: "documentation",
			Max:  100000,
		})

		elements.Fields.Add(&core.JSONField{
			Name:    "custom",
			MaxSize: 2000000,
		})

		elements.Fields.Add(&core.JSONField{
			Name:    "tags",
			MaxSize: 100000,
		})

		elements.Fields.Add(&core.BoolField{
			Name: "archived",
		})

		elements.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		elements.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		elements.AddIndex("idx_elements_branch_name", false, "branchId, name", "")

		elements.ListRule = ptrStr("@request.auth.id != ''")
		elements.ViewRule = ptrStr("@request.auth.id != ''")
		elements.CreateRule = ptrStr("@request.auth.id != ''")
		elements.UpdateRule = ptrStr("@request.auth.id != ''")
		elements.DeleteRule = ptrStr("@request.auth.id != ''")

		if err := app.Save(elements); err != nil {
			return err
		}

		// Element containment tree.
		elements.Fields.Add(&core.RelationField{
			Name:         "parent",
			CollectionId: elements.Id,
			MaxSelect:    1,
		})

		if err := app.Save(elements); err != nil {
			return err
		}

		artifacts := core.NewBaseCollection("artifacts")

		artifacts.Fields.Add(&core.RelationField{
			Name:          "branchId",
			Required:      true,
			CollectionId:  branches.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})

		artifacts.Fields.Add(&core.TextField{
			Name:     "filename",
			Required: true,
			Min:      1,
			Max:      255,
		})

		artifacts.Fields.Add(&core.TextField{
			Name: "hash",
			Max:  128,
		})

		artifacts.Fields.Add(&core.NumberField{
			Name: "size",
		})

		artifacts.Fields.Add(&core.SelectField{
			Name:      "locationType",
			MaxSelect: 1,
			Values:    []string{"blob", "url"},
		})

		artifacts.Fields.Add(&core.TextField{
			Name: "location",
			Max:  2048,
		})

		artifacts.Fields.Add(&core.AutodateField{
			Name:     "created",
			OnCreate: true,
		})

		artifacts.Fields.Add(&core.AutodateField{
			Name:     "updated",
			OnCreate: true,
			OnUpdate: true,
		})

		artifacts.ListRule = ptrStr("@request.auth.id != ''")
		artifacts.ViewRule = ptrStr("@request.auth.id != ''")
		artifacts.CreateRule = ptrStr("@request.auth.id != ''")
		artifacts.UpdateRule = ptrStr("@request.auth.id != ''")
		artifacts.DeleteRule = ptrStr("@request.auth.id != ''")

		return app.Save(artifacts)
	}, func(app core.App) error {
		for _, name := range []string{"artifacts", "elements", "branches", "projects", "organizations"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				continue
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}

func ptrStr(s string) *string {
	return &s
}
