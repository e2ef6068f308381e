package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 0.7.0 moved access control onto the records themselves: organizations and
// projects gained a permissions map of user id to role list. Down restores
// the 0.7.0 artifact shape by dropping the storage location fields that
// 0.8.0 introduced.
func init() {
	migrate.Register("0.7.0",
		func(app core.App) error {
			for _, name := range []string{"organizations", "projects"} {
				err := addField(app, name, &core.JSONField{
					Name:    "permissions",
					MaxSize: 2000000,
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
		func(app core.App) error {
			if err := removeField(app, "artifacts", "locationType"); err != nil {
				return err
			}
			return removeField(app, "artifacts", "location")
		})
}
