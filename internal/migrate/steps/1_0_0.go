package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 1.0.0 added free-form tags to branches and elements. As the newest step
// it has no Down: there is no later version whose changes it could revert.
func init() {
	migrate.Register("1.0.0",
		func(app core.App) error {
			for _, name := range []string{"branches", "elements"} {
				err := addField(app, name, &core.JSONField{
					Name:    "tags",
					MaxSize: 100000,
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
		nil)
}
