package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 0.8.0 separated artifact metadata from blob placement: each artifact
// records where its blob lives and through which strategy it is fetched.
// Down restores the 0.8.0 project shape by removing the visibility level
// added in 0.9.0.
func init() {
	migrate.Register("0.8.0",
		func(app core.App) error {
			err := addField(app, "artifacts", &core.SelectField{
				Name:      "locationType",
				MaxSelect: 1,
				Values:    []string{"blob", "url"},
			})
			if err != nil {
				return err
			}
			return addField(app, "artifacts", &core.TextField{
				Name: "location",
				Max:  2048,
			})
		},
		func(app core.App) error {
			return removeField(app, "projects", "visibility")
		})
}
