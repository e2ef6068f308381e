package steps

import (
	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
)

// 0.6.0 is the baseline, the oldest version the engine can reason about.
// Its Up never runs because nothing older exists to upgrade from. Its Down
// restores the 0.6.0-era shape by dropping the per-user permission maps
// that 0.7.0 introduced.
func init() {
	migrate.Register("0.6.0",
		func(app core.App) error {
			return nil
		},
		func(app core.App) error {
			if err := removeField(app, "organizations", "permissions"); err != nil {
				return err
			}
			return removeField(app, "projects", "permissions")
		})
}
