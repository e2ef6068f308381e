// Package cmd provides the application's custom console commands.
package cmd

import (
	"fmt"

	"github.com/geoffjay/modelbase/internal/migrate"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"
)

// NewMigrateSchemaCmd returns the command that moves the persisted data
// model between schema versions. It is separate from the built-in migrate
// command, which manages the collection migrations.
func NewMigrateSchemaCmd(app core.App) *cobra.Command {
	var (
		toFlag string
		yes    bool
	)

	command := &cobra.Command{
		Use:          "migrate-schema",
		Short:        "Migrate the persisted data model to another schema version",
		Long:         "Migrate the persisted data model to another schema version.\n\nWithout --to the newest known version is targeted. The installed version\nis tracked in the server_data collection and advances after every step,\nso an interrupted run resumes where it stopped.",
		SilenceUsage: true,
		RunE: func(command *cobra.Command, args []string) error {
			var target *migrate.Version
			label := "latest"
			if toFlag != "" {
				v, err := migrate.ParseVersion(toFlag)
				if err != nil {
					return err
				}
				target = &v
				label = v.String()
			}

			if !yes {
				ok, err := confirm(fmt.Sprintf("Migrate database schema to %s", label))
				if err != nil {
					return err
				}
				if !ok {
					command.Println("Migration aborted.")
					return nil
				}
			}

			if !app.IsBootstrapped() {
				if err := app.Bootstrap(); err != nil {
					return err
				}
			}

			result, err := migrate.New(app).Run(target)
			if err != nil {
				app.Logger().Debug("schema migration failed",
					"target", label,
					"error", err.Error())
				app.Logger().Warn("Database migration failed: " + err.Error())
				return err
			}

			if result.UpToDate {
				command.Println("Database already up to date.")
			} else {
				command.Println("Database migration complete.")
			}
			return nil
		},
	}

	command.Flags().StringVar(&toFlag, "to", "", "target schema version (defaults to the newest known version)")
	command.Flags().BoolVarP(&yes, "yes", "y", false, "run without asking for confirmation")

	return command
}
