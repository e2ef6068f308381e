package migrations

// Collection migration files live here, one per change, and register
// themselves on import. New ones are auto-generated when collections change
// or created manually via: go run main.go migrate create
//
// Available commands:
//   go run main.go migrate create      - Create a blank migration
//   go run main.go migrate collections - Snapshot current collections
//   go run main.go migrate up          - Apply pending migrations
//   go run main.go migrate down [n]    - Revert n migrations
//
// These are distinct from the schema version steps in
// internal/migrate/steps, which transform persisted data between data-model
// versions and are driven by the migrate-schema command.
