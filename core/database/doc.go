// Package database handles the world database connection and schema inspection.
//
// It wraps GORM to configure MySQL connections from the application's
// configuration. SQLite is supported for local runs and tests.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the server
// within the configured timeout.
//
// # Rows
//
// QueryRows scans an arbitrary SELECT into column-keyed maps. The reconciler
// reads world tables this way because their columns are described by codec
// tables rather than GORM models.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns compare the live schema against the
// columns a codec table expects, which backs the `check` command.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//
//	missing, err := database.MissingColumns(db, "item_template", []string{"entry", "name"})
package database
