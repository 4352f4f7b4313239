// Package database handles connections to the launch catalog database.
//
// It provides a wrapper around GORM that configures either a MySQL
// connection (shared catalog, pooled, pinged on startup) or a pure-Go SQLite
// connection (local file or in-memory, which is also what the test suites
// use) based on the application's configuration.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return fmt.Errorf("database connection failed: %w", err)
//	}
package database
