// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections based on
// the application's configuration. The database only backs the unresolved item log,
// so the service keeps running when it is unavailable.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for the server integrity check, using
// SHOW COLUMNS on MySQL and PRAGMA table_info on SQLite.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "unresolved_items")
package database
