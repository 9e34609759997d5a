// Package database handles the connection to the import journal database.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The journal is optional: commands
// only connect when database.enabled is set, and a failed connection is logged
// as a warning instead of aborting the run.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Import journal disabled", zap.Error(err))
//	}
package database
