// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports a human friendly console
// encoding for interactive runs and a JSON encoding for scheduled ones.
//
// # Run correlation
//
// Every command generates a run id (a UUID). The WithRunID helper attaches it to
// the logger so that all log lines of one synchronization run, and the import
// journal entries it writes, can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Supplier part created", zap.String("sku", sku))
package logger
