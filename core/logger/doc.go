// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production).
//
// # Run Correlation
//
// Each reconciliation run is tagged with a run id. The WithRunID helper
// attaches a fresh id to the log entry chain, ensuring that all logs from a
// specific run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log, runID := logger.WithRunID(log)
//	log.Info("Starting reconciliation")
package logger
