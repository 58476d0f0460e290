// Package logging provides structured logging utilities for the iodptools packages.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that catalog loading, validation and export all log in the same shape.
// It supports environment-based log level configuration, module/version
// context injection, and source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
//	logging.SetDefaultStructuredLogger("lore-validate", "v0.1.0")
//	slog.Info("validating report", "report", "MAD", "rows", 120)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("lore-validate", "v0.1.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when
// SetDefaultStructuredLogger is used. If LOG_LEVEL is not set, defaults to
// INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "validation completed",
//	    "module": "lore-validate",
//	    "version": "v0.1.0",
//	    "violations": 3
//	}
package logging
