// Package logging provides structured logging for the weft demo binaries.
//
// This package wraps zap with the conventions a terminal UI forces: the
// runtime owns stdout for rendering, so log output goes to a file, never
// to the terminal the program is painting.
//
// # Configuration
//
// Logging is silent unless explicitly enabled. Two environment
// variables control it:
//
//   - WEFT_LOG_LEVEL: "debug", "info", "warn" or "error". Unset or
//     empty means no logging at all (a no-op logger).
//   - WEFT_LOG_FILE: path the log is appended to. Defaults to
//     "weft.log" in the working directory when a level is set.
//
// Initialize once at startup, before the program takes over the
// terminal:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Usage
//
// All functions use structured fields for queryability:
//
//	logging.Info("service discovered",
//	    zap.String("instance", entry.Instance),
//	    zap.Int("port", entry.Port),
//	)
//
// GetLogger exposes the underlying *zap.Logger for injection into
// weft.NewProgram via weft.WithLogger, so recovered command panics land
// in the same file.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use.
package logging
