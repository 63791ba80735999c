// Package logging provides structured logging for the menupush tools.
//
// This package wraps zap with convenience functions for the patterns used
// across the client and the ingest server.
//
// # Silent by default
//
// The TUI and the curated CLI output own the terminal, so logging is
// disabled unless the MENUPUSH_LOG_LEVEL environment variable (or an
// explicit level passed to Initialize) turns it on. Valid values are
// "debug", "info", "warn" and "error". The ingest server initializes
// logging from its --log-level flag instead and is expected to be chatty.
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Submitting menu upload",
//	    zap.String("brand", "Acme"),
//	    zap.String("location", "1 Main St"),
//	)
package logging
