// Package ui provides terminal output components for the menupush CLI.
//
// This package uses Lipgloss to render polished terminal output for the
// non-interactive commands. Unlike the interactive TUI, these components
// follow a "run once and exit" pattern: a header box before the work
// starts, the streamed ingest log printed as it arrives, and a success or
// failure box at the end.
//
// # Logging Integration
//
// This package expects logging to be controlled via the MENUPUSH_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent,
// allowing the curated output to be displayed cleanly.
package ui
