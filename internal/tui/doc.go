// Package tui implements the terminal user interface for the menupush client.
//
// This package provides an interactive, full-screen TUI for uploading a CSV
// menu to the catalog provider. Built using the Bubble Tea framework, it
// follows the Elm architecture with immutable state updates and a clean
// Model-Update-View pattern.
//
// # Architecture
//
// The TUI walks the operator through four screens:
//   - Brand: pick a brand from the configured catalog
//   - Location: pick one of the brand's locations (rebuilt on every brand
//     change, so stale options never survive a switch)
//   - File: pick the menu CSV with a filesystem browser
//   - Upload: stream the server's ingest log live into the log panel
//
// All screens use a unified container pattern (RenderApplicationContainer)
// for consistent layout with header, content area, and context-sensitive
// footer.
//
// # Framework Components
//
//   - bubbles/list: brand and location selection with filtering
//   - bubbles/filepicker: CSV file browsing
//   - bubbles/viewport: scrolling log panel
//   - bubbles/spinner: in-flight upload indicator
//   - bubbles/help + bubbles/key: context-aware key hints
//   - lipgloss: styling and layout
//
// # Streaming
//
// The upload itself runs in its own goroutine; every decoded chunk travels
// through one channel as a Bubble Tea message, so the log panel sees chunks,
// errors, and the final done marker in arrival order. The panel follows the
// newest line; the operator can scroll back once the stream settles.
//
// # Usage Example
//
//	app := tui.NewAppModel(cat, upload.NewClient(serverURL), "")
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
package tui
