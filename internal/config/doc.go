// Package config provides the brands configuration for the menupush tools.
//
// This package manages a YAML file that maps each brand to its locations
// and stores operator preferences such as the ingest server URL. The
// mapping is read once at startup and treated as immutable for the
// session - the selectors never re-read it.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/menupush/brands.yaml or $HOME/.config/menupush/brands.yaml
//   - macOS: $HOME/.config/menupush/brands.yaml
//   - Windows: %LOCALAPPDATA%\menupush\brands.yaml
//
// An explicit path (--brands flag) bypasses the default location.
//
// # File Format
//
//	version: 1
//	preferences:
//	  upload_url: http://localhost:8512/upload
//	brands:
//	  Acme Burgers:
//	    - name: Downtown
//	      address: 1 Main St
//	  Zen Sushi: []
//
// # Thread Safety
//
// File writes are protected by a mutex and performed atomically via a
// temp file and rename.
package config
