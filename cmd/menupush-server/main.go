// Menupush-server is the companion ingest server for the menupush client.
//
// It accepts multipart CSV menu uploads and streams ingest progress back to
// the client over the same chunked plain-text HTTP response, one line per
// row, category, and item.
//
// Usage:
//
//	menupush-server serve [flags]
//
// See 'menupush-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oselz/menupush/internal/catalog"
	"github.com/oselz/menupush/internal/config"
	"github.com/oselz/menupush/internal/server"
	"github.com/oselz/menupush/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menupush-server",
	Short: "Menu ingest server",
	Long: `The companion ingest server for the menupush client.

Accepts multipart CSV menu uploads on POST /upload and streams ingest
progress back over the same chunked plain-text response, so the operator
sees rows and items go by instead of waiting for one end-of-job result.

Note: For uploading menus, use the separate 'menupush' utility.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	host       string
	port       int
	logLevel   string
	brandsPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ingest server",
	Long: `Start the menu ingest server.

When a brands registry is available (default config location or --brands),
uploads are cross-checked against it: an unknown brand or location is
flagged with a warning line in the stream but still ingested.`,
	Example: `  # Start on the default port
  menupush-server serve

  # Custom port with debug logging
  menupush-server serve --port 9000 --log-level debug

  # Cross-check uploads against an explicit registry file
  menupush-server serve --brands ./brands.yaml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&host, "host", "", "Listen host (empty = all interfaces)")
	serveCmd.Flags().IntVar(&port, "port", 8512, "Listen port")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	serveCmd.Flags().StringVar(&brandsPath, "brands", "", "Path to the brands registry file")
}

func runServe(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	srv, err := server.New(&server.Config{
		Host:     host,
		Port:     port,
		LogLevel: logLevel,
	}, cat)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadCatalog loads the brands registry for upload cross-checking.
// A missing registry is fine; the server then accepts any brand.
func loadCatalog() (*catalog.Catalog, error) {
	if brandsPath != "" {
		reg, err := config.Load(brandsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load brands registry: %w", err)
		}
		return reg.Catalog(), nil
	}

	reg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load brands registry: %w", err)
	}
	if len(reg.Brands) == 0 {
		return nil, nil
	}
	return reg.Catalog(), nil
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("menupush-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
