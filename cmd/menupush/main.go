// Menupush is an operator tool for uploading CSV menus to a catalog provider.
//
// It provides a cascading brand → location selector, a CSV file picker, and
// a live server-side ingest log streamed into the terminal while an upload
// runs. Brand and location data comes from a local YAML registry.
//
// Usage:
//
//	menupush [command] [flags]
//
// Running without arguments launches the interactive upload flow.
// See 'menupush --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oselz/menupush/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "menupush",
	Short: "Menu upload utility",
	Long: `An operator tool for uploading CSV menus to a catalog provider.

Pick a brand, one of its locations, and a menu CSV; the server's ingest
progress streams back line by line while the upload runs.

If no command is specified, the interactive upload flow will launch
automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive flow when no subcommand provided
		return runInteractive(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("menupush %s (commit: %s)\n", version.Version, version.Commit)
	},
}
