package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oselz/menupush/internal/config"
	"github.com/oselz/menupush/internal/logging"
	"github.com/oselz/menupush/internal/tui"
	"github.com/oselz/menupush/internal/ui"
	"github.com/oselz/menupush/internal/upload"
)

// Command flags
var (
	serverURL  string
	brandsPath string
	brandFlag  string
	locFlag    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Upload endpoint URL (overrides the registry)")
	rootCmd.PersistentFlags().StringVar(&brandsPath, "brands", "", "Path to the brands registry file")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(brandsCmd)
	rootCmd.AddCommand(initCmd)
}

// loadRegistry loads the brands registry from --brands or the default
// config location
func loadRegistry() (*config.Registry, error) {
	if brandsPath != "" {
		return config.Load(brandsPath)
	}
	return config.LoadDefault()
}

// endpoint resolves the upload URL: flag first, then registry
// preferences, then the built-in default.
func endpoint(reg *config.Registry) string {
	if serverURL != "" {
		return serverURL
	}
	return reg.UploadURL()
}

func runInteractive(cmd *cobra.Command, args []string) error {
	logging.InitializeFromEnv()

	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load brands registry: %w", err)
	}

	cat := reg.Catalog()
	if cat.Len() == 0 {
		return fmt.Errorf("no brands configured - run 'menupush init' to create a starter registry")
	}

	client := upload.NewClient(endpoint(reg))
	app := tui.NewAppModel(cat, client, "")

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}

// uploadCmd runs a single non-interactive upload
var uploadCmd = &cobra.Command{
	Use:   "upload <file.csv>",
	Short: "Upload a menu CSV without the interactive flow",
	Long: `Upload a menu CSV for a brand and location in one shot.

The server's ingest log streams to stdout line by line as it arrives.
Brand must exist in the registry; location is the address value of one
of the brand's locations.`,
	Example: `  # Upload for a brand with one known location address
  menupush upload menu.csv --brand "Acme Burgers" --location "12 High St"

  # Against a different server
  menupush upload menu.csv --brand "Acme Burgers" --location "12 High St" \
    --server http://menus.internal:8512/upload`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&brandFlag, "brand", "", "Brand name (required)")
	uploadCmd.Flags().StringVar(&locFlag, "location", "", "Location address (required)")
	_ = uploadCmd.MarkFlagRequired("brand")
	_ = uploadCmd.MarkFlagRequired("location")
}

// stdoutSink streams the server's log lines straight to stdout
type stdoutSink struct {
	failed string
}

func (s *stdoutSink) Append(text string) {
	fmt.Print(text)
}

func (s *stdoutSink) SetError(message string) {
	s.failed = message
}

func runUpload(cmd *cobra.Command, args []string) error {
	logging.InitializeFromEnv()

	reg, err := loadRegistry()
	if err != nil {
		return fmt.Errorf("failed to load brands registry: %w", err)
	}

	cat := reg.Catalog()
	if !cat.Has(brandFlag) {
		return fmt.Errorf("unknown brand %q - see 'menupush brands'", brandFlag)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	url := endpoint(reg)
	ui.PrintCommandHeader("Menu Upload", "menupush upload", map[string]string{
		"brand":    brandFlag,
		"location": locFlag,
		"file":     filepath.Base(path),
		"server":   url,
	})

	client := upload.NewClient(url)
	sink := &stdoutSink{}

	err = client.Upload(context.Background(), upload.Request{
		Brand:    brandFlag,
		Location: locFlag,
		FileName: filepath.Base(path),
		File:     f,
	}, sink)

	if sink.failed != "" {
		fmt.Println(sink.failed)
	}

	if err != nil {
		ui.PrintFailure("Upload failed", err, []string{
			"Check the server is running and reachable",
			"Verify the --server URL (current: " + url + ")",
			"Confirm the file is a valid menu CSV",
		})
		return err
	}

	ui.PrintSuccess("Upload complete", map[string]string{
		"brand":    brandFlag,
		"location": locFlag,
	})
	return nil
}

// brandsCmd lists the configured brands and their locations
var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List configured brands and locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return fmt.Errorf("failed to load brands registry: %w", err)
		}

		cat := reg.Catalog()
		if cat.Len() == 0 {
			fmt.Println("No brands configured. Run 'menupush init' to create a starter registry.")
			return nil
		}

		for _, brand := range cat.Brands() {
			fmt.Println(brand)
			locs := cat.LocationsFor(brand)
			if len(locs) == 0 {
				fmt.Println("  (no locations)")
				continue
			}
			for _, loc := range locs {
				fmt.Printf("  %s\n", loc.Label())
			}
		}
		return nil
	},
}

// initCmd writes a starter registry to the config dir
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter brands registry",
	Long: `Write an example brands registry to the config directory (or to the
path given with --brands). Edit it to add your own brands and locations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := config.ExampleRegistry()

		if brandsPath != "" {
			if err := reg.SaveTo(brandsPath); err != nil {
				return fmt.Errorf("failed to write registry: %w", err)
			}
			fmt.Printf("Wrote starter registry to %s\n", brandsPath)
			return nil
		}

		if err := reg.Save(); err != nil {
			return fmt.Errorf("failed to write registry: %w", err)
		}
		path, _ := config.GetConfigPath()
		fmt.Printf("Wrote starter registry to %s\n", path)
		return nil
	},
}
