package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/oselz/menupush/internal/catalog"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "menupush") {
		t.Errorf("GetConfigDir() = %v, should contain 'menupush'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	content := `version: 1
preferences:
  upload_url: http://ingest.local:9000/upload
brands:
  Acme:
    - name: Downtown
      address: 1 Main St
    - name: Airport
      address: 99 Runway Rd
  Zen: []
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	registry, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if registry.UploadURL() != "http://ingest.local:9000/upload" {
		t.Errorf("UploadURL() = %q", registry.UploadURL())
	}

	cat := registry.Catalog()
	locs := cat.LocationsFor("Acme")
	if len(locs) != 2 || locs[0].Address != "1 Main St" || locs[1].Address != "99 Runway Rd" {
		t.Errorf("catalog order broken: %v", locs)
	}
	if len(cat.LocationsFor("Zen")) != 0 {
		t.Error("Zen should have no locations")
	}
}

func TestLoad_BadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	if err := os.WriteFile(path, []byte("version: 7\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject unsupported version")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	if err := os.WriteFile(path, []byte("brands: [:::"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject malformed YAML")
	}
}

func TestLoad_MissingAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")
	content := `version: 1
brands:
  Acme:
    - name: Downtown
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a location without an address")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brands.yaml")

	registry := NewRegistry()
	registry.Brands = map[string][]catalog.Location{
		"Acme": {{Name: "Downtown", Address: "1 Main St"}},
	}

	if err := registry.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}

	locs := loaded.Catalog().LocationsFor("Acme")
	if len(locs) != 1 || locs[0].Label() != "Downtown — 1 Main St" {
		t.Errorf("round-trip lost data: %v", locs)
	}
}

func TestUploadURL_Default(t *testing.T) {
	registry := &Registry{Version: 1}
	if registry.UploadURL() != DefaultUploadURL {
		t.Errorf("UploadURL() = %q, want default", registry.UploadURL())
	}
}
