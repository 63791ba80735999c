package config

import (
	"fmt"

	"github.com/oselz/menupush/internal/catalog"
)

// Registry represents the entire brands configuration file.
// It carries the brand → locations mapping the selectors are built from,
// plus operator preferences for reaching the ingest server.
type Registry struct {
	Version     int                           `yaml:"version"`
	Brands      map[string][]catalog.Location `yaml:"brands,omitempty"`
	Preferences *Preferences                  `yaml:"preferences,omitempty"`
}

// Preferences represents application-wide operator preferences.
type Preferences struct {
	UploadURL string `yaml:"upload_url,omitempty"` // Ingest server upload endpoint
}

// DefaultUploadURL is used when the registry carries no preference
// and no --server flag is given.
const DefaultUploadURL = "http://localhost:8512/upload"

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Brands:  make(map[string][]catalog.Location),
		Preferences: &Preferences{
			UploadURL: DefaultUploadURL,
		},
	}
}

// ExampleRegistry returns a starter registry for 'menupush init', with a
// couple of brands the operator is expected to replace.
func ExampleRegistry() *Registry {
	r := NewRegistry()
	r.Brands = map[string][]catalog.Location{
		"Acme Burgers": {
			{Name: "Downtown", Address: "1 Main St"},
			{Name: "Airport", Address: "99 Runway Rd"},
		},
		"Zen Sushi": {},
	}
	return r
}

// Catalog builds the immutable brand → locations catalog from the registry.
func (r *Registry) Catalog() *catalog.Catalog {
	return catalog.New(r.Brands)
}

// UploadURL returns the configured upload endpoint, falling back to the
// default when no preference is set.
func (r *Registry) UploadURL() string {
	if r.Preferences != nil && r.Preferences.UploadURL != "" {
		return r.Preferences.UploadURL
	}
	return DefaultUploadURL
}

// Validate checks the registry for entries the selectors cannot work with.
func (r *Registry) Validate() error {
	for brand, locations := range r.Brands {
		if brand == "" {
			return fmt.Errorf("brands config contains an empty brand name")
		}
		for i, loc := range locations {
			if loc.Address == "" {
				return fmt.Errorf("brand %q location %d has no address", brand, i+1)
			}
			if loc.Name == "" {
				return fmt.Errorf("brand %q location %d has no name", brand, i+1)
			}
		}
	}
	return nil
}
