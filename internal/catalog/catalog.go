package catalog

import "sort"

// Location is a single physical site of a brand. The address is what gets
// submitted to the ingest server; the name is only for display.
type Location struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// Label returns the display label for the location, e.g.
// "Downtown — 1 Main St".
func (l Location) Label() string {
	return l.Name + " — " + l.Address
}

// Catalog maps brand names to their ordered location lists.
// Instances are immutable after construction.
type Catalog struct {
	brands map[string][]Location
}

// New builds a Catalog from the given mapping. The mapping and its slices
// are copied, so later mutation of the argument does not affect the catalog.
func New(brands map[string][]Location) *Catalog {
	copied := make(map[string][]Location, len(brands))
	for brand, locations := range brands {
		locs := make([]Location, len(locations))
		copy(locs, locations)
		copied[brand] = locs
	}
	return &Catalog{brands: copied}
}

// Brands returns all brand names in lexical order. Brand keys are unordered
// in the mapping itself, so sorting keeps the UI stable between runs.
func (c *Catalog) Brands() []string {
	names := make([]string, 0, len(c.brands))
	for brand := range c.brands {
		names = append(names, brand)
	}
	sort.Strings(names)
	return names
}

// LocationsFor returns the locations of the given brand in mapping order.
// Unknown brands (including the empty "nothing selected" value) yield an
// empty slice, never an error.
func (c *Catalog) LocationsFor(brand string) []Location {
	locations, ok := c.brands[brand]
	if !ok {
		return nil
	}
	locs := make([]Location, len(locations))
	copy(locs, locations)
	return locs
}

// Has reports whether the brand exists in the catalog.
func (c *Catalog) Has(brand string) bool {
	_, ok := c.brands[brand]
	return ok
}

// Len returns the number of brands.
func (c *Catalog) Len() int {
	return len(c.brands)
}
