package catalog

import "testing"

func testCatalog() *Catalog {
	return New(map[string][]Location{
		"Acme": {
			{Name: "Downtown", Address: "1 Main St"},
			{Name: "Airport", Address: "99 Runway Rd"},
		},
		"Zen": {},
	})
}

func TestLocationsFor_KnownBrand(t *testing.T) {
	c := testCatalog()

	locs := c.LocationsFor("Acme")
	if len(locs) != 2 {
		t.Fatalf("LocationsFor(Acme) returned %d locations, want 2", len(locs))
	}

	// Order must match the mapping order
	if locs[0].Name != "Downtown" || locs[1].Name != "Airport" {
		t.Errorf("locations out of order: %v", locs)
	}
}

func TestLocationsFor_UnknownBrand(t *testing.T) {
	c := testCatalog()

	if locs := c.LocationsFor("Nope"); len(locs) != 0 {
		t.Errorf("LocationsFor(Nope) = %v, want empty", locs)
	}

	// Empty sentinel (no brand selected yet) degrades the same way
	if locs := c.LocationsFor(""); len(locs) != 0 {
		t.Errorf("LocationsFor(\"\") = %v, want empty", locs)
	}
}

func TestLocationsFor_EmptyBrand(t *testing.T) {
	c := testCatalog()

	if locs := c.LocationsFor("Zen"); len(locs) != 0 {
		t.Errorf("LocationsFor(Zen) = %v, want empty", locs)
	}

	if !c.Has("Zen") {
		t.Error("Has(Zen) = false, want true (brand exists with zero locations)")
	}

	if c.Has("Nope") {
		t.Error("Has(Nope) = true, want false")
	}
}

func TestLocationLabel(t *testing.T) {
	loc := Location{Name: "Downtown", Address: "1 Main St"}
	want := "Downtown — 1 Main St"
	if got := loc.Label(); got != want {
		t.Errorf("Label() = %q, want %q", got, want)
	}
}

func TestBrands_Sorted(t *testing.T) {
	c := testCatalog()

	brands := c.Brands()
	if len(brands) != 2 {
		t.Fatalf("Brands() returned %d entries, want 2", len(brands))
	}
	if brands[0] != "Acme" || brands[1] != "Zen" {
		t.Errorf("Brands() = %v, want [Acme Zen]", brands)
	}
}

func TestCatalog_Immutable(t *testing.T) {
	source := map[string][]Location{
		"Acme": {{Name: "Downtown", Address: "1 Main St"}},
	}
	c := New(source)

	// Mutating the source mapping must not leak into the catalog
	source["Acme"][0].Name = "Changed"

	if got := c.LocationsFor("Acme")[0].Name; got != "Downtown" {
		t.Errorf("catalog affected by source mutation: got %q", got)
	}

	// Mutating a returned slice must not affect later lookups
	locs := c.LocationsFor("Acme")
	locs[0].Address = "changed"

	if got := c.LocationsFor("Acme")[0].Address; got != "1 Main St" {
		t.Errorf("catalog affected by result mutation: got %q", got)
	}
}
