// Package selector derives the location option set from the currently
// selected brand.
//
// The location control is entirely dependent on the brand control: every
// brand change rebuilds the full option list from the catalog, so options
// from a previous brand can never survive a switch. Selection does not
// carry across brand changes either — the caller always starts from the
// placeholder again.
package selector

import "github.com/oselz/menupush/internal/catalog"

// Placeholder labels for the location control.
const (
	PlaceholderChoose = "Choose a location…"
	PlaceholderNone   = "No locations"
)

// Option is a single entry in the location control.
// Value is the submitted address; Label is what the operator sees.
type Option struct {
	Value    string
	Label    string
	Disabled bool
	Selected bool
}

// Controller keeps the location option set in sync with the brand choice.
type Controller struct {
	cat *catalog.Catalog
}

// New creates a controller backed by the given catalog.
func New(cat *catalog.Catalog) *Controller {
	return &Controller{cat: cat}
}

// OptionsFor returns the complete option set for the given brand.
//
// A brand with no locations (or an unknown brand, or the empty sentinel)
// yields exactly one disabled "No locations" option with nothing selectable.
// Otherwise the set is a disabled, pre-selected "Choose a location…"
// placeholder followed by one option per location in catalog order.
func (c *Controller) OptionsFor(brand string) []Option {
	locations := c.cat.LocationsFor(brand)
	if len(locations) == 0 {
		return []Option{{Label: PlaceholderNone, Disabled: true}}
	}

	options := make([]Option, 0, len(locations)+1)
	options = append(options, Option{
		Label:    PlaceholderChoose,
		Disabled: true,
		Selected: true,
	})
	for _, loc := range locations {
		options = append(options, Option{
			Value: loc.Address,
			Label: loc.Label(),
		})
	}
	return options
}

// Selectable filters an option set down to the entries the operator can
// actually pick (i.e. everything except placeholders).
func Selectable(options []Option) []Option {
	var usable []Option
	for _, opt := range options {
		if !opt.Disabled {
			usable = append(usable, opt)
		}
	}
	return usable
}
