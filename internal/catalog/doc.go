// Package catalog holds the brand → locations mapping used by the menu
// upload tools.
//
// The mapping is supplied once at startup (from the brands configuration
// file) and is immutable for the lifetime of the process. Lookups never
// fail: a brand that is not present simply has no locations. This mirrors
// how the selector UI treats an unselected or unknown brand — it degrades
// to an empty location list rather than an error.
package catalog
