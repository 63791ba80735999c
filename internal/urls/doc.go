// Package urls provides centralized constants for the external URLs used
// throughout the application.
//
// This package was created to enable URL updates without hunting through
// code. All provider URLs are defined here as exported constants and can
// be updated in a single location before release.
//
// Usage:
//
//	import "github.com/oselz/menupush/internal/urls"
//
//	fmt.Printf("Review the menu at: %s\n", urls.ProviderMenuOverview)
package urls
