package urls

// Catalog provider URLs referenced by the tools.
// Login and the provider dashboard are handled entirely by the provider;
// these constants only exist so help text and log lines can point at them.

// ProviderBase is the catalog provider's partner portal.
const ProviderBase = "https://partners.orders.co/"

// ProviderMenuOverview is where an uploaded menu becomes visible
// after ingestion finishes.
const ProviderMenuOverview = "https://partners.orders.co/menu/overview"
