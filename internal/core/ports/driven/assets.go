package driven

// AssetResolver maps a logical asset name to a loadable URL.
type AssetResolver interface {
	// URL returns the URL for the named asset.
	// Unknown names return an empty string.
	URL(name string) string
}
