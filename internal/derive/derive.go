// Package derive computes display-ready values from remote records whose
// canonical fields may be absent, applying an explicit ordered fallback per
// field. Every function here is pure: same record in, same value out.
package derive

// Fixed placeholder strings. Each display field names its placeholder
// explicitly; none are inferred.
const (
	PlaceholderNA      = "N/A"
	PlaceholderUnknown = "Unknown"
	PlaceholderDash    = "-"

	// DefaultCountry is shown when a dealer has no address country.
	DefaultCountry = "KSA"

	// UnknownBank is shown when a loan carries no bank reference.
	UnknownBank = "Unknown Bank"
)
