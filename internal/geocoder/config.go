package geocoder

// Config is the plain struct threaded through the search call stack,
// replacing the reference implementation's dict-of-options-plus-module-
// globals with explicit values (per spec Design Notes §9).
type Config struct {
	// BestOnly keeps only the longest-match candidate set. Default true.
	BestOnly bool
	// AzaSkip controls the NONAME-oaza fallback (§4.4 step 4): nil means
	// "auto" (only when no other child matched), true forces it on
	// unconditionally, false disables it entirely.
	AzaSkip *bool
	// RequireCoordinates drops results whose node has no coordinate.
	// Default true.
	RequireCoordinates bool
	// TargetArea restricts results to nodes whose ancestors include one
	// of these prefecture/city names or jisx0401/jisx0402 codes.
	TargetArea []string
	// AutoRedirect is accepted for shape-compatibility with the
	// reference config but is not wired to any behavior: nothing in
	// this engine follows a "ref:" note to a replacement node. The
	// retrieved reference implementation only threads this flag through
	// unused as well. Default true.
	AutoRedirect bool
}

// DefaultConfig returns the configuration defaults from spec §4.6.
func DefaultConfig() Config {
	return Config{
		BestOnly:           true,
		AzaSkip:            nil,
		RequireCoordinates: true,
		TargetArea:         nil,
		AutoRedirect:       true,
	}
}
