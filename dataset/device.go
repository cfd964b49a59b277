package dataset

import "strings"

// ============================================================================
// DEVICE CANONICALIZATION — raw device codes → friendly display names
// ============================================================================

// deviceAbbrevs maps abbreviation prefixes to full device names.
// Checked in order; first match wins.
var deviceAbbrevs = []struct {
	Prefix string
	Full   string
}{
	{"BL", "Bioness Left"},
	{"BR", "Bioness Right"},
}

// CanonicalDevice rewrites a raw device code into its display form.
//
// A value starting with a known prefix followed by at least one more character
// becomes "<full name> <suffix>" (BL1 → "Bioness Left 1"). A bare prefix with
// no suffix is not an abbreviation and falls through to the underscore rule,
// which replaces every underscore with a space (Bioness_Left → "Bioness Left").
func CanonicalDevice(name string) string {
	for _, a := range deviceAbbrevs {
		if strings.HasPrefix(name, a.Prefix) && len(name) > len(a.Prefix) {
			return a.Full + " " + name[len(a.Prefix):]
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}
