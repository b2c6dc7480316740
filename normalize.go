package coursedump

import "strings"

// NormalizeTitle returns the canonical form of a display title used for
// re-identifying lesson cards across page re-renders: case-folded with all
// interior whitespace runs collapsed to single spaces. The operation is
// idempotent, so titles already normalized pass through unchanged.
func NormalizeTitle(s string) string {
	return strings.ToLower(CollapseSpace(s))
}

// CollapseSpace trims s and collapses every run of whitespace (including
// newlines and non-breaking tabs) to a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TitlesEqual reports whether two display titles refer to the same lesson
// under the normalization rules.
func TitlesEqual(a, b string) bool {
	return NormalizeTitle(a) == NormalizeTitle(b)
}
