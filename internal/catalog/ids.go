package catalog

import "strings"

const imdbPrefix = "tt"

// imdbDigits is the minimum digit count of an IMDb title ID.
const imdbDigits = 7

// NormalizeID turns a raw movie ID into OMDb's native form. IDs already
// carrying the "tt" prefix are kept; anything else is zero-padded to seven
// digits and prefixed ("603" -> "tt0000603").
func NormalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if len(id) >= 2 && strings.EqualFold(id[:2], imdbPrefix) {
		return imdbPrefix + id[2:]
	}
	if n := imdbDigits - len(id); n > 0 {
		id = strings.Repeat("0", n) + id
	}
	return imdbPrefix + id
}
