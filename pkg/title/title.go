// Package title normalizes movie titles and scores how closely they match.
package title

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanPattern matches II-IX after a space. A bare "I" or "X" and a leading
// numeral are left alone ("I, Robot", "Malcolm X", "VII Days").
var romanPattern = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanDigits = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var leadingArticles = []string{"the ", "a ", "an "}

// Clean reduces a title to a comparable form: lower case, no accents,
// no punctuation, no leading articles, Roman numerals as digits.
func Clean(s string) string {
	s = strings.ToLower(s)
	s = romanPattern.ReplaceAllStringFunc(s, func(m string) string {
		if d, ok := romanDigits[strings.TrimSpace(m)]; ok {
			return " " + d
		}
		return m
	})
	s = Fold(s)

	s = strings.NewReplacer("&", " and ", "-", " ", "'", "", ".", " ").Replace(s)

	// "Léon: The Professional" -> each colon part loses its article
	parts := strings.Split(s, ":")
	for i, p := range parts {
		parts[i] = trimArticle(strings.TrimSpace(p))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Fold strips combining marks so "Amélie" and "Amelie" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func trimArticle(s string) string {
	for _, a := range leadingArticles {
		if strings.HasPrefix(s, a) {
			return strings.TrimPrefix(s, a)
		}
	}
	return s
}
