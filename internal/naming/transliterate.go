package naming

import (
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transliterate folds s to plain ASCII. Diacritics are stripped first, then every remaining
// rune is spelled out with its closest ASCII rendering: Unicode spaces become ' ', dashes
// become '-', and letters such as ß or æ are expanded. Runes without a rendering are dropped.
func Transliterate(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return unidecode.Unidecode(stripped)
}
