// Package naming turns episode metadata into deterministic, filesystem-safe file names.
package naming

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/catdl/catdl/internal/models"
)

// OVAPrefix marks out-of-continuity specials that the catalog numbers inside a regular season.
const OVAPrefix = "ova_"

var (
	invalidChars  = regexp.MustCompile(`[^a-z0-9\s-]`)
	separatorRuns = regexp.MustCompile(`[\s-]+`)
	// The catalog often repeats the episode number in the title as "Capítol 12 - ...".
	chapterMarker = regexp.MustCompile(`^capitol_(?:[0-9]+)?_?`)
)

// Filename returns "[ova_]<episode_number>_<cleaned_title>.<extension>" for entry.
// It never fails: a title that cleans down to nothing yields "<episode_number>_.<extension>".
func Filename(entry models.CatalogEntry, extension string) string {
	title := CleanTitle(entry.Title)

	prefix := ""
	if IsOVA(entry.ShowName) {
		prefix = OVAPrefix
	}

	return fmt.Sprintf("%s%d_%s.%s", prefix, entry.EpisodeNumber, title, extension)
}

// CleanTitle lowercases, transliterates and reduces title to [a-z0-9_], with single
// underscores between words and none at either end. A leading "capitol_<n>_" marker is removed.
// Leading digits are only removed as part of that marker, so a title such as "1984" is kept.
func CleanTitle(title string) string {
	// Transliteration can reintroduce capitals: 北 becomes "Bei".
	cleaned := strings.ToLower(Transliterate(strings.ToLower(title)))
	cleaned = invalidChars.ReplaceAllString(cleaned, "")
	cleaned = separatorRuns.ReplaceAllString(cleaned, "_")
	cleaned = strings.Trim(cleaned, "_")
	return chapterMarker.ReplaceAllString(cleaned, "")
}

// IsOVA reports whether the show name carries the OVA marker, ignoring case.
func IsOVA(showName string) bool {
	return strings.Contains(strings.ToLower(showName), "ova")
}
