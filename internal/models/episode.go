package models

import "github.com/samber/mo"

// CatalogEntry is an episode as listed by the catalog, before its media is resolved.
type CatalogEntry struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	EpisodeNumber int    `json:"episodeNumber"`
	ShowName      string `json:"showName"`
}

// ResolvedEpisode is a catalog entry together with the media locations found for it.
// VideoURL is absent when the provider had no active candidate; SubtitleURL may never exist.
type ResolvedEpisode struct {
	Entry       CatalogEntry
	VideoURL    mo.Option[string]
	SubtitleURL mo.Option[string]
}

// NewResolvedEpisode builds a ResolvedEpisode from an entry and optional URLs.
func NewResolvedEpisode(entry CatalogEntry, videoURL, subtitleURL mo.Option[string]) ResolvedEpisode {
	return ResolvedEpisode{
		Entry:       entry,
		VideoURL:    videoURL,
		SubtitleURL: subtitleURL,
	}
}
