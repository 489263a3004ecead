package models

// MediaCandidate is one playable location offered for an episode.
// Inactive candidates are expired or decoys and must never be downloaded.
type MediaCandidate struct {
	URL     string
	Label   string
	Active  bool
	Quality Quality
}

// SubtitleEntry is one subtitle track offered for an episode.
type SubtitleEntry struct {
	URL      string
	Language string
}

// MediaLookup is the provider-independent result of a per-episode media lookup.
// Both slices keep the order returned by the provider.
type MediaLookup struct {
	Candidates []MediaCandidate
	Subtitles  []SubtitleEntry
}
