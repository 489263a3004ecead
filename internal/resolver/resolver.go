// Package resolver turns catalog entries into resolved episodes by looking up their media.
package resolver

import (
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/catdl/catdl/internal/apperrors"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/models"
)

// MediaLookup fetches the media description of one episode.
type MediaLookup interface {
	LookupMedia(ctx context.Context, episodeID int) (*models.MediaLookup, error)
}

// Resolver selects the video and subtitle locations of catalog entries.
type Resolver struct {
	lookup MediaLookup
}

// NewResolver creates a Resolver backed by lookup.
func NewResolver(lookup MediaLookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve looks up the media of entry and returns it with the selected URLs.
// Finding no active candidate is not an error: the returned episode has no VideoURL.
func (r *Resolver) Resolve(ctx context.Context, entry models.CatalogEntry) (models.ResolvedEpisode, error) {
	logger := config.GetLogger()

	lookup, err := r.lookup.LookupMedia(ctx, entry.ID)
	if err != nil {
		return models.ResolvedEpisode{}, &apperrors.ErrResolution{EpisodeID: entry.ID, Err: err}
	}
	if lookup == nil {
		lookup = &models.MediaLookup{}
	}

	video, subtitle := SelectMedia(lookup)

	event := logger.Debug().
		Int("episodeID", entry.ID).
		Int("episode", entry.EpisodeNumber).
		Int("candidates", len(lookup.Candidates)).
		Bool("hasVideo", video.IsPresent()).
		Bool("hasSubtitle", subtitle.IsPresent())
	if candidate, ok := firstActive(lookup); ok {
		event = event.Str("quality", candidate.Quality.String())
	}
	event.Msg("Resolved episode media")

	return models.NewResolvedEpisode(entry, video, subtitle), nil
}

// SelectMedia picks the first active media candidate and the first subtitle entry.
// Inactive candidates are never selected, even when no active one exists.
func SelectMedia(lookup *models.MediaLookup) (video, subtitle mo.Option[string]) {
	if lookup == nil {
		return mo.None[string](), mo.None[string]()
	}

	video = mo.None[string]()
	if candidate, ok := firstActive(lookup); ok {
		video = mo.Some(candidate.URL)
	}

	subtitle = mo.None[string]()
	if first, ok := lo.First(lookup.Subtitles); ok {
		subtitle = mo.Some(first.URL)
	}

	return video, subtitle
}

func firstActive(lookup *models.MediaLookup) (models.MediaCandidate, bool) {
	return lo.Find(lookup.Candidates, func(c models.MediaCandidate) bool {
		return c.Active
	})
}
