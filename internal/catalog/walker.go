// Package catalog walks the seasons of a show and collects its episode listing.
package catalog

import (
	"context"

	"github.com/catdl/catdl/internal/apperrors"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/models"
)

// SeasonLister lists the episodes of one season. An empty result means the season does not exist.
type SeasonLister interface {
	ListSeason(ctx context.Context, showID, season int) ([]models.CatalogEntry, error)
}

// Walker collects every episode of a show, season by season.
type Walker struct {
	lister     SeasonLister
	maxSeasons int
}

// NewWalker creates a Walker that requests at most maxSeasons seasons.
// A non-positive maxSeasons uses config.DefaultMaxSeasons.
func NewWalker(lister SeasonLister, maxSeasons int) *Walker {
	if maxSeasons <= 0 {
		maxSeasons = config.DefaultMaxSeasons
	}
	return &Walker{lister: lister, maxSeasons: maxSeasons}
}

// ListEpisodes requests seasons 1, 2, ... until one comes back empty or the season ceiling is
// reached. Episodes keep the catalog order within a season and seasons are concatenated in order.
// Any failed season aborts the listing with *apperrors.ErrLookup; no partial result is returned.
func (w *Walker) ListEpisodes(ctx context.Context, showID int) ([]models.CatalogEntry, error) {
	logger := config.GetLogger()

	var episodes []models.CatalogEntry
	for season := 1; season <= w.maxSeasons; season++ {
		entries, err := w.lister.ListSeason(ctx, showID, season)
		if err != nil {
			return nil, &apperrors.ErrLookup{
				Stage:  apperrors.StageCatalog,
				ShowID: showID,
				Season: season,
				Err:    err,
			}
		}

		if len(entries) == 0 {
			logger.Debug().Int("showID", showID).Int("season", season).Msg("Empty season, catalog exhausted")
			break
		}

		logger.Info().Int("showID", showID).Int("season", season).Int("episodes", len(entries)).Msg("Listed season")
		episodes = append(episodes, entries...)

		if season == w.maxSeasons {
			logger.Warn().Int("showID", showID).Int("maxSeasons", w.maxSeasons).Msg("Reached season ceiling, later seasons are not listed")
		}
	}

	return episodes, nil
}
