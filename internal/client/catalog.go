package client

import (
	"context"

	"github.com/samber/lo"

	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/models"
)

// ListSeason fetches the catalog listing of one season of a show.
func (c *client) ListSeason(ctx context.Context, showID, season int) ([]models.CatalogEntry, error) {
	logger := config.GetLogger()

	req, err := c.endpoints.SeasonListing(ctx, showID, season)
	if err != nil {
		return nil, err
	}

	var response models.CatalogResponse
	if err := getJSON(c.apiClient, req, endpointCatalog, &response); err != nil {
		return nil, err
	}

	entries := lo.Map(response.Resposta.Items.Item, func(item models.CatalogItem, _ int) models.CatalogEntry {
		return models.CatalogEntry{
			ID:            item.ID,
			Title:         item.Titol,
			EpisodeNumber: item.Capitol,
			ShowName:      item.Programa,
		}
	})

	logger.Debug().Int("showID", showID).Int("season", season).Int("episodes", len(entries)).Msg("Fetched season listing")
	return entries, nil
}
