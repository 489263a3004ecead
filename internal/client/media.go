package client

import (
	"context"

	"github.com/samber/lo"

	"github.com/catdl/catdl/internal/models"
)

// LookupMedia fetches the media description of one episode.
func (c *client) LookupMedia(ctx context.Context, episodeID int) (*models.MediaLookup, error) {
	req, err := c.endpoints.EpisodeMedia(ctx, episodeID)
	if err != nil {
		return nil, err
	}

	var response models.MediaResponse
	if err := getJSON(c.apiClient, req, endpointMedia, &response); err != nil {
		return nil, err
	}

	return &models.MediaLookup{
		Candidates: lo.Map(response.Media.URL, func(u models.MediaURL, _ int) models.MediaCandidate {
			return models.MediaCandidate{
				URL:     u.File,
				Label:   u.Label,
				Active:  u.Active,
				Quality: models.ParseQuality(u.Label),
			}
		}),
		Subtitles: lo.Map(response.Subtitols, func(s models.Subtitol, _ int) models.SubtitleEntry {
			return models.SubtitleEntry{URL: s.URL, Language: s.ISO}
		}),
	}, nil
}
