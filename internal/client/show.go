package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/catdl/catdl/internal/apperrors"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/parser"
)

// ResolveShowID fetches the public show page for slug and extracts its program id.
// A missing page or a page without a program id yields *apperrors.ErrNotFound.
func (c *client) ResolveShowID(ctx context.Context, slug string) (int, error) {
	logger := config.GetLogger()

	req, err := c.endpoints.ShowPage(ctx, slug)
	if err != nil {
		return 0, err
	}

	logger.Debug().Str("slug", slug).Str("url", req.URL.String()).Msg("Resolving show id")

	resp, err := do(c.apiClient, req, endpointShow)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, apperrors.NewShowNotFoundError(slug)
	case resp.StatusCode != http.StatusOK:
		return 0, fmt.Errorf("show page returned status %d", resp.StatusCode)
	}

	id, err := c.showIDParser.Parse(resp.Body, resp.Header.Get("Content-Type"))
	if errors.Is(err, parser.ErrShowIDNotFound) {
		return 0, apperrors.NewShowNotFoundError(slug)
	}
	if err != nil {
		return 0, err
	}

	logger.Info().Str("slug", slug).Int("id", id).Msg("Resolved show id")
	return id, nil
}
