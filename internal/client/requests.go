package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/catdl/catdl/internal/config"
)

// Endpoints holds the provider base URLs and builds every request the client sends.
type Endpoints struct {
	Site      string // show pages, e.g. https://www.3cat.cat
	Catalog   string // listing proxy, e.g. https://www.3cat.cat/api/3cat/dades/
	VideosAPI string // inner listing API wrapped by the proxy, e.g. https://api.3cat.cat/videos
	Media     string // per-episode media lookups, e.g. https://dinamics.ccma.cat
	PageSize  int
}

// listingQueryKey is the second element of the listing proxy's queryKey array
type listingQueryKey struct {
	URL        string `json:"url"`
	ModuleName string `json:"moduleName"`
}

// ShowPage builds the request for the public page of the show identified by slug.
func (e Endpoints) ShowPage(ctx context.Context, slug string) (*http.Request, error) {
	pageURL, err := url.Parse(e.Site)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL: %w", err)
	}
	pageURL = pageURL.JoinPath("3cat", slug)
	pageURL.Path += "/"

	return newRequest(ctx, pageURL.String(), "text/html")
}

// SeasonListing builds the request listing every episode of one season of a show.
func (e Endpoints) SeasonListing(ctx context.Context, showID, season int) (*http.Request, error) {
	inner, err := url.Parse(e.VideosAPI)
	if err != nil {
		return nil, fmt.Errorf("invalid videos API URL: %w", err)
	}

	query := inner.Query()
	query.Set("_format", "json")
	query.Set("ordre", "capitol")
	query.Set("origen", "llistat")
	query.Set("perfil", "pc")
	query.Set("programatv_id", strconv.Itoa(showID))
	query.Set("tipus_contingut", "PPD")
	query.Set("items_pagina", strconv.Itoa(e.pageSize()))
	query.Set("pagina", "1")
	query.Set("sdom", "img")
	query.Set("version", "2.0")
	query.Set("cache", "180")
	query.Set("temporada", fmt.Sprintf("PUTEMP_%d", season))
	query.Set("https", "true")
	query.Set("master", "yes")
	query.Set("perfils_extra", "imatges_minim_master")
	inner.RawQuery = query.Encode()

	queryKey, err := encodeQueryKey("tira", listingQueryKey{URL: inner.String(), ModuleName: "BlocDeContinguts"})
	if err != nil {
		return nil, err
	}

	outer, err := url.Parse(e.Catalog)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}
	outerQuery := outer.Query()
	outerQuery.Set("queryKey", queryKey)
	outer.RawQuery = outerQuery.Encode()

	return newRequest(ctx, outer.String(), "application/json")
}

// EpisodeMedia builds the media lookup request for one episode.
func (e Endpoints) EpisodeMedia(ctx context.Context, episodeID int) (*http.Request, error) {
	mediaURL, err := url.Parse(e.Media)
	if err != nil {
		return nil, fmt.Errorf("invalid media URL: %w", err)
	}
	mediaURL = mediaURL.JoinPath("pvideo", "media.jsp")

	query := mediaURL.Query()
	query.Set("media", "video")
	query.Set("version", "0s")
	query.Set("idint", strconv.Itoa(episodeID))
	mediaURL.RawQuery = query.Encode()

	return newRequest(ctx, mediaURL.String(), "application/json")
}

func (e Endpoints) pageSize() int {
	if e.PageSize <= 0 {
		return 1000
	}
	return e.PageSize
}

// encodeQueryKey renders the JSON array the listing proxy expects, without HTML escaping
// so the wrapped URL keeps its literal '&'.
func encodeQueryKey(parts ...any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(parts); err != nil {
		return "", fmt.Errorf("encode query key: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func newRequest(ctx context.Context, rawURL, accept string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	// Set user agent to avoid being blocked
	req.Header.Set("User-Agent", config.GetUserAgent())
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return req, nil
}
