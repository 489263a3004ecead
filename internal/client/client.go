package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/models"
	"github.com/catdl/catdl/internal/parser"
)

// Client defines the interface for talking to the 3cat catalog, media API and file hosts
type Client interface {
	// ResolveShowID maps a show slug to its numeric program id.
	ResolveShowID(ctx context.Context, slug string) (int, error)

	// ListSeason returns the episodes of one season in catalog order.
	// An empty slice means the season does not exist.
	ListSeason(ctx context.Context, showID, season int) ([]models.CatalogEntry, error)

	// LookupMedia returns the media candidates and subtitle tracks of one episode.
	LookupMedia(ctx context.Context, episodeID int) (*models.MediaLookup, error)

	// Fetch opens a streaming GET of rawURL. The caller must close the body.
	Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// client implements the Client interface
type client struct {
	apiClient      *http.Client
	transferClient *http.Client
	endpoints      Endpoints
	showIDParser   *parser.ShowIDParser
}

// NewClient creates a new client instance with proxy configuration if provided
func NewClient(cfg *config.Config) Client {
	logger := config.GetLogger()

	apiTimeout := parseTimeout(cfg.APITimeout, 30*time.Second)
	// Video transfers can legitimately take a long time, so they have no timeout unless configured
	transferTimeout := parseTimeout(cfg.ClientTimeout, 0)

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			// Log error but continue without proxy
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	transport := newCompressionTransport(baseTransport)

	return &client{
		apiClient:      &http.Client{Timeout: apiTimeout, Transport: transport},
		transferClient: &http.Client{Timeout: transferTimeout, Transport: transport},
		endpoints: Endpoints{
			Site:      cfg.SiteBaseURL,
			Catalog:   cfg.CatalogBaseURL,
			VideosAPI: cfg.VideosAPIURL,
			Media:     cfg.MediaBaseURL,
			PageSize:  cfg.Catalog.PageSize,
		},
		showIDParser: parser.NewShowIDParser(),
	}
}

// parseTimeout parses a Go duration string, falling back to def when empty or invalid
func parseTimeout(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str("timeout", value).Dur("default", def).Msg("Invalid timeout duration, using default")
		return def
	}
	return parsed
}
