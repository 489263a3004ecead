package parser

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/catdl/catdl/internal/config"
)

// ErrShowIDNotFound is returned when a show page carries no program identifier.
var ErrShowIDNotFound = errors.New("program id not found in show page")

var nextDataProgramID = regexp.MustCompile(`"programatv_id"\s*:\s*"?(\d+)`)

// ShowIDParser extracts the numeric program id from a 3cat show page
type ShowIDParser struct{}

// NewShowIDParser creates a new show id parser instance
func NewShowIDParser() *ShowIDParser {
	return &ShowIDParser{}
}

// Parse reads the show page HTML and returns its program id.
// It checks, in order, data attributes on the page, the programatv_id meta tag and the
// embedded __NEXT_DATA__ JSON.
func (p *ShowIDParser) Parse(body io.Reader, contentType string) (int, error) {
	logger := config.GetLogger()

	utf8Body, err := NewUTF8Reader(body, contentType)
	if err != nil {
		return 0, fmt.Errorf("failed to decode charset: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(utf8Body)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to parse HTML document")
		return 0, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, attr := range []string{"data-programatv-id", "data-program-id"} {
		if value, ok := doc.Find("[" + attr + "]").First().Attr(attr); ok {
			if id := parseID(value); id > 0 {
				logger.Debug().Str("source", attr).Int("id", id).Msg("Found program id")
				return id, nil
			}
		}
	}

	if value, ok := doc.Find(`meta[name="programatv_id"]`).First().Attr("content"); ok {
		if id := parseID(value); id > 0 {
			logger.Debug().Str("source", "meta").Int("id", id).Msg("Found program id")
			return id, nil
		}
	}

	script := doc.Find(`script#__NEXT_DATA__`).First().Text()
	if match := nextDataProgramID.FindStringSubmatch(script); match != nil {
		if id := parseID(match[1]); id > 0 {
			logger.Debug().Str("source", "next_data").Int("id", id).Msg("Found program id")
			return id, nil
		}
	}

	return 0, ErrShowIDNotFound
}

func parseID(value string) int {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
