package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/models"
)

// FakeCatalog describes the content served by NewCatalogServer.
// This is a test helper and should not be used in production code.
type FakeCatalog struct {
	Slug   string
	ShowID int

	// Seasons maps a season number to its listing; missing seasons are served empty.
	Seasons map[int][]models.CatalogItem
	// Media maps an episode id to its media payload.
	Media map[int]models.MediaResponse
	// Files maps a path under /files/ to its content.
	Files map[string]string

	// SeasonStatus and MediaStatus force an HTTP status for a season or an episode.
	SeasonStatus map[int]int
	MediaStatus  map[int]int
	// RawMedia replaces the JSON body served for an episode.
	RawMedia map[int]string

	mu             sync.Mutex
	seasonRequests []int
	mediaRequests  []int
	fileRequests   []string
}

// NewCatalogServer starts an httptest server emulating the show page, catalog listing,
// media lookup and file hosting endpoints. The server is closed when the test ends.
func NewCatalogServer(t testing.TB, fc *FakeCatalog) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/3cat/", fc.serveShowPage)
	mux.HandleFunc("/api/3cat/dades/", fc.serveListing)
	mux.HandleFunc("/pvideo/media.jsp", fc.serveMedia)
	mux.HandleFunc("/files/", fc.serveFile)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// Config returns a configuration pointing every endpoint at server.
func Config(server *httptest.Server) *config.Config {
	cfg := &config.Config{
		SiteBaseURL:    server.URL,
		CatalogBaseURL: server.URL + "/api/3cat/dades/",
		VideosAPIURL:   "https://api.3cat.cat/videos",
		MediaBaseURL:   server.URL,
		APITimeout:     "10s",
		ClientTimeout:  "10s",
	}
	cfg.Catalog.MaxSeasons = config.DefaultMaxSeasons
	cfg.Catalog.PageSize = 1000
	cfg.Download.VideoExtension = "mp4"
	cfg.Download.SubtitleExtension = "vtt"
	return cfg
}

// FileURL returns the URL under which server serves FakeCatalog.Files[name].
func FileURL(server *httptest.Server, name string) string {
	return server.URL + "/files/" + name
}

// SeasonRequests returns the season numbers requested so far, in order.
func (fc *FakeCatalog) SeasonRequests() []int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]int(nil), fc.seasonRequests...)
}

// MediaRequests returns the episode ids looked up so far, in order.
func (fc *FakeCatalog) MediaRequests() []int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]int(nil), fc.mediaRequests...)
}

// FileRequests returns the file names downloaded so far, in order.
func (fc *FakeCatalog) FileRequests() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return append([]string(nil), fc.fileRequests...)
}

func (fc *FakeCatalog) serveShowPage(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(strings.TrimPrefix(r.URL.Path, "/3cat/"), "/")
	if slug != fc.Slug {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w, `<html><body><main data-programatv-id="%d"><h1>%s</h1></main></body></html>`, fc.ShowID, slug)
}

func (fc *FakeCatalog) serveListing(w http.ResponseWriter, r *http.Request) {
	var queryKey []json.RawMessage
	if err := json.Unmarshal([]byte(r.URL.Query().Get("queryKey")), &queryKey); err != nil || len(queryKey) != 2 {
		http.Error(w, "bad queryKey", http.StatusBadRequest)
		return
	}
	var module struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(queryKey[1], &module); err != nil {
		http.Error(w, "bad module", http.StatusBadRequest)
		return
	}
	inner, err := url.Parse(module.URL)
	if err != nil {
		http.Error(w, "bad inner url", http.StatusBadRequest)
		return
	}

	season, err := strconv.Atoi(strings.TrimPrefix(inner.Query().Get("temporada"), "PUTEMP_"))
	if err != nil {
		http.Error(w, "bad season", http.StatusBadRequest)
		return
	}

	fc.mu.Lock()
	fc.seasonRequests = append(fc.seasonRequests, season)
	fc.mu.Unlock()

	if status, ok := fc.SeasonStatus[season]; ok {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"codi":500,"missatge":"error intern"}`))
		return
	}

	var response models.CatalogResponse
	if inner.Query().Get("programatv_id") == strconv.Itoa(fc.ShowID) {
		response.Resposta.Items.Item = fc.Seasons[season]
	}
	if response.Resposta.Items.Item == nil {
		response.Resposta.Items.Item = []models.CatalogItem{}
	}
	response.Resposta.Status = "OK"

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(response)
}

func (fc *FakeCatalog) serveMedia(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("idint"))
	if err != nil {
		http.Error(w, "bad idint", http.StatusBadRequest)
		return
	}

	fc.mu.Lock()
	fc.mediaRequests = append(fc.mediaRequests, id)
	fc.mu.Unlock()

	if status, ok := fc.MediaStatus[id]; ok {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if raw, ok := fc.RawMedia[id]; ok {
		_, _ = w.Write([]byte(raw))
		return
	}
	media, ok := fc.Media[id]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"codi":404,"missatge":"no existeix"}`))
		return
	}
	_ = json.NewEncoder(w).Encode(media)
}

func (fc *FakeCatalog) serveFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/files/")

	fc.mu.Lock()
	fc.fileRequests = append(fc.fileRequests, name)
	fc.mu.Unlock()

	content, ok := fc.Files[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(content))
}

// Media builds a media payload from (url, active) pairs and subtitle URLs.
func Media(candidates []models.MediaURL, subtitles ...string) models.MediaResponse {
	var response models.MediaResponse
	response.Media.Format = "MP4"
	response.Media.URL = candidates
	for _, s := range subtitles {
		response.Subtitols = append(response.Subtitols, models.Subtitol{Text: "Català", ISO: "ca", URL: s, Format: "vtt"})
	}
	return response
}
