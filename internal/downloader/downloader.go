// Package downloader materializes resolved episodes as files in a destination directory.
package downloader

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/catdl/catdl/internal/apperrors"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/metrics"
	"github.com/catdl/catdl/internal/models"
	"github.com/catdl/catdl/internal/naming"
)

// Fetcher opens a byte stream for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (io.ReadCloser, error)
}

// Outcome describes what Materialize did with an episode.
type Outcome int

const (
	// OutcomeSkipped means the video file already existed and nothing was fetched.
	OutcomeSkipped Outcome = iota
	// OutcomeDownloaded means the video, and the subtitle when there is one, were written.
	OutcomeDownloaded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeDownloaded:
		return "downloaded"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Options configures file extensions.
type Options struct {
	VideoExtension    string
	SubtitleExtension string
}

// Orchestrator downloads episode files, skipping episodes whose video is already on disk.
type Orchestrator struct {
	fs          afero.Fs
	fetcher     Fetcher
	videoExt    string
	subtitleExt string
}

// NewOrchestrator creates an Orchestrator writing to fs. Empty extensions default to mp4 and vtt.
func NewOrchestrator(fs afero.Fs, fetcher Fetcher, opts Options) *Orchestrator {
	if opts.VideoExtension == "" {
		opts.VideoExtension = "mp4"
	}
	if opts.SubtitleExtension == "" {
		opts.SubtitleExtension = "vtt"
	}
	return &Orchestrator{
		fs:          fs,
		fetcher:     fetcher,
		videoExt:    opts.VideoExtension,
		subtitleExt: opts.SubtitleExtension,
	}
}

// VideoPath returns where the video of entry is stored inside directory.
func (o *Orchestrator) VideoPath(directory string, entry models.CatalogEntry) string {
	return filepath.Join(directory, naming.Filename(entry, o.videoExt))
}

// SubtitlePath returns where the subtitle of entry is stored inside directory.
func (o *Orchestrator) SubtitlePath(directory string, entry models.CatalogEntry) string {
	return filepath.Join(directory, naming.Filename(entry, o.subtitleExt))
}

// Materialize writes the video of ep, then its subtitle if it has one, into directory.
//
// An existing video file is the only completeness signal: the episode is skipped without any
// request and the subtitle is not checked. Its size is not verified, so a file left truncated by
// an earlier failed run also counts as present.
func (o *Orchestrator) Materialize(ctx context.Context, ep models.ResolvedEpisode, directory string) (Outcome, error) {
	logger := config.GetLogger()
	videoPath := o.VideoPath(directory, ep.Entry)

	exists, err := afero.Exists(o.fs, videoPath)
	if err != nil {
		return OutcomeSkipped, &apperrors.ErrDownload{Kind: apperrors.KindVideo, Path: videoPath, Err: err}
	}
	if exists {
		logger.Info().Int("episode", ep.Entry.EpisodeNumber).Str("path", videoPath).Msg("Episode already exists")
		return OutcomeSkipped, nil
	}

	videoURL, ok := ep.VideoURL.Get()
	if !ok {
		return OutcomeSkipped, &apperrors.ErrMissingVideoURL{Filename: filepath.Base(videoPath)}
	}

	if err := o.fs.MkdirAll(directory, 0o755); err != nil {
		return OutcomeSkipped, &apperrors.ErrDownload{Kind: apperrors.KindVideo, URL: videoURL, Path: videoPath, Err: err}
	}

	if err := o.transfer(ctx, apperrors.KindVideo, videoURL, videoPath); err != nil {
		return OutcomeSkipped, err
	}
	logger.Info().Int("episode", ep.Entry.EpisodeNumber).Str("path", videoPath).Msg("Downloaded video")

	if subtitleURL, ok := ep.SubtitleURL.Get(); ok {
		subtitlePath := o.SubtitlePath(directory, ep.Entry)
		if err := o.transfer(ctx, apperrors.KindSubtitle, subtitleURL, subtitlePath); err != nil {
			return OutcomeSkipped, err
		}
		logger.Info().Int("episode", ep.Entry.EpisodeNumber).Str("path", subtitlePath).Msg("Downloaded subtitle")
	}

	return OutcomeDownloaded, nil
}

// transfer streams rawURL into path. A failure may leave a partial file behind.
func (o *Orchestrator) transfer(ctx context.Context, kind, rawURL, path string) error {
	logger := config.GetLogger()
	fail := func(err error) error {
		return &apperrors.ErrDownload{Kind: kind, URL: rawURL, Path: path, Err: err}
	}

	logger.Debug().Str("kind", kind).Str("url", rawURL).Str("path", path).Msg("Starting transfer")

	body, err := o.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return fail(err)
	}
	defer body.Close()

	file, err := o.fs.Create(path)
	if err != nil {
		return fail(err)
	}

	written, copyErr := io.Copy(file, body)
	metrics.DownloadedBytesTotal.WithLabelValues(kind).Add(float64(written))
	closeErr := file.Close()

	if copyErr != nil {
		return fail(copyErr)
	}
	if closeErr != nil {
		return fail(closeErr)
	}

	logger.Debug().Str("kind", kind).Str("path", path).Int64("bytes", written).Msg("Transfer complete")
	return nil
}
