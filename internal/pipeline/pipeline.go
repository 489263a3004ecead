// Package pipeline sequences a download run: show lookup, catalog walk, then per-episode
// resolution and download.
package pipeline

import (
	"context"
	"errors"

	"github.com/catdl/catdl/internal/apperrors"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/downloader"
	"github.com/catdl/catdl/internal/metrics"
	"github.com/catdl/catdl/internal/models"
)

// ShowLookup maps a show slug to its numeric id.
type ShowLookup interface {
	ResolveShowID(ctx context.Context, slug string) (int, error)
}

// EpisodeLister lists every catalog entry of a show.
type EpisodeLister interface {
	ListEpisodes(ctx context.Context, showID int) ([]models.CatalogEntry, error)
}

// EpisodeResolver resolves the media locations of a catalog entry.
type EpisodeResolver interface {
	Resolve(ctx context.Context, entry models.CatalogEntry) (models.ResolvedEpisode, error)
}

// Materializer writes a resolved episode to a directory.
type Materializer interface {
	Materialize(ctx context.Context, ep models.ResolvedEpisode, directory string) (downloader.Outcome, error)
}

// Options describes one run.
type Options struct {
	Slug             string
	Directory        string
	StartFromEpisode int
	// KeepGoing continues past per-episode failures and reports them all at the end.
	// Show and catalog lookup failures always abort.
	KeepGoing bool
}

// Summary counts what a run did.
type Summary struct {
	Show              models.Show
	Listed            int
	SkippedBelowStart int
	SkippedExisting   int
	Downloaded        int
	Failed            int
}

// Runner executes download runs. Episodes are processed strictly one after the other.
type Runner struct {
	shows        ShowLookup
	episodes     EpisodeLister
	resolver     EpisodeResolver
	materializer Materializer
}

// NewRunner wires the stages of a run.
func NewRunner(shows ShowLookup, episodes EpisodeLister, resolver EpisodeResolver, materializer Materializer) *Runner {
	return &Runner{
		shows:        shows,
		episodes:     episodes,
		resolver:     resolver,
		materializer: materializer,
	}
}

// Run downloads every episode of opts.Slug numbered at least opts.StartFromEpisode into
// opts.Directory. The returned Summary is filled in as far as the run got, also on error.
func (r *Runner) Run(ctx context.Context, opts Options) (Summary, error) {
	logger := config.GetLogger()
	summary := Summary{Show: models.Show{Slug: opts.Slug}}

	showID, err := r.shows.ResolveShowID(ctx, opts.Slug)
	if err != nil {
		var lookupErr *apperrors.ErrLookup
		if errors.As(err, &lookupErr) {
			return summary, err
		}
		return summary, &apperrors.ErrLookup{Stage: apperrors.StageShow, Err: err}
	}
	summary.Show.ID = showID

	entries, err := r.episodes.ListEpisodes(ctx, showID)
	if err != nil {
		return summary, err
	}
	summary.Listed = len(entries)
	logger.Info().Str("slug", opts.Slug).Int("showID", showID).Int("episodes", len(entries)).Msg("Catalog listed")

	var failures []error
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, errors.Join(append(failures, err)...)
		}

		if entry.EpisodeNumber < opts.StartFromEpisode {
			logger.Info().Int("episode", entry.EpisodeNumber).Str("title", entry.Title).Msg("Skipping episode")
			summary.SkippedBelowStart++
			metrics.EpisodesTotal.WithLabelValues(metrics.OutcomeSkippedBelowStart).Inc()
			continue
		}

		outcome, err := r.process(ctx, entry, opts.Directory)
		if err != nil {
			summary.Failed++
			metrics.EpisodesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
			if !opts.KeepGoing {
				return summary, err
			}
			logger.Error().Err(err).Int("episode", entry.EpisodeNumber).Str("title", entry.Title).Msg("Episode failed, continuing")
			failures = append(failures, err)
			continue
		}

		switch outcome {
		case downloader.OutcomeSkipped:
			summary.SkippedExisting++
			metrics.EpisodesTotal.WithLabelValues(metrics.OutcomeSkippedExisting).Inc()
		case downloader.OutcomeDownloaded:
			summary.Downloaded++
			metrics.EpisodesTotal.WithLabelValues(metrics.OutcomeDownloaded).Inc()
		}
	}

	logger.Info().
		Int("downloaded", summary.Downloaded).
		Int("existing", summary.SkippedExisting).
		Int("belowStart", summary.SkippedBelowStart).
		Int("failed", summary.Failed).
		Msg("Run finished")

	return summary, errors.Join(failures...)
}

func (r *Runner) process(ctx context.Context, entry models.CatalogEntry, directory string) (downloader.Outcome, error) {
	ep, err := r.resolver.Resolve(ctx, entry)
	if err != nil {
		return downloader.OutcomeSkipped, err
	}
	return r.materializer.Materialize(ctx, ep, directory)
}
