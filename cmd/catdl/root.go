package main

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/catdl/catdl/internal/catalog"
	"github.com/catdl/catdl/internal/client"
	"github.com/catdl/catdl/internal/config"
	"github.com/catdl/catdl/internal/downloader"
	"github.com/catdl/catdl/internal/metrics"
	"github.com/catdl/catdl/internal/pipeline"
	"github.com/catdl/catdl/internal/resolver"
)

// newRootCommand builds the catdl command. Configuration is read into v and episodes are
// written to fs.
func newRootCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	var (
		opts       pipeline.Options
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "catdl",
		Short: "Download every episode of a 3cat TV show",
		Long: "Download every episode of a 3cat TV show, with its subtitle when there is one.\n" +
			"Episodes whose video file already exists in the destination directory are skipped.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Setup(v, configFile)
			if err != nil {
				return err
			}
			_, err = run(cmd.Context(), cfg, fs, opts)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Slug, "tv-show-slug", "t", "", "Slug of the show, as in https://www.3cat.cat/3cat/<slug>/")
	flags.StringVarP(&opts.Directory, "directory", "d", "", "Directory the episodes are written to")
	flags.IntVarP(&opts.StartFromEpisode, "start-from-episode", "s", 1, "Skip episodes numbered below this one")
	flags.BoolVar(&opts.KeepGoing, "keep-going", false, "Continue with the next episode when one fails and report all failures at the end")
	flags.Int("max-seasons", config.DefaultMaxSeasons, "Highest season number requested from the catalog")
	flags.StringVar(&configFile, "config", "", "Path to a YAML configuration file")

	lo.Must0(cmd.MarkFlagRequired("tv-show-slug"))
	lo.Must0(cmd.MarkFlagRequired("directory"))
	lo.Must0(v.BindPFlag("catalog.max_seasons", flags.Lookup("max-seasons")))

	cmd.AddCommand(newVersionCommand())
	return cmd
}

// run wires the run stages from cfg and downloads the show described by opts.
func run(ctx context.Context, cfg *config.Config, fs afero.Fs, opts pipeline.Options) (pipeline.Summary, error) {
	logger := config.GetLogger()

	logger.Info().
		Str("slug", opts.Slug).
		Str("directory", opts.Directory).
		Int("start_from_episode", opts.StartFromEpisode).
		Int("max_seasons", cfg.Catalog.MaxSeasons).
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Msg("Application started with configuration")

	flush, err := setupErrorReporting(cfg.Sentry.DSN)
	if err != nil {
		logger.Warn().Err(err).Msg("Error reporting disabled")
	}
	defer flush()

	if cfg.Metrics.Enabled {
		shutdown := metrics.Start(cfg.Metrics.Address, cfg.Metrics.Port, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	httpClient := client.NewClient(cfg)
	runner := pipeline.NewRunner(
		httpClient,
		catalog.NewWalker(httpClient, cfg.Catalog.MaxSeasons),
		resolver.NewResolver(httpClient),
		downloader.NewOrchestrator(fs, httpClient, downloader.Options{
			VideoExtension:    cfg.Download.VideoExtension,
			SubtitleExtension: cfg.Download.SubtitleExtension,
		}),
	)

	summary, err := runner.Run(ctx, opts)
	if err != nil {
		reportError(err)
	}
	return summary, err
}
