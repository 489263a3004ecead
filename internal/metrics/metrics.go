package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Episode outcomes
const (
	OutcomeSkippedBelowStart = "skipped_below_start"
	OutcomeSkippedExisting   = "skipped_existing"
	OutcomeDownloaded        = "downloaded"
	OutcomeFailed            = "failed"
)

// Run metrics
var (
	EpisodesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catdl_episodes_total",
			Help: "Total number of episodes processed, by outcome.",
		},
		[]string{"outcome"},
	)

	DownloadedBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catdl_downloaded_bytes_total",
			Help: "Total number of bytes written to disk, by file kind.",
		},
		[]string{"kind"},
	)

	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catdl_api_requests_total",
			Help: "Total number of provider API requests, by endpoint and status.",
		},
		[]string{"endpoint", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		EpisodesTotal,
		DownloadedBytesTotal,
		APIRequestsTotal,
	)
}
