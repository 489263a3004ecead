package main

import (
	"time"

	"github.com/getsentry/sentry-go"
)

const sentryFlushTimeout = 2 * time.Second

// setupErrorReporting enables Sentry when dsn is set. The returned function flushes pending
// events and is safe to call when reporting is disabled.
func setupErrorReporting(dsn string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: "catdl@" + version,
	}); err != nil {
		return func() {}, err
	}

	return func() {
		sentry.Flush(sentryFlushTimeout)
	}, nil
}

// reportError sends err to Sentry. It does nothing when Sentry was not initialized.
func reportError(err error) {
	sentry.CaptureException(err)
}
