package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
)

const flushTimeout = 2 * time.Second

// Init configures Sentry error reporting when a DSN is set.
// The returned flush func must be called before exit; it is a no-op when reporting is disabled.
func Init(cfg *config.Config, release string) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     release,
	})
	if err != nil {
		return func() {}, err
	}

	logger := config.GetLogger()
	logger.Info().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")
	return func() { sentry.Flush(flushTimeout) }, nil
}

// CaptureError reports err with the given tags. Without Init it does nothing.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}
