package cli

import (
	"fmt"
	"time"

	"github.com/Belphemur/YouTubeTranscript/internal/cache"
	"github.com/Belphemur/YouTubeTranscript/internal/client"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/services"
	"github.com/Belphemur/YouTubeTranscript/internal/ytdlp"
)

// App holds the wired transcript service and the resources to release on exit.
type App struct {
	Service services.TranscriptService
	closers []func() error
}

// NewApp wires the downloader, the optional metadata cache and the configured subtitle source.
func NewApp(cfg *config.Config) (*App, error) {
	logger := config.GetLogger()
	app := &App{}

	runner := ytdlp.NewRunnerFromConfig(cfg)
	var metadata services.MetadataProvider = ytdlp.NewMetadataProvider(runner)

	if cfg.Cache.Enabled {
		c, err := cache.New(cfg.Cache.Provider, cache.ProviderConfig{
			Size:          cfg.Cache.Size,
			TTL:           config.ParseDuration("cache.ttl", cfg.Cache.TTL, time.Hour),
			Logger:        logger,
			RedisAddress:  cfg.Cache.Redis.Address,
			RedisPassword: cfg.Cache.Redis.Password,
			RedisDB:       cfg.Cache.Redis.DB,
			Group:         "metadata",
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s metadata cache: %w", cfg.Cache.Provider, err)
		}
		cached := services.NewCachedMetadataProvider(metadata, c)
		app.closers = append(app.closers, cached.Close)
		metadata = cached
		logger.Debug().Str("provider", cfg.Cache.Provider).Msg("Metadata cache enabled")
	}

	var subtitles services.SubtitleFetcher
	switch cfg.YtDlp.SubtitleSource {
	case "", config.SubtitleSourceYtDlp:
		subtitles = ytdlp.NewSubtitleFetcher(runner)
	case config.SubtitleSourceDirect:
		subtitles = client.NewClient(cfg)
	default:
		_ = app.Close()
		return nil, fmt.Errorf("unknown subtitle source %q (expected %s or %s)",
			cfg.YtDlp.SubtitleSource, config.SubtitleSourceYtDlp, config.SubtitleSourceDirect)
	}
	logger.Debug().Str("source", cfg.YtDlp.SubtitleSource).Msg("Subtitle source selected")

	app.Service = services.NewTranscriptService(metadata, subtitles)
	return app, nil
}

// Close releases the app resources.
func (a *App) Close() error {
	var firstErr error
	for _, closer := range a.closers {
		if err := closer(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
