package services

import (
	"context"
	"encoding/json"

	"github.com/Belphemur/YouTubeTranscript/internal/cache"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

const metadataKeyPrefix = "meta:"

// CachedMetadataProvider memoizes video descriptions by canonical URL.
// Only provider output is cached; transcripts are always fetched and parsed anew.
// Requests carrying cookies bypass the cache, since cookies can change what a video exposes.
type CachedMetadataProvider struct {
	inner MetadataProvider
	cache cache.Cache
}

// NewCachedMetadataProvider wraps inner with c
func NewCachedMetadataProvider(inner MetadataProvider, c cache.Cache) *CachedMetadataProvider {
	return &CachedMetadataProvider{inner: inner, cache: c}
}

// FetchMetadata implements MetadataProvider
func (p *CachedMetadataProvider) FetchMetadata(ctx context.Context, url string, auth models.AuthContext) (*models.VideoInfo, error) {
	if auth != (models.AuthContext{}) {
		return p.inner.FetchMetadata(ctx, url, auth)
	}

	logger := config.GetLogger()
	key := metadataKeyPrefix + url

	if data, ok := p.cache.Get(ctx, key); ok {
		var info models.VideoInfo
		err := json.Unmarshal(data, &info)
		if err == nil {
			logger.Debug().Str("url", url).Msg("Video metadata served from cache")
			return &info, nil
		}
		logger.Warn().Err(err).Str("url", url).Msg("Discarding unreadable cached metadata")
	}

	info, err := p.inner.FetchMetadata(ctx, url, auth)
	if err != nil {
		return nil, err
	}

	if info != nil {
		if data, err := json.Marshal(info); err == nil {
			p.cache.Set(ctx, key, data)
		} else {
			logger.Warn().Err(err).Str("url", url).Msg("Failed to encode metadata for cache")
		}
	}
	return info, nil
}

// Close releases the underlying cache.
func (p *CachedMetadataProvider) Close() error {
	return p.cache.Close()
}
