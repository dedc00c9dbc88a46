package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/parser"
)

// preferredExts lists the renditions the cue parser understands, best first
var preferredExts = []string{"vtt", "srt"}

// Client downloads subtitle tracks straight from the URLs reported in video metadata,
// without a second yt-dlp run.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewHTTPClient builds the HTTP client used for direct downloads: proxy, timeout and
// transparent gzip/brotli/zstd decompression.
func NewHTTPClient(cfg *config.Config) *http.Client {
	timeout := config.ParseDuration("client_timeout", cfg.ClientTimeout, 30*time.Second)

	// Clone DefaultTransport to keep its pooling, HTTP/2 and dial timeouts
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newCompressionTransport(baseTransport),
	}
}

// NewClient creates a direct subtitle fetcher from cfg
func NewClient(cfg *config.Config) *Client {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}
	return &Client{
		httpClient: NewHTTPClient(cfg),
		userAgent:  userAgent,
	}
}

// FetchSubtitleText downloads the best rendition among req.Tracks and returns it decoded to UTF-8.
// Cookies are not sent; track URLs reported by yt-dlp are already signed.
func (c *Client) FetchSubtitleText(ctx context.Context, req models.SubtitleRequest) (string, error) {
	logger := config.GetLogger()

	track, ok := pickTrack(req.Tracks)
	if !ok {
		return "", fmt.Errorf("no vtt or srt rendition for language %s", req.Language)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, track.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", &apperrors.ErrSubtitleResourceNotFound{URL: track.URL}
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	text, err := parser.DecodeSubtitle(data, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	logger.Debug().
		Str("language", string(req.Language)).
		Str("ext", track.Ext).
		Int("size", len(data)).
		Msg("Subtitle track downloaded")
	return text, nil
}

func pickTrack(tracks []models.TrackHandle) (models.TrackHandle, bool) {
	for _, ext := range preferredExts {
		for _, track := range tracks {
			if strings.EqualFold(track.Ext, ext) && track.URL != "" {
				return track, true
			}
		}
	}
	return models.TrackHandle{}, false
}
