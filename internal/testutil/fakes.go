package testutil

import (
	"context"
	"sync"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// FakeMetadataProvider returns a fixed VideoInfo (or error) and counts calls.
// This is a test helper and should not be used in production code.
type FakeMetadataProvider struct {
	Info *models.VideoInfo
	Err  error
	// ByURL overrides Info/Err for specific URLs when set.
	ByURL map[string]*models.VideoInfo

	mu    sync.Mutex
	calls []string
}

// FetchMetadata implements the metadata provider contract.
func (f *FakeMetadataProvider) FetchMetadata(_ context.Context, url string, _ models.AuthContext) (*models.VideoInfo, error) {
	f.mu.Lock()
	f.calls = append(f.calls, url)
	f.mu.Unlock()

	if f.ByURL != nil {
		if info, ok := f.ByURL[url]; ok {
			return info, nil
		}
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Info, nil
}

// Calls returns the URLs the provider was asked for, in call order.
func (f *FakeMetadataProvider) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// FakeSubtitleFetcher returns fixed subtitle text (or error) and records requests.
// This is a test helper and should not be used in production code.
type FakeSubtitleFetcher struct {
	Text string
	Err  error

	mu       sync.Mutex
	requests []models.SubtitleRequest
}

// FetchSubtitleText implements the subtitle fetcher contract.
func (f *FakeSubtitleFetcher) FetchSubtitleText(_ context.Context, req models.SubtitleRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

// Requests returns the recorded requests, in call order.
func (f *FakeSubtitleFetcher) Requests() []models.SubtitleRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.SubtitleRequest(nil), f.requests...)
}

// Tracks builds a TrackMap with one vtt rendition per language code.
func Tracks(codes ...string) models.TrackMap {
	m := make(models.TrackMap, len(codes))
	for _, code := range codes {
		m[models.LanguageCode(code)] = []models.TrackHandle{{Ext: "vtt", URL: "https://example.test/" + code + ".vtt"}}
	}
	return m
}
