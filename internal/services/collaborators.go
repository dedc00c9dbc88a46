package services

import (
	"context"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// MetadataProvider describes a video: its manual and automatic subtitle tracks plus optional metadata.
type MetadataProvider interface {
	// FetchMetadata returns the track maps and metadata of the video at url.
	FetchMetadata(ctx context.Context, url string, auth models.AuthContext) (*models.VideoInfo, error)
}

// SubtitleFetcher retrieves the raw text of a selected subtitle track.
type SubtitleFetcher interface {
	// FetchSubtitleText returns the full subtitle file content for req.
	FetchSubtitleText(ctx context.Context, req models.SubtitleRequest) (string, error)
}
