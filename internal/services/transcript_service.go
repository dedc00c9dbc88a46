package services

import (
	"context"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

// TranscriptService extracts a timestamped transcript for a single video
type TranscriptService interface {
	// GetTranscript resolves req.VideoRef, selects a subtitle track for req.Language,
	// fetches and parses it, and assembles the result in the requested format.
	GetTranscript(ctx context.Context, req models.TranscriptRequest) (*models.TranscriptResult, error)
}
