package services

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/Belphemur/YouTubeTranscript/internal/apperrors"
	"github.com/Belphemur/YouTubeTranscript/internal/config"
	"github.com/Belphemur/YouTubeTranscript/internal/metrics"
	"github.com/Belphemur/YouTubeTranscript/internal/models"
	"github.com/Belphemur/YouTubeTranscript/internal/parser"
)

// DownloaderName is the external tool behind the default collaborators.
const DownloaderName = "yt-dlp"

// Substrings of provider messages that mean the downloader could not be started
var toolMissingMarkers = []string{
	"executable file not found",
	DownloaderName + " ENOENT",
}

// DefaultTranscriptService implements TranscriptService on top of a metadata provider and a subtitle fetcher
type DefaultTranscriptService struct {
	metadata  MetadataProvider
	subtitles SubtitleFetcher
}

// NewTranscriptService creates a transcript service using the given collaborators
func NewTranscriptService(metadata MetadataProvider, subtitles SubtitleFetcher) TranscriptService {
	return &DefaultTranscriptService{
		metadata:  metadata,
		subtitles: subtitles,
	}
}

// GetTranscript implements TranscriptService
func (s *DefaultTranscriptService) GetTranscript(ctx context.Context, req models.TranscriptRequest) (*models.TranscriptResult, error) {
	logger := config.GetLogger()
	req = req.WithDefaults()

	ref := strings.TrimSpace(req.VideoRef)
	if ref == "" {
		metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusInvalidInput).Inc()
		return nil, apperrors.NewEmptyVideoRefError()
	}

	url := NormalizeURL(ref)
	videoID := ExtractID(ref)
	logger.Info().
		Str("url", url).
		Str("videoID", videoID).
		Str("language", string(req.Language)).
		Bool("preferManual", req.PreferManual).
		Msg("Fetching transcript")

	info, err := s.metadata.FetchMetadata(ctx, url, req.Auth)
	if err != nil {
		err = classifyMetadataError(url, err)
		if errors.Is(err, &apperrors.ErrToolNotFound{}) {
			metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusToolNotFound).Inc()
		} else {
			metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusMetadata).Inc()
		}
		return nil, err
	}
	if info == nil {
		info = &models.VideoInfo{}
	}

	sel := SelectTrack(info.ManualTracks, info.AutoTracks, req.Language, req.PreferManual)
	if sel == nil {
		metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusNoTranscript).Inc()
		return nil, &apperrors.ErrNoMatchingTranscript{
			Language:  string(req.Language),
			Available: AvailableLanguages(info.ManualTracks, info.AutoTracks),
		}
	}

	pass := "preferred"
	if sel.Fallback {
		pass = "fallback"
		logger.Debug().
			Str("videoID", videoID).
			Str("variant", string(sel.Language)).
			Msg("No manual track for preferred language, using fallback selection")
	}
	metrics.TrackSelectionsTotal.WithLabelValues(string(sel.Source()), pass).Inc()

	tracks := info.AutoTracks[sel.Language]
	if sel.IsManual {
		tracks = info.ManualTracks[sel.Language]
	}

	raw, err := s.subtitles.FetchSubtitleText(ctx, models.SubtitleRequest{
		URL:      url,
		Language: sel.Language,
		IsManual: sel.IsManual,
		Tracks:   tracks,
		Auth:     req.Auth,
	})
	if err != nil {
		metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusSubtitle).Inc()
		if errors.Is(err, &apperrors.ErrSubtitleFetch{}) {
			return nil, err
		}
		return nil, &apperrors.ErrSubtitleFetch{URL: url, Language: string(sel.Language), Err: err}
	}

	items := parser.ParseCues(raw)

	opts := []models.ResultOption{models.WithFormat(req.OutputFormat, items)}
	if req.IncludeMetadata {
		opts = append(opts, models.WithMetadata(info.Metadata()))
	}
	result := models.NewTranscriptResult(videoID, url, req.Language, *sel, opts...)

	metrics.TranscriptRequestsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	metrics.TranscriptItemsTotal.Add(float64(len(items)))
	logger.Info().
		Str("videoID", videoID).
		Str("variant", string(sel.Language)).
		Str("type", string(sel.Source())).
		Int("items", len(items)).
		Msg("Transcript extracted")

	return result, nil
}

// classifyMetadataError keeps a missing downloader distinct from other provider failures.
// Only a failed lookup or start of the downloader counts; a missing cookies or temp file is a fetch failure.
func classifyMetadataError(url string, err error) error {
	if errors.Is(err, &apperrors.ErrToolNotFound{}) {
		return err
	}
	if errors.Is(err, exec.ErrNotFound) {
		return apperrors.NewToolNotFoundError(DownloaderName, "", err)
	}
	msg := err.Error()
	for _, marker := range toolMissingMarkers {
		if strings.Contains(msg, marker) {
			return apperrors.NewToolNotFoundError(DownloaderName, "", err)
		}
	}
	if errors.Is(err, &apperrors.ErrMetadataFetch{}) {
		return err
	}
	return &apperrors.ErrMetadataFetch{URL: url, Err: err}
}
