package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Transcript request outcomes, used as the "status" label of TranscriptRequestsTotal.
const (
	StatusSuccess      = "success"
	StatusInvalidInput = "invalid_input"
	StatusMetadata     = "metadata_error"
	StatusToolNotFound = "tool_not_found"
	StatusNoTranscript = "no_transcript"
	StatusSubtitle     = "subtitle_error"
)

// Transcript extraction metrics
var (
	TranscriptRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcript_requests_total",
			Help: "Total number of transcript requests by outcome.",
		},
		[]string{"status"},
	)

	// TrackSelectionsTotal counts selected tracks by source (manual, auto-generated)
	// and by the matcher pass that found them (preferred, fallback).
	TrackSelectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transcript_track_selections_total",
			Help: "Total number of subtitle tracks selected.",
		},
		[]string{"source", "pass"},
	)

	TranscriptItemsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "transcript_items_total",
			Help: "Total number of transcript items produced.",
		},
	)

	// DownloaderDuration observes yt-dlp invocations by operation (metadata, subtitles) and status.
	DownloaderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "downloader_invocation_duration_seconds",
			Help:    "Duration of external downloader invocations.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
		},
		[]string{"operation", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		TranscriptRequestsTotal,
		TrackSelectionsTotal,
		TranscriptItemsTotal,
		DownloaderDuration,
	)
}
