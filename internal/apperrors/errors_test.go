// Package apperrors tests verify the custom error types, their Error()
// messages, Is() matching semantics and compatibility with errors.Is()
// and errors.As() through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "empty video ref",
			err:      NewEmptyVideoRefError(),
			expected: "invalid input: video reference must not be empty",
		},
		{
			name:     "metadata fetch",
			err:      &ErrMetadataFetch{URL: "https://youtu.be/x", Err: cause},
			expected: "metadata fetch failed for https://youtu.be/x: boom",
		},
		{
			name:     "tool not found in PATH",
			err:      NewToolNotFoundError("yt-dlp", "", cause),
			expected: "yt-dlp not found in PATH, install it or configure its path: boom",
		},
		{
			name:     "tool not found at path",
			err:      NewToolNotFoundError("yt-dlp", "/opt/yt-dlp", cause),
			expected: `yt-dlp not found at "/opt/yt-dlp", check the configured path: boom`,
		},
		{
			name:     "no transcript with languages",
			err:      &ErrNoMatchingTranscript{Language: "de", Available: []string{"en", "fr", "en"}},
			expected: `no transcript available for language "de" (available: en, fr, en)`,
		},
		{
			name:     "no transcript without languages",
			err:      &ErrNoMatchingTranscript{Language: "de"},
			expected: `no transcript available for language "de" (available: none)`,
		},
		{
			name:     "subtitle fetch",
			err:      &ErrSubtitleFetch{URL: "u", Language: "en", Err: cause},
			expected: "subtitle fetch failed for u (language en): boom",
		},
		{
			name:     "subtitle file not found",
			err:      &ErrSubtitleFileNotFound{Language: "en", Searched: []string{"en", "en_US", "en-US"}},
			expected: "subtitle file not found for language en (searched en, en_US, en-US)",
		},
		{
			name:     "resource not found",
			err:      &ErrSubtitleResourceNotFound{URL: "https://x/y.vtt"},
			expected: "subtitle resource not found at URL: https://x/y.vtt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorsIs_ThroughWrapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"invalid input", NewEmptyVideoRefError(), &ErrInvalidInput{}},
		{"metadata", &ErrMetadataFetch{}, &ErrMetadataFetch{}},
		{"tool", NewToolNotFoundError("yt-dlp", "", nil), &ErrToolNotFound{}},
		{"no transcript", &ErrNoMatchingTranscript{Language: "en"}, &ErrNoMatchingTranscript{}},
		{"subtitle fetch", &ErrSubtitleFetch{}, &ErrSubtitleFetch{}},
		{"file not found", &ErrSubtitleFileNotFound{}, &ErrSubtitleFileNotFound{}},
		{"resource not found", &ErrSubtitleResourceNotFound{}, &ErrSubtitleResourceNotFound{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("context: %w", tt.err)
			if !errors.Is(wrapped, tt.target) {
				t.Errorf("errors.Is(%v, %T) = false", wrapped, tt.target)
			}
		})
	}
}

func TestErrorsIs_DifferentTypesDoNotMatch(t *testing.T) {
	t.Parallel()
	if errors.Is(&ErrSubtitleFetch{}, &ErrMetadataFetch{}) {
		t.Error("ErrSubtitleFetch must not match ErrMetadataFetch")
	}
	if errors.Is(NewEmptyVideoRefError(), &ErrNoMatchingTranscript{}) {
		t.Error("ErrInvalidInput must not match ErrNoMatchingTranscript")
	}
}

func TestUnwrap_ReachesCause(t *testing.T) {
	t.Parallel()
	tool := NewToolNotFoundError("yt-dlp", "", exec.ErrNotFound)
	meta := &ErrMetadataFetch{URL: "u", Err: tool}
	sub := &ErrSubtitleFetch{URL: "u", Err: &ErrSubtitleFileNotFound{Language: "en"}}

	if !errors.Is(meta, exec.ErrNotFound) {
		t.Error("expected exec.ErrNotFound in chain")
	}
	var target *ErrToolNotFound
	if !errors.As(meta, &target) || target.Tool != "yt-dlp" {
		t.Errorf("errors.As tool = %v", target)
	}
	if !errors.Is(sub, &ErrSubtitleFileNotFound{}) {
		t.Error("expected ErrSubtitleFileNotFound in chain")
	}
	if !strings.Contains(sub.Error(), "subtitle file not found") {
		t.Errorf("message = %q", sub.Error())
	}
}
