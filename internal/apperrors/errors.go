package apperrors

import (
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when a request is rejected before any collaborator call.
type ErrInvalidInput struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// Is allows for error checking with errors.Is().
func (e *ErrInvalidInput) Is(target error) bool {
	_, ok := target.(*ErrInvalidInput)
	return ok
}

// NewEmptyVideoRefError creates the error for a blank video reference.
func NewEmptyVideoRefError() *ErrInvalidInput {
	return &ErrInvalidInput{Field: "video reference", Reason: "must not be empty"}
}

// ErrMetadataFetch is returned when the metadata provider could not describe a video.
type ErrMetadataFetch struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *ErrMetadataFetch) Error() string {
	return fmt.Sprintf("metadata fetch failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the provider error.
func (e *ErrMetadataFetch) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrMetadataFetch) Is(target error) bool {
	_, ok := target.(*ErrMetadataFetch)
	return ok
}

// ErrToolNotFound is returned when the downloader binary is missing or its configured path is wrong.
type ErrToolNotFound struct {
	Tool string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ErrToolNotFound) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found at %q, check the configured path: %v", e.Tool, e.Path, e.Err)
	}
	return fmt.Sprintf("%s not found in PATH, install it or configure its path: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying lookup error.
func (e *ErrToolNotFound) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrToolNotFound) Is(target error) bool {
	_, ok := target.(*ErrToolNotFound)
	return ok
}

// NewToolNotFoundError creates an ErrToolNotFound.
func NewToolNotFoundError(tool, path string, err error) *ErrToolNotFound {
	return &ErrToolNotFound{Tool: tool, Path: path, Err: err}
}

// ErrNoMatchingTranscript is returned when no subtitle track matches the requested language.
type ErrNoMatchingTranscript struct {
	Language  string
	Available []string // Manual keys then automatic keys, duplicates kept
}

// Error implements the error interface.
func (e *ErrNoMatchingTranscript) Error() string {
	available := "none"
	if len(e.Available) > 0 {
		available = strings.Join(e.Available, ", ")
	}
	return fmt.Sprintf("no transcript available for language %q (available: %s)", e.Language, available)
}

// Is allows for error checking with errors.Is().
func (e *ErrNoMatchingTranscript) Is(target error) bool {
	_, ok := target.(*ErrNoMatchingTranscript)
	return ok
}

// ErrSubtitleFetch is returned when a selected track could not be retrieved.
type ErrSubtitleFetch struct {
	URL      string
	Language string
	Err      error
}

// Error implements the error interface.
func (e *ErrSubtitleFetch) Error() string {
	return fmt.Sprintf("subtitle fetch failed for %s (language %s): %v", e.URL, e.Language, e.Err)
}

// Unwrap returns the fetcher error.
func (e *ErrSubtitleFetch) Unwrap() error {
	return e.Err
}

// Is allows for error checking with errors.Is().
func (e *ErrSubtitleFetch) Is(target error) bool {
	_, ok := target.(*ErrSubtitleFetch)
	return ok
}

// ErrSubtitleFileNotFound is returned when the downloader produced no file for any accepted language suffix.
type ErrSubtitleFileNotFound struct {
	Language string
	Searched []string
	Written  []string // Files the downloader did write, e.g. an unsupported format
}

// Error implements the error interface.
func (e *ErrSubtitleFileNotFound) Error() string {
	msg := fmt.Sprintf("subtitle file not found for language %s (searched %s)", e.Language, strings.Join(e.Searched, ", "))
	if len(e.Written) > 0 {
		msg += fmt.Sprintf("; downloader wrote %s", strings.Join(e.Written, ", "))
	}
	return msg
}

// Is allows for error checking with errors.Is().
func (e *ErrSubtitleFileNotFound) Is(target error) bool {
	_, ok := target.(*ErrSubtitleFileNotFound)
	return ok
}

// ErrSubtitleResourceNotFound is returned when a direct subtitle URL returns HTTP 404.
type ErrSubtitleResourceNotFound struct {
	URL string
}

// Error implements the error interface.
func (e *ErrSubtitleResourceNotFound) Error() string {
	return fmt.Sprintf("subtitle resource not found at URL: %s", e.URL)
}

// Is allows for error checking with errors.Is().
func (e *ErrSubtitleResourceNotFound) Is(target error) bool {
	_, ok := target.(*ErrSubtitleResourceNotFound)
	return ok
}
