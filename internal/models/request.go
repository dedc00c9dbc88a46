package models

import "fmt"

// OutputFormat selects which transcript renderings a result carries.
type OutputFormat string

const (
	OutputStructured OutputFormat = "structured"
	OutputPlainText  OutputFormat = "plainText"
	OutputBoth       OutputFormat = "both"
)

// ParseOutputFormat validates a user supplied format. An empty string maps to OutputStructured.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case "":
		return OutputStructured, nil
	case OutputStructured, OutputPlainText, OutputBoth:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected structured, plainText or both)", s)
	}
}

// DefaultLanguage is requested when a request leaves Language empty.
const DefaultLanguage LanguageCode = "en"

// AuthContext carries the cookies handed to the downloader.
// CookiesFile takes precedence over CookiesText.
type AuthContext struct {
	CookiesFile string // Path to a Netscape cookies file
	CookiesText string // Netscape cookies file content
}

// TranscriptRequest is the caller-facing input of a transcript extraction.
type TranscriptRequest struct {
	VideoRef        string
	Language        LanguageCode
	PreferManual    bool
	OutputFormat    OutputFormat
	IncludeMetadata bool
	Auth            AuthContext
}

// NewTranscriptRequest returns a request for ref with every option at its default.
func NewTranscriptRequest(ref string) TranscriptRequest {
	return TranscriptRequest{
		VideoRef:     ref,
		Language:     DefaultLanguage,
		PreferManual: true,
		OutputFormat: OutputStructured,
	}
}

// WithDefaults fills empty language and format fields.
// PreferManual is left untouched since false is a meaningful value.
func (r TranscriptRequest) WithDefaults() TranscriptRequest {
	if r.Language == "" {
		r.Language = DefaultLanguage
	}
	if r.OutputFormat == "" {
		r.OutputFormat = OutputStructured
	}
	return r
}

// SubtitleRequest is handed to a subtitle fetcher once a track has been selected.
type SubtitleRequest struct {
	URL      string        // Canonical watch URL
	Language LanguageCode  // Selected language variant
	IsManual bool          // Manual subtitles vs automatic captions
	Tracks   []TrackHandle // Renditions of the selected track, opaque to the selector
	Auth     AuthContext
}
