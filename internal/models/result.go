package models

import "encoding/json"

// TranscriptResult is the assembled output of a transcript extraction.
// Build it with NewTranscriptResult and result options; the optional renderings
// are only present when the matching option was applied.
type TranscriptResult struct {
	VideoID         string
	URL             string
	Language        LanguageCode // Requested language
	LanguageVariant LanguageCode // Variant that matched
	Source          TrackSource
	ItemCount       int

	Transcript     []TranscriptItem // Set by WithStructured / WithBoth
	TranscriptText *string          // Set by WithPlainText / WithBoth
	Metadata       *VideoMetadata   // Set by WithMetadata
}

// ResultOption adds an optional part to a TranscriptResult.
type ResultOption func(*TranscriptResult)

// NewTranscriptResult builds a result for the given selection and applies opts in order.
func NewTranscriptResult(videoID, url string, requested LanguageCode, sel Selection, opts ...ResultOption) *TranscriptResult {
	r := &TranscriptResult{
		VideoID:         videoID,
		URL:             url,
		Language:        requested,
		LanguageVariant: sel.Language,
		Source:          sel.Source(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithStructured attaches the item list.
func WithStructured(items []TranscriptItem) ResultOption {
	return func(r *TranscriptResult) {
		if items == nil {
			items = []TranscriptItem{}
		}
		r.Transcript = items
		r.ItemCount = len(items)
	}
}

// WithPlainText attaches the space-joined transcript text.
func WithPlainText(items []TranscriptItem) ResultOption {
	return func(r *TranscriptResult) {
		text := JoinText(items)
		r.TranscriptText = &text
		r.ItemCount = len(items)
	}
}

// WithBoth attaches both the item list and the plain text.
func WithBoth(items []TranscriptItem) ResultOption {
	return func(r *TranscriptResult) {
		WithStructured(items)(r)
		WithPlainText(items)(r)
	}
}

// WithMetadata attaches the video metadata subset. A nil md is ignored.
func WithMetadata(md *VideoMetadata) ResultOption {
	return func(r *TranscriptResult) {
		if md != nil {
			r.Metadata = md
		}
	}
}

// WithFormat picks the rendering option matching format.
// Unknown formats fall back to structured output.
func WithFormat(format OutputFormat, items []TranscriptItem) ResultOption {
	switch format {
	case OutputPlainText:
		return WithPlainText(items)
	case OutputBoth:
		return WithBoth(items)
	default:
		return WithStructured(items)
	}
}

type resultJSON struct {
	VideoID         string            `json:"videoId"`
	URL             string            `json:"url"`
	Language        LanguageCode      `json:"language"`
	LanguageVariant LanguageCode      `json:"languageVariant"`
	Source          TrackSource       `json:"type"`
	ItemCount       int               `json:"itemCount"`
	Transcript      *[]TranscriptItem `json:"transcript,omitempty"`
	TranscriptText  *string           `json:"transcriptText,omitempty"`
	Metadata        *VideoMetadata    `json:"metadata,omitempty"`
}

// MarshalJSON emits only the renderings that were attached.
func (r TranscriptResult) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		VideoID:         r.VideoID,
		URL:             r.URL,
		Language:        r.Language,
		LanguageVariant: r.LanguageVariant,
		Source:          r.Source,
		ItemCount:       r.ItemCount,
		TranscriptText:  r.TranscriptText,
		Metadata:        r.Metadata,
	}
	if r.Transcript != nil {
		out.Transcript = &r.Transcript
	}
	return json.Marshal(out)
}

// ToMap renders the result as generic values (map[string]any, []any, string,
// float64, int64, bool). The shape matches MarshalJSON.
func (r *TranscriptResult) ToMap() map[string]any {
	m := map[string]any{
		"videoId":         r.VideoID,
		"url":             r.URL,
		"language":        string(r.Language),
		"languageVariant": string(r.LanguageVariant),
		"type":            string(r.Source),
		"itemCount":       int64(r.ItemCount),
	}
	if r.Transcript != nil {
		items := make([]any, len(r.Transcript))
		for i, item := range r.Transcript {
			items[i] = map[string]any{
				"text":     item.Text,
				"start":    item.Start,
				"duration": item.Duration,
			}
		}
		m["transcript"] = items
	}
	if r.TranscriptText != nil {
		m["transcriptText"] = *r.TranscriptText
	}
	if r.Metadata != nil {
		m["metadata"] = map[string]any{
			"title":       r.Metadata.Title,
			"duration":    r.Metadata.Duration,
			"uploader":    r.Metadata.Uploader,
			"uploadDate":  r.Metadata.UploadDate,
			"viewCount":   r.Metadata.ViewCount,
			"description": r.Metadata.Description,
			"thumbnail":   r.Metadata.Thumbnail,
			"tags":        stringsToAny(r.Metadata.Tags),
			"categories":  stringsToAny(r.Metadata.Categories),
		}
	}
	return m
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
