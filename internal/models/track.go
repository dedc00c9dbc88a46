package models

import "sort"

// LanguageCode is a subtitle language key exactly as reported by the metadata source (e.g., "en", "en-US", "fr-orig").
// Codes are case-sensitive and never normalized.
type LanguageCode string

// TrackHandle is one downloadable rendition of a subtitle track.
// Its contents are opaque to track selection; only fetchers look inside.
type TrackHandle struct {
	Ext  string `json:"ext"`            // File extension (e.g., "vtt", "srt", "json3")
	URL  string `json:"url"`            // Direct download URL reported by yt-dlp
	Name string `json:"name,omitempty"` // Human readable language name
}

// TrackMap maps a language code to its ordered list of track renditions.
type TrackMap map[LanguageCode][]TrackHandle

// Has reports whether the map holds a non-empty track list for code.
func (m TrackMap) Has(code LanguageCode) bool {
	return len(m[code]) > 0
}

// Languages returns the map keys in sorted order.
func (m TrackMap) Languages() []LanguageCode {
	codes := make([]LanguageCode, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Selection identifies the single track chosen for a request.
type Selection struct {
	Language LanguageCode // Language variant that matched
	IsManual bool         // True when the track comes from the manual map
	Fallback bool         // True when the match was found ignoring the manual preference
}

// TrackSource is the result marker describing where the selected track came from.
type TrackSource string

const (
	TrackSourceManual TrackSource = "manual"
	TrackSourceAuto   TrackSource = "auto-generated"
)

// Source returns the marker for the selection.
func (s Selection) Source() TrackSource {
	if s.IsManual {
		return TrackSourceManual
	}
	return TrackSourceAuto
}
