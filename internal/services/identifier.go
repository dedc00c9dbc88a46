package services

import (
	"regexp"
	"strings"
)

// WatchURLPrefix builds canonical watch URLs from bare ids.
const WatchURLPrefix = "https://www.youtube.com/watch?v="

var (
	// Domain markers that identify a reference as a URL rather than a bare id
	domainMarkers = []string{"youtube.com", "youtu.be"}
	// Matches watch?v=ID and youtu.be/ID
	videoIDPattern = regexp.MustCompile(`(?:watch\?v=|youtu\.be/)([A-Za-z0-9_-]+)`)
)

func hasDomainMarker(ref string) bool {
	for _, marker := range domainMarkers {
		if strings.Contains(ref, marker) {
			return true
		}
	}
	return false
}

// NormalizeURL returns ref unchanged when it is already a YouTube URL,
// otherwise it treats ref as a bare id and builds a watch URL.
func NormalizeURL(ref string) string {
	if hasDomainMarker(ref) {
		return ref
	}
	return WatchURLPrefix + ref
}

// ExtractID pulls the video id out of a watch or short URL.
// Bare ids and URLs of an unknown shape are returned unchanged.
func ExtractID(ref string) string {
	if !hasDomainMarker(ref) {
		return ref
	}
	if matches := videoIDPattern.FindStringSubmatch(ref); len(matches) > 1 {
		return matches[1]
	}
	return ref
}
