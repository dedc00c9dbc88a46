package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Belphemur/YouTubeTranscript/internal/models"
)

type ytdlpTrack struct {
	Ext  string `json:"ext"`
	URL  string `json:"url"`
	Name string `json:"name"`
}

// ytdlpInfo is the subset of `yt-dlp --dump-json` output we read.
// Subtitles and AutomaticCaptions are keyed by language code, each value
// listing the available renditions of that track.
type ytdlpInfo struct {
	ID                string                  `json:"id"`
	Title             string                  `json:"title"`
	Duration          float64                 `json:"duration"`
	Uploader          string                  `json:"uploader"`
	UploadDate        string                  `json:"upload_date"`
	ViewCount         int64                   `json:"view_count"`
	Description       string                  `json:"description"`
	Thumbnail         string                  `json:"thumbnail"`
	Tags              []string                `json:"tags"`
	Categories        []string                `json:"categories"`
	Subtitles         map[string][]ytdlpTrack `json:"subtitles"`
	AutomaticCaptions map[string][]ytdlpTrack `json:"automatic_captions"`
}

// ParseVideoInfo decodes yt-dlp JSON output into a VideoInfo.
// When the output is not a single JSON document, lines that are not valid JSON
// objects (warnings printed on the same stream) are ignored and the last JSON
// line wins.
func ParseVideoInfo(output []byte) (*models.VideoInfo, error) {
	jsonDoc := bytes.TrimSpace(output)
	if !json.Valid(jsonDoc) {
		jsonDoc = nil
		for _, line := range bytes.Split(output, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if bytes.HasPrefix(line, []byte("{")) && json.Valid(line) {
				jsonDoc = line
			}
		}
	}
	if jsonDoc == nil {
		return nil, fmt.Errorf("no JSON object found in yt-dlp output (%d bytes)", len(output))
	}

	var info ytdlpInfo
	if err := json.Unmarshal(jsonDoc, &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	return &models.VideoInfo{
		ID:           info.ID,
		ManualTracks: convertTracks(info.Subtitles),
		AutoTracks:   convertTracks(info.AutomaticCaptions),
		Title:        info.Title,
		Duration:     info.Duration,
		Uploader:     info.Uploader,
		UploadDate:   info.UploadDate,
		ViewCount:    info.ViewCount,
		Description:  info.Description,
		Thumbnail:    info.Thumbnail,
		Tags:         info.Tags,
		Categories:   info.Categories,
	}, nil
}

func convertTracks(raw map[string][]ytdlpTrack) models.TrackMap {
	tracks := make(models.TrackMap, len(raw))
	for lang, items := range raw {
		handles := make([]models.TrackHandle, 0, len(items))
		for _, item := range items {
			handles = append(handles, models.TrackHandle{Ext: item.Ext, URL: item.URL, Name: item.Name})
		}
		tracks[models.LanguageCode(lang)] = handles
	}
	return tracks
}
