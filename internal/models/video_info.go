package models

// VideoInfo is what a metadata provider knows about a video.
type VideoInfo struct {
	ID           string   `json:"id"`
	ManualTracks TrackMap `json:"manualTracks"`
	AutoTracks   TrackMap `json:"autoTracks"`

	Title       string   `json:"title,omitempty"`
	Duration    float64  `json:"duration,omitempty"`   // Seconds
	Uploader    string   `json:"uploader,omitempty"`
	UploadDate  string   `json:"uploadDate,omitempty"` // YYYYMMDD as reported by yt-dlp
	ViewCount   int64    `json:"viewCount,omitempty"`
	Description string   `json:"description,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// VideoMetadata is the metadata subset attached to a transcript result.
type VideoMetadata struct {
	Title       string   `json:"title"`
	Duration    float64  `json:"duration"`
	Uploader    string   `json:"uploader"`
	UploadDate  string   `json:"uploadDate"`
	ViewCount   int64    `json:"viewCount"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Categories  []string `json:"categories"`
}

// Metadata extracts the result metadata subset.
func (v *VideoInfo) Metadata() *VideoMetadata {
	if v == nil {
		return nil
	}
	return &VideoMetadata{
		Title:       v.Title,
		Duration:    v.Duration,
		Uploader:    v.Uploader,
		UploadDate:  v.UploadDate,
		ViewCount:   v.ViewCount,
		Description: v.Description,
		Thumbnail:   v.Thumbnail,
		Tags:        v.Tags,
		Categories:  v.Categories,
	}
}
