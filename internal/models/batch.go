package models

// BatchItem is one entry of a batch run: either a result or an error record.
type BatchItem struct {
	Index    int               `json:"-"`
	VideoRef string            `json:"videoRef,omitempty"`
	Result   *TranscriptResult `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// Failed reports whether the item is an error record.
func (b BatchItem) Failed() bool {
	return b.Error != ""
}
