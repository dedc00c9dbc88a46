package models

import (
	"encoding/json"
	"math"
	"strings"
)

// TranscriptItem is one timed line of a transcript.
type TranscriptItem struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // Seconds, rounded to milliseconds
	Duration float64 `json:"duration"` // Seconds, rounded to milliseconds
}

// MarshalJSON writes an unparseable (NaN) start or duration as null, which JSON can carry.
func (i TranscriptItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text     string   `json:"text"`
		Start    *float64 `json:"start"`
		Duration *float64 `json:"duration"`
	}{
		Text:     i.Text,
		Start:    finiteOrNil(i.Start),
		Duration: finiteOrNil(i.Duration),
	})
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// JoinText concatenates the item texts with single spaces.
func JoinText(items []TranscriptItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Text
	}
	return strings.Join(parts, " ")
}
