package models

import (
	"encoding/json"
	"math"
	"testing"
)

func sampleItems() []TranscriptItem {
	return []TranscriptItem{
		{Text: "Hello world", Start: 0, Duration: 2.5},
		{Text: "Second line", Start: 2.5, Duration: 1.5},
	}
}

func decode(t *testing.T, r *TranscriptResult) map[string]any {
	t.Helper()
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	return out
}

func TestNewTranscriptResult_Formats(t *testing.T) {
	t.Parallel()
	sel := Selection{Language: "en", IsManual: true}
	tests := []struct {
		name          string
		format        OutputFormat
		wantStructure bool
		wantText      bool
	}{
		{"structured", OutputStructured, true, false},
		{"plain text", OutputPlainText, false, true},
		{"both", OutputBoth, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewTranscriptResult("abc", "https://www.youtube.com/watch?v=abc", "en", sel, WithFormat(tt.format, sampleItems()))
			out := decode(t, r)

			if _, ok := out["transcript"]; ok != tt.wantStructure {
				t.Errorf("transcript present = %v, want %v", ok, tt.wantStructure)
			}
			if _, ok := out["transcriptText"]; ok != tt.wantText {
				t.Errorf("transcriptText present = %v, want %v", ok, tt.wantText)
			}
			if out["itemCount"] != float64(2) {
				t.Errorf("itemCount = %v, want 2", out["itemCount"])
			}
			if out["type"] != "manual" {
				t.Errorf("type = %v, want manual", out["type"])
			}
			if _, ok := out["metadata"]; ok {
				t.Error("metadata should be absent")
			}
		})
	}
}

func TestNewTranscriptResult_PlainTextJoin(t *testing.T) {
	t.Parallel()
	r := NewTranscriptResult("abc", "u", "en", Selection{Language: "en"}, WithPlainText(sampleItems()))
	if r.TranscriptText == nil || *r.TranscriptText != "Hello world Second line" {
		t.Fatalf("TranscriptText = %v", r.TranscriptText)
	}
	if r.Source != TrackSourceAuto {
		t.Errorf("Source = %q, want %q", r.Source, TrackSourceAuto)
	}
}

func TestNewTranscriptResult_EmptyStructuredKeepsList(t *testing.T) {
	t.Parallel()
	r := NewTranscriptResult("abc", "u", "en", Selection{Language: "en"}, WithStructured(nil))
	out := decode(t, r)
	list, ok := out["transcript"].([]any)
	if !ok {
		t.Fatalf("transcript = %#v, want empty list", out["transcript"])
	}
	if len(list) != 0 {
		t.Errorf("len(transcript) = %d, want 0", len(list))
	}
}

func TestNewTranscriptResult_WithMetadata(t *testing.T) {
	t.Parallel()
	info := &VideoInfo{Title: "A talk", ViewCount: 42, Tags: []string{"go"}}
	r := NewTranscriptResult("abc", "u", "en", Selection{Language: "en"},
		WithStructured(sampleItems()), WithMetadata(info.Metadata()))

	out := decode(t, r)
	md, ok := out["metadata"].(map[string]any)
	if !ok {
		t.Fatalf("metadata missing: %#v", out)
	}
	if md["title"] != "A talk" || md["viewCount"] != float64(42) {
		t.Errorf("metadata = %#v", md)
	}

	m := r.ToMap()
	if _, ok := m["metadata"].(map[string]any); !ok {
		t.Errorf("ToMap metadata = %#v", m["metadata"])
	}
}

func TestWithMetadata_NilIgnored(t *testing.T) {
	t.Parallel()
	var info *VideoInfo
	r := NewTranscriptResult("abc", "u", "en", Selection{}, WithMetadata(info.Metadata()))
	if r.Metadata != nil {
		t.Error("expected nil metadata")
	}
}

func TestToMap_MatchesFormat(t *testing.T) {
	t.Parallel()
	r := NewTranscriptResult("abc", "u", "en", Selection{Language: "en_US", IsManual: true}, WithBoth(sampleItems()))
	m := r.ToMap()

	items, ok := m["transcript"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("transcript = %#v", m["transcript"])
	}
	first := items[0].(map[string]any)
	if first["text"] != "Hello world" || first["duration"] != 2.5 {
		t.Errorf("first item = %#v", first)
	}
	if m["languageVariant"] != "en_US" || m["itemCount"] != int64(2) {
		t.Errorf("map = %#v", m)
	}
}

func TestParseOutputFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputStructured, false},
		{"structured", OutputStructured, false},
		{"plainText", OutputPlainText, false},
		{"both", OutputBoth, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTranscriptItem_MarshalJSON_NaNAsNull(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		item TranscriptItem
		want string
	}{
		{"finite", TranscriptItem{Text: "a", Start: 1.5, Duration: 2}, `{"text":"a","start":1.5,"duration":2}`},
		{"nan start", TranscriptItem{Text: "b", Start: math.NaN(), Duration: 2}, `{"text":"b","start":null,"duration":2}`},
		{"nan both", TranscriptItem{Text: "c", Start: math.NaN(), Duration: math.NaN()}, `{"text":"c","start":null,"duration":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(tt.item)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}
