package models

import (
	"reflect"
	"testing"
)

func TestTrackMap_Has(t *testing.T) {
	m := TrackMap{
		"en":    {{Ext: "vtt"}},
		"fr":    {},
		"de-DE": nil,
	}

	if !m.Has("en") {
		t.Error("expected en to be present")
	}
	if m.Has("fr") {
		t.Error("empty list must not count as present")
	}
	if m.Has("de-DE") {
		t.Error("nil list must not count as present")
	}
	if m.Has("EN") {
		t.Error("language codes are case-sensitive")
	}

	var empty TrackMap
	if empty.Has("en") {
		t.Error("nil map has nothing")
	}
}

func TestTrackMap_Languages(t *testing.T) {
	m := TrackMap{"fr": {{}}, "en": {{}}, "de": {{}}}
	want := []LanguageCode{"de", "en", "fr"}
	if got := m.Languages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}
}

func TestTranscriptRequest_WithDefaults(t *testing.T) {
	r := TranscriptRequest{VideoRef: "abc"}.WithDefaults()
	if r.Language != DefaultLanguage || r.OutputFormat != OutputStructured {
		t.Errorf("WithDefaults() = %+v", r)
	}
	if r.PreferManual {
		t.Error("WithDefaults must not flip PreferManual")
	}

	n := NewTranscriptRequest("abc")
	if !n.PreferManual || n.Language != "en" || n.IncludeMetadata {
		t.Errorf("NewTranscriptRequest() = %+v", n)
	}
}
