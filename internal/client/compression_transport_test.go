package client

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

func compress(t *testing.T, encoding string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch encoding {
	case "gzip":
		w = gzip.NewWriter(&buf)
	case "br":
		w = brotli.NewWriter(&buf)
	case "zstd":
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatalf("zstd.NewWriter: %v", err)
		}
		w = zw
	default:
		return data
	}
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compress write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("compress close: %v", err)
	}
	return buf.Bytes()
}

func TestCompressionTransport_Decodes(t *testing.T) {
	t.Parallel()
	payload := []byte("WEBVTT\n\n00:00:00.000 --> 00:00:01.000\nCompressed cue\n")

	tests := []struct {
		name   string
		header string
		codec  string
	}{
		{"gzip", "gzip", "gzip"},
		{"brotli", "br", "br"},
		{"zstd", "zstd", "zstd"},
		{"identity", "", ""},
		{"comma list uses outermost", "identity, gzip", "gzip"},
		{"whitespace and case", "  BR ", "br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if got := r.Header.Get("Accept-Encoding"); got != acceptEncoding {
					t.Errorf("Accept-Encoding = %q, want %q", got, acceptEncoding)
				}
				if tt.header != "" {
					w.Header().Set("Content-Encoding", tt.header)
				}
				_, _ = w.Write(compress(t, tt.codec, payload))
			}))
			defer server.Close()

			client := &http.Client{Transport: newCompressionTransport(nil)}
			resp, err := client.Get(server.URL)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("ReadAll: %v", err)
			}
			if !bytes.Equal(body, payload) {
				t.Errorf("body = %q, want %q", body, payload)
			}
			if resp.Header.Get("Content-Encoding") != "" {
				t.Errorf("Content-Encoding should be removed, got %q", resp.Header.Get("Content-Encoding"))
			}
		})
	}
}

func TestCompressionTransport_PreservesCallerAcceptEncoding(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("Accept-Encoding")))
	}))
	defer server.Close()

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Accept-Encoding", "identity")

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "identity" {
		t.Errorf("Server saw Accept-Encoding %q, want identity", body)
	}
}

func TestCompressionTransport_UnknownEncodingPassesThrough(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "compress")
		_, _ = w.Write([]byte("raw"))
	}))
	defer server.Close()

	resp, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("Content-Encoding") != "compress" {
		t.Error("Unknown encodings must be left untouched")
	}
}

func TestCompressionTransport_InvalidGzip(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write([]byte("not gzip"))
	}))
	defer server.Close()

	if _, err := (&http.Client{Transport: newCompressionTransport(nil)}).Get(server.URL); err == nil {
		t.Fatal("Expected error for corrupt gzip body")
	}
}

func TestOutermostEncoding(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"":             "",
		"gzip":         "gzip",
		" GZIP ":       "gzip",
		"gzip, br":     "br",
		"deflate,zstd": "zstd",
	}
	for in, want := range tests {
		if got := outermostEncoding(in); got != want {
			t.Errorf("outermostEncoding(%q) = %q, want %q", in, got, want)
		}
	}
}
