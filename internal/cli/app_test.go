package cli

import (
	"strings"
	"testing"

	"github.com/Belphemur/YouTubeTranscript/internal/config"
)

func TestNewApp(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		configure   func(*config.Config)
		wantClosers int
		wantErr     string
	}{
		{
			name:      "yt-dlp subtitles",
			configure: func(c *config.Config) { c.YtDlp.SubtitleSource = config.SubtitleSourceYtDlp },
		},
		{
			name:      "direct subtitles",
			configure: func(c *config.Config) { c.YtDlp.SubtitleSource = config.SubtitleSourceDirect },
		},
		{
			name: "memory metadata cache",
			configure: func(c *config.Config) {
				c.Cache.Enabled = true
				c.Cache.Provider = "memory"
				c.Cache.Size = 10
				c.Cache.TTL = "1m"
			},
			wantClosers: 1,
		},
		{
			name: "unknown cache provider",
			configure: func(c *config.Config) {
				c.Cache.Enabled = true
				c.Cache.Provider = "memcached"
				c.Cache.Size = 10
			},
			wantErr: "memcached metadata cache",
		},
		{
			name:      "unknown subtitle source",
			configure: func(c *config.Config) { c.YtDlp.SubtitleSource = "ftp" },
			wantErr:   `unknown subtitle source "ftp"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig()
			tt.configure(cfg)

			app, err := NewApp(cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp: %v", err)
			}
			if app.Service == nil {
				t.Fatal("Service not wired")
			}
			if len(app.closers) != tt.wantClosers {
				t.Errorf("closers = %d, want %d", len(app.closers), tt.wantClosers)
			}
			if err := app.Close(); err != nil {
				t.Errorf("Close: %v", err)
			}
			if len(app.closers) != 0 {
				t.Error("Close should release every closer")
			}
		})
	}
}
